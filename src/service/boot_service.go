package service

import (
	"context"
	"fmt"

	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"golang.org/x/sync/errgroup"
)

// BootService produces the one-shot price snapshot shown before the first
// push batch arrives. The chart part of the boot goes through the regular
// chart load path.
type BootService struct {
	API     client.DashboardAPIInterface
	Symbols model.SupportedSymbols
	Logger  logger.Interface
}

// LoadSnapshot requests every supported symbol concurrently. A failed symbol
// is dropped; the rest are returned in supported order once all finished.
func (b *BootService) LoadSnapshot(ctx context.Context) []model.PriceTick {
	placeholders := make([]*model.PriceTick, len(b.Symbols))

	var group errgroup.Group
	for i, symbol := range b.Symbols {
		i, symbol := i, symbol
		group.Go(func() error {
			ticker, err := b.API.GetTicker(ctx, symbol)
			if err != nil {
				b.Logger.Warn(fmt.Sprintf("[%s] snapshot skipped: %s", symbol, err.Error()))
				return nil
			}

			tick := ticker.ToPriceTick()
			placeholders[i] = &tick

			return nil
		})
	}
	_ = group.Wait()

	ticks := make([]model.PriceTick, 0, len(placeholders))
	for _, tick := range placeholders {
		if tick != nil {
			ticks = append(ticks, *tick)
		}
	}

	return ticks
}
