package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/tests"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

func newBootService(api *tests.DashboardAPIMock, symbols model.SupportedSymbols) *BootService {
	return &BootService{
		API:     api,
		Symbols: symbols,
		Logger:  logger.NewNop(),
	}
}

func TestBootSnapshotToleratesFailures(t *testing.T) {
	assertion := assert.New(t)

	symbols := model.SupportedSymbols{"BTCUSDT", "ETHUSDT", "SOLUSDT", "BNBUSDT", "DOGEUSDT"}
	api := new(tests.DashboardAPIMock)
	api.On("GetTicker", "BTCUSDT").Return(model.TickerResponse{Symbol: "BTCUSDT", Price: 64000, Timestamp: 1}, nil)
	api.On("GetTicker", "ETHUSDT").Return(model.TickerResponse{}, errors.New("timeout"))
	api.On("GetTicker", "SOLUSDT").Return(model.TickerResponse{Symbol: "SOLUSDT", Price: 150, Timestamp: 1}, nil)
	api.On("GetTicker", "BNBUSDT").Return(model.TickerResponse{}, errors.New("bad request"))
	api.On("GetTicker", "DOGEUSDT").Return(model.TickerResponse{Symbol: "DOGEUSDT", Price: 0.12, Timestamp: 1}, nil)

	ticks := newBootService(api, symbols).LoadSnapshot(context.Background())

	require.Len(t, ticks, 3)
	assertion.Equal("BTCUSDT", ticks[0].Symbol)
	assertion.Equal("SOLUSDT", ticks[1].Symbol)
	assertion.Equal("DOGEUSDT", ticks[2].Symbol)

	rows := NewPriceBoard(&utils.Formatter{}).Render(ticks)
	assertion.Len(rows, 3)
}

func TestBootSnapshotAllFailed(t *testing.T) {
	api := new(tests.DashboardAPIMock)
	api.On("GetTicker", "BTCUSDT").Return(model.TickerResponse{}, errors.New("down"))

	ticks := newBootService(api, model.SupportedSymbols{"BTCUSDT"}).LoadSnapshot(context.Background())
	assert.Empty(t, ticks)
}
