package service

import (
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

// PriceBoard renders price batches into table rows. It owns the last seen
// price per symbol; entries are added or overwritten, never removed.
type PriceBoard struct {
	Formatter *utils.Formatter
	lastPrice map[string]model.Price
}

func NewPriceBoard(formatter *utils.Formatter) *PriceBoard {
	return &PriceBoard{
		Formatter: formatter,
		lastPrice: make(map[string]model.Price),
	}
}

func ClassifyDirection(previous model.Price, known bool, current model.Price) string {
	if !known {
		return model.DirectionNeutral
	}

	if current.Gt(previous) {
		return model.DirectionUp
	}

	if current.Lt(previous) {
		return model.DirectionDown
	}

	return model.DirectionNeutral
}

// Render replaces the whole table with the given batch.
func (b *PriceBoard) Render(items []model.PriceTick) []model.PriceRow {
	rows := make([]model.PriceRow, 0, len(items))

	for _, item := range items {
		previous, known := b.lastPrice[item.Symbol]

		rows = append(rows, model.PriceRow{
			Symbol:    item.Symbol,
			Price:     item.Price,
			Direction: ClassifyDirection(previous, known, item.Price),
			Display:   b.Formatter.FormatPrice(item.Price.Value()),
		})

		b.lastPrice[item.Symbol] = item.Price
	}

	return rows
}

func (b *PriceBoard) LastPrice(symbol string) (model.Price, bool) {
	price, ok := b.lastPrice[symbol]

	return price, ok
}

func (b *PriceBoard) KnownSymbols() int {
	return len(b.lastPrice)
}
