package model

const DirectionUp = "up"
const DirectionDown = "down"
const DirectionNeutral = ""

type PriceTick struct {
	Symbol    string          `json:"symbol"`
	Price     Price           `json:"price"`
	Timestamp *TimestampMilli `json:"ts,omitempty"`
}

type TickerResponse struct {
	Symbol    string         `json:"symbol"`
	Price     Price          `json:"price"`
	Timestamp TimestampMilli `json:"ts"`
	Error     *string        `json:"error,omitempty"`
}

func (t TickerResponse) ToPriceTick() PriceTick {
	ts := t.Timestamp

	return PriceTick{
		Symbol:    t.Symbol,
		Price:     t.Price,
		Timestamp: &ts,
	}
}

type PriceRow struct {
	Symbol    string
	Price     Price
	Direction string
	Display   string
}

func (r PriceRow) IsUp() bool {
	return r.Direction == DirectionUp
}

func (r PriceRow) IsDown() bool {
	return r.Direction == DirectionDown
}
