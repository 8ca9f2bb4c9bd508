package model

type KlineBar struct {
	Timestamp TimestampMilli `json:"t"`
	Open      Price          `json:"o"`
	High      Price          `json:"h"`
	Low       Price          `json:"l"`
	Close     Price          `json:"c"`
	Volume    float64        `json:"v"`
}

type KlineResponse struct {
	Symbol   string     `json:"symbol"`
	Interval string     `json:"interval"`
	Data     []KlineBar `json:"data"`
	Error    *string    `json:"error,omitempty"`
}

// ChartData is the chart-ready projection of a kline window: one time label
// and one closing price per bar, in bar order.
type ChartData struct {
	Title  string
	Labels []string
	Values []float64
}
