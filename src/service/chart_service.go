package service

import (
	"context"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gitlab.com/open-soft/go-crypto-dashboard/src/client"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

const KlineWindowLimit = int64(120)

type ChartService struct {
	API       client.DashboardAPIInterface
	Formatter *utils.Formatter
	Limit     int64
}

func (c *ChartService) Title(symbol string, interval string) string {
	return c.Formatter.FormatChartTitle(symbol, interval)
}

// Load fetches the most recent kline window and projects it to time labels
// and closing prices.
func (c *ChartService) Load(ctx context.Context, symbol string, interval string) (model.ChartData, error) {
	limit := c.Limit
	if limit <= 0 {
		limit = KlineWindowLimit
	}

	response, err := c.API.GetKlines(ctx, symbol, interval, limit)
	if err != nil {
		return model.ChartData{}, err
	}

	data := model.ChartData{
		Title:  c.Title(symbol, interval),
		Labels: make([]string, 0, len(response.Data)),
		Values: make([]float64, 0, len(response.Data)),
	}

	for _, bar := range response.Data {
		data.Labels = append(data.Labels, c.Formatter.FormatTimeLabel(bar.Timestamp))
		data.Values = append(data.Values, bar.Close.Value())
	}

	return data, nil
}

// ChartHandle is one constructed line chart. Once destroyed it renders nothing.
type ChartHandle struct {
	id    int64
	data  model.ChartData
	alive bool
}

func (h *ChartHandle) Id() int64 {
	return h.id
}

func (h *ChartHandle) Data() model.ChartData {
	return h.data
}

func (h *ChartHandle) IsAlive() bool {
	return h.alive
}

func (h *ChartHandle) Destroy() {
	h.alive = false
	h.data = model.ChartData{}
}

// Render draws the close series with a y axis and a time label row under it.
// There is no animation: every call is a full redraw.
func (h *ChartHandle) Render(width int, height int) string {
	if !h.alive {
		return ""
	}

	if len(h.data.Values) == 0 {
		return "no data"
	}

	options := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.Caption("Close"),
	}
	if width > 0 {
		options = append(options, asciigraph.Width(width))
	}

	plot := asciigraph.Plot(h.data.Values, options...)

	return plot + "\n" + h.xAxis(plot)
}

func (h *ChartHandle) xAxis(plot string) string {
	switch len(h.data.Labels) {
	case 0:
		return ""
	case 1:
		return h.data.Labels[0]
	}

	first := h.data.Labels[0]
	last := h.data.Labels[len(h.data.Labels)-1]

	plotWidth := 0
	for _, line := range strings.Split(plot, "\n") {
		if length := len([]rune(line)); length > plotWidth {
			plotWidth = length
		}
	}

	gap := plotWidth - len(first) - len(last)
	if gap < 1 {
		gap = 1
	}

	return first + strings.Repeat(" ", gap) + last
}

// ChartCanvas owns the single live chart. Redraw destroys the previous chart
// before constructing the next one.
type ChartCanvas struct {
	current *ChartHandle
	nextId  int64
}

func (c *ChartCanvas) Redraw(data model.ChartData) *ChartHandle {
	if c.current != nil {
		c.current.Destroy()
	}

	c.nextId++
	c.current = &ChartHandle{
		id:    c.nextId,
		data:  data,
		alive: true,
	}

	return c.current
}

func (c *ChartCanvas) Current() *ChartHandle {
	return c.current
}
