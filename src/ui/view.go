package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

const (
	chartHeight       = 12
	chartMinWidth     = 40
	chartAxisReserve  = 12
	priceColumnWidth  = 12
	symbolColumnWidth = 10
)

func (d *Dashboard) View() string {
	header := titleStyle.Render(" go-crypto-dashboard ") + "  " + d.statusView()

	left := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(d.pricesView()),
		panelStyle.Render(d.converterView()),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(d.chartView()),
		panelStyle.Render(d.queryView()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	footer := footerStyle.Render(" tab focus  left/right select  enter activate  ctrl+c quit ")

	return header + "\n" + body + "\n" + footer
}

func (d *Dashboard) statusView() string {
	if d.online {
		return onlineStyle.Render(StatusOnline)
	}

	return offlineStyle.Render(StatusOffline)
}

func (d *Dashboard) pricesView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Prices"))

	if len(d.rows) == 0 {
		b.WriteString("\n" + dimStyle.Render("no prices yet"))
		return b.String()
	}

	for _, row := range d.rows {
		b.WriteString("\n")
		b.WriteString(symbolStyle.Render(fmt.Sprintf("%-*s", symbolColumnWidth, row.Symbol)))
		b.WriteString(directionStyle(row.Direction).Render(fmt.Sprintf("%*s", priceColumnWidth+6, row.Display)))
		b.WriteString(" " + directionStyle(row.Direction).Render(arrow(row.Direction)))
	}

	return b.String()
}

func arrow(direction string) string {
	switch direction {
	case model.DirectionUp:
		return "▲"
	case model.DirectionDown:
		return "▼"
	default:
		return " "
	}
}

func (d *Dashboard) chartView() string {
	var b strings.Builder
	b.WriteString(d.control(focusSymbol, "Symbol", d.symbol.Value()))
	b.WriteString("  ")
	b.WriteString(d.control(focusInterval, "Interval", d.interval.Value()))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(d.chartTitle))

	if handle := d.canvas.Current(); handle != nil {
		b.WriteString("\n")
		b.WriteString(handle.Render(d.chartWidth(), chartHeight))
	}

	return b.String()
}

func (d *Dashboard) chartWidth() int {
	width := d.width/2 - chartAxisReserve
	if width < chartMinWidth {
		return chartMinWidth
	}

	return width
}

func (d *Dashboard) converterView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Converter"))
	b.WriteString("\n")
	b.WriteString(d.inputLabel(focusAmount, "Amount") + d.amount.View())
	b.WriteString("\n")
	b.WriteString(d.control(focusFrom, "From", d.from.Value()))
	b.WriteString("  ")
	b.WriteString(d.control(focusTo, "To", d.to.Value()))
	b.WriteString("\n")
	b.WriteString(d.conversion)

	return b.String()
}

func (d *Dashboard) queryView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Ask AI"))
	b.WriteString("\n")
	b.WriteString(d.inputLabel(focusQuery, "Query") + d.query.View())
	b.WriteString("\n")
	b.WriteString(d.reply)

	return b.String()
}

func (d *Dashboard) control(focus focusArea, label string, value string) string {
	return d.inputLabel(focus, label) + selectorStyle.Render("‹ "+value+" ›")
}

func (d *Dashboard) inputLabel(focus focusArea, label string) string {
	if d.focus == focus {
		return focusedStyle.Render(label) + " "
	}

	return labelStyle.Render(label) + " "
}
