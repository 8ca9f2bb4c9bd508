package ui

import (
	"github.com/charmbracelet/lipgloss"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("4"))
	onlineStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	offlineStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	symbolStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	upStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	downStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
	selectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

func directionStyle(direction string) lipgloss.Style {
	switch direction {
	case model.DirectionUp:
		return upStyle
	case model.DirectionDown:
		return downStyle
	default:
		return priceStyle
	}
}
