package model

import "slices"

const DefaultSymbol = "BTCUSDT"

// SupportedSymbols is the ordered set of trading pairs offered by the
// dashboard. It is supplied from outside and never changes during a session.
type SupportedSymbols []string

func (s SupportedSymbols) Contains(symbol string) bool {
	return slices.Contains(s, symbol)
}

func (s SupportedSymbols) IndexOf(symbol string) int {
	return slices.Index(s, symbol)
}

// Default returns preferred when it is supported, the first symbol otherwise.
func (s SupportedSymbols) Default(preferred string) string {
	if s.Contains(preferred) {
		return preferred
	}

	if len(s) > 0 {
		return s[0]
	}

	return ""
}
