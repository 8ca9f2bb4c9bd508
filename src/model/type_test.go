package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceShouldAcceptNumberAndString(t *testing.T) {
	assertion := assert.New(t)

	var tick PriceTick
	assertion.NoError(json.Unmarshal([]byte(`{"symbol":"BTCUSDT","price":43123.4,"ts":1714147241054}`), &tick))
	assertion.Equal("BTCUSDT", tick.Symbol)
	assertion.Equal(43123.4, tick.Price.Value())
	assertion.Equal(int64(1714147241054), tick.Timestamp.Value())

	var fromString PriceTick
	assertion.NoError(json.Unmarshal([]byte(`{"symbol":"ETHUSDT","price":"1474.64"}`), &fromString))
	assertion.Equal(1474.64, fromString.Price.Value())
	assertion.Nil(fromString.Timestamp)
}

func TestPriceShouldRejectUnsupportedType(t *testing.T) {
	var price Price
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &price))
}

func TestSupportedSymbolsDefault(t *testing.T) {
	assertion := assert.New(t)

	symbols := SupportedSymbols{"ETHUSDT", "BTCUSDT", "SOLUSDT"}
	assertion.Equal("BTCUSDT", symbols.Default(DefaultSymbol))
	assertion.Equal("ETHUSDT", SupportedSymbols{"ETHUSDT", "SOLUSDT"}.Default(DefaultSymbol))
	assertion.Equal("", SupportedSymbols{}.Default(DefaultSymbol))
	assertion.Equal(2, symbols.IndexOf("SOLUSDT"))
}
