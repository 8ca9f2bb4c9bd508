package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/tests"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

func TestConverterDisplaysResult(t *testing.T) {
	api := new(tests.DashboardAPIMock)
	api.On("Convert", 2.00, "BTC", "USDT").Return(model.ConversionSuccess(86000), nil)

	converter := Converter{API: api, Formatter: &utils.Formatter{}}
	text, err := converter.Convert(context.Background(), "2", "BTC", "USDT")
	require.NoError(t, err)
	assert.Equal(t, "2 BTC ≈ 86000 USDT", text)
}

func TestConverterZeroResultIsValid(t *testing.T) {
	api := new(tests.DashboardAPIMock)
	api.On("Convert", 0.00, "BTC", "ETH").Return(model.ConversionSuccess(0), nil)

	converter := Converter{API: api, Formatter: &utils.Formatter{}}
	text, err := converter.Convert(context.Background(), "not a number", "BTC", "ETH")
	require.NoError(t, err)
	assert.Equal(t, "0 BTC ≈ 0 ETH", text)
}

func TestConverterDisplaysServerError(t *testing.T) {
	assertion := assert.New(t)

	api := new(tests.DashboardAPIMock)
	api.On("Convert", 1.00, "BTC", "XXX").Return(model.ConversionFailure("bad pair"), nil)
	api.On("Convert", 1.00, "BTC", "YYY").Return(model.ConversionFailure(""), nil)

	converter := Converter{API: api, Formatter: &utils.Formatter{}}

	text, err := converter.Convert(context.Background(), "1", "BTC", "XXX")
	require.NoError(t, err)
	assertion.Equal("Error: bad pair", text)

	text, err = converter.Convert(context.Background(), "1", "BTC", "YYY")
	require.NoError(t, err)
	assertion.Equal("Error: unknown", text)
}

func TestConverterTransportError(t *testing.T) {
	api := new(tests.DashboardAPIMock)
	api.On("Convert", 1.5, "ETH", "BTC").Return(model.ConversionResult{}, errors.New("connection refused"))

	converter := Converter{API: api, Formatter: &utils.Formatter{}}
	text, err := converter.Convert(context.Background(), "1.5", "ETH", "BTC")
	assert.Error(t, err)
	assert.Equal(t, "", text)
}

func TestConverterDisplaysNullResult(t *testing.T) {
	api := new(tests.DashboardAPIMock)
	api.On("Convert", 2.00, "BTC", "USDT").Return(model.ConversionNullSuccess(), nil)

	converter := Converter{API: api, Formatter: &utils.Formatter{}}
	text, err := converter.Convert(context.Background(), "2", "BTC", "USDT")
	require.NoError(t, err)
	assert.Equal(t, "2 BTC ≈ null USDT", text)
}
