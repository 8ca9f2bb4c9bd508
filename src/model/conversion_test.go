package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionResultTreatsZeroAsSuccess(t *testing.T) {
	assertion := assert.New(t)

	var response ConversionResponse
	assertion.NoError(json.Unmarshal([]byte(`{"result":0}`), &response))

	result := response.ToResult()
	assertion.True(result.IsSuccess())
	assertion.Equal(0.00, result.Value())
}

func TestConversionResultNullIsPresent(t *testing.T) {
	assertion := assert.New(t)

	var response ConversionResponse
	assertion.NoError(json.Unmarshal([]byte(`{"amount":2,"from":"BTC","to":"USDT","result":null}`), &response))

	result := response.ToResult()
	assertion.True(result.IsSuccess())
	assertion.True(result.IsNull())
	assertion.Equal("BTC", response.From)
	assertion.Nil(response.Result)

	var malformed ConversionResponse
	assertion.Error(json.Unmarshal([]byte(`{"result":"oops"}`), &malformed))
}

func TestConversionResultFailure(t *testing.T) {
	assertion := assert.New(t)

	var withError ConversionResponse
	assertion.NoError(json.Unmarshal([]byte(`{"error":"bad pair"}`), &withError))
	assertion.False(withError.ToResult().IsSuccess())
	assertion.Equal("bad pair", withError.ToResult().ErrorMessage())

	var empty ConversionResponse
	assertion.NoError(json.Unmarshal([]byte(`{}`), &empty))
	assertion.False(empty.ToResult().IsSuccess())
	assertion.Equal("", empty.ToResult().ErrorMessage())
}

func TestAIResponseEmptyReply(t *testing.T) {
	assertion := assert.New(t)

	var response AIResponse
	assertion.NoError(json.Unmarshal([]byte(`{"reply":""}`), &response))
	assertion.False(response.HasReply())

	assertion.NoError(json.Unmarshal([]byte(`{"reply":"hi"}`), &response))
	assertion.True(response.HasReply())
}
