package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

type DashboardAPIInterface interface {
	GetKlines(ctx context.Context, symbol string, interval string, limit int64) (model.KlineResponse, error)
	Convert(ctx context.Context, amount float64, from string, to string) (model.ConversionResult, error)
	GetTicker(ctx context.Context, symbol string) (model.TickerResponse, error)
	Ask(ctx context.Context, text string, sid string) (model.AIResponse, error)
}

// DashboardAPI talks to the dashboard backend (klines, convert, ticker, ai).
type DashboardAPI struct {
	HttpClient *HttpClient
	Formatter  *utils.Formatter
}

func (d *DashboardAPI) GetKlines(ctx context.Context, symbol string, interval string, limit int64) (model.KlineResponse, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	query.Set("interval", interval)
	query.Set("limit", strconv.FormatInt(limit, 10))

	var response model.KlineResponse
	body, err := d.HttpClient.Get(ctx, "/api/klines", query, nil)
	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, errors.Wrapf(err, "[%s] decode klines", symbol)
	}

	if response.Error != nil {
		return response, errors.Errorf("[%s] klines: %s", symbol, *response.Error)
	}

	return response, nil
}

func (d *DashboardAPI) Convert(ctx context.Context, amount float64, from string, to string) (model.ConversionResult, error) {
	query := url.Values{}
	query.Set("amount", d.Formatter.FormatNumber(amount))
	query.Set("from", from)
	query.Set("to", to)

	body, err := d.HttpClient.Get(ctx, "/api/convert", query, nil)
	if err != nil {
		var responseErr *ResponseError
		if !errors.As(err, &responseErr) || len(responseErr.Body) == 0 {
			return model.ConversionResult{}, err
		}
		// conversion failures come back as 400 with an {error} body
		body = responseErr.Body
	}

	var response model.ConversionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return model.ConversionResult{}, errors.Wrapf(err, "[%s/%s] decode conversion", from, to)
	}

	return response.ToResult(), nil
}

func (d *DashboardAPI) GetTicker(ctx context.Context, symbol string) (model.TickerResponse, error) {
	query := url.Values{}
	query.Set("symbol", symbol)

	var response model.TickerResponse
	body, err := d.HttpClient.Get(ctx, "/api/ticker", query, nil)
	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, errors.Wrapf(err, "[%s] decode ticker", symbol)
	}

	if response.Error != nil {
		return response, errors.Errorf("[%s] ticker: %s", symbol, *response.Error)
	}

	return response, nil
}

func (d *DashboardAPI) Ask(ctx context.Context, text string, sid string) (model.AIResponse, error) {
	var response model.AIResponse

	serialized, err := json.Marshal(model.AIRequest{Text: text, SessionId: sid})
	if err != nil {
		return response, errors.Wrap(err, "encode ai request")
	}

	body, err := d.HttpClient.Post(ctx, "/api/ai", serialized, nil)
	if err != nil {
		return response, err
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return response, errors.Wrap(err, "decode ai reply")
	}

	return response, nil
}
