package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

func newDashboardAPI(t *testing.T, handler http.HandlerFunc) *DashboardAPI {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &DashboardAPI{
		HttpClient: NewHttpClient(server.URL, time.Second*5),
		Formatter:  &utils.Formatter{},
	}
}

func TestGetKlinesSendsBoundedWindow(t *testing.T) {
	assertion := assert.New(t)

	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {
		assertion.Equal("/api/klines", req.URL.Path)
		assertion.Equal("ETHUSDT", req.URL.Query().Get("symbol"))
		assertion.Equal("5m", req.URL.Query().Get("interval"))
		assertion.Equal("120", req.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"symbol":"ETHUSDT","interval":"5m","data":[{"t":1714147200000,"o":1,"h":2,"l":0.5,"c":1.5,"v":10}]}`)
	})

	response, err := api.GetKlines(context.Background(), "ETHUSDT", "5m", 120)
	require.NoError(t, err)
	assertion.Len(response.Data, 1)
	assertion.Equal(1.5, response.Data[0].Close.Value())
	assertion.Equal(int64(1714147200000), response.Data[0].Timestamp.Value())
}

func TestGetKlinesFailure(t *testing.T) {
	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"Invalid symbol."}`)
	})

	_, err := api.GetKlines(context.Background(), "FOO", "1m", 120)
	require.Error(t, err)

	var responseErr *ResponseError
	assert.ErrorAs(t, err, &responseErr)
	assert.Equal(t, http.StatusBadRequest, responseErr.StatusCode)
}

func TestConvertSuccess(t *testing.T) {
	assertion := assert.New(t)

	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {
		assertion.Equal("2", req.URL.Query().Get("amount"))
		assertion.Equal("BTC", req.URL.Query().Get("from"))
		assertion.Equal("USDT", req.URL.Query().Get("to"))
		_, _ = io.WriteString(w, `{"amount":2,"from":"BTC","to":"USDT","result":86000}`)
	})

	result, err := api.Convert(context.Background(), 2, "BTC", "USDT")
	require.NoError(t, err)
	assertion.True(result.IsSuccess())
	assertion.Equal(86000.00, result.Value())
}

func TestConvertApplicationErrorComesFromBody(t *testing.T) {
	assertion := assert.New(t)

	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"bad pair"}`)
	})

	result, err := api.Convert(context.Background(), 1, "BTC", "XXX")
	require.NoError(t, err)
	assertion.False(result.IsSuccess())
	assertion.Equal("bad pair", result.ErrorMessage())
}

func TestConvertTransportFailure(t *testing.T) {
	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {})
	api.HttpClient.BaseURL = "http://127.0.0.1:1"

	_, err := api.Convert(context.Background(), 1, "BTC", "ETH")
	assert.Error(t, err)
}

func TestGetTicker(t *testing.T) {
	assertion := assert.New(t)

	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {
		assertion.Equal("SOLUSDT", req.URL.Query().Get("symbol"))
		_, _ = io.WriteString(w, `{"symbol":"SOLUSDT","price":142.11,"ts":1714147241054}`)
	})

	ticker, err := api.GetTicker(context.Background(), "SOLUSDT")
	require.NoError(t, err)
	assertion.Equal("SOLUSDT", ticker.ToPriceTick().Symbol)
	assertion.Equal(142.11, ticker.ToPriceTick().Price.Value())
}

func TestAskPostsTextAndSession(t *testing.T) {
	assertion := assert.New(t)

	api := newDashboardAPI(t, func(w http.ResponseWriter, req *http.Request) {
		assertion.Equal(http.MethodPost, req.Method)
		assertion.Equal("/api/ai", req.URL.Path)
		assertion.Equal("application/json", req.Header.Get("Content-Type"))

		var request model.AIRequest
		assertion.NoError(json.NewDecoder(req.Body).Decode(&request))
		assertion.Equal("hello", request.Text)
		assertion.Equal("sid-1", request.SessionId)

		_, _ = io.WriteString(w, `{"reply":"hi there"}`)
	})

	response, err := api.Ask(context.Background(), "hello", "sid-1")
	require.NoError(t, err)
	assertion.True(response.HasReply())
	assertion.Equal("hi there", *response.Reply)
}
