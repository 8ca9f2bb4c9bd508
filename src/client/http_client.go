package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ResponseError is returned for HTTP statuses >= 400 and keeps the body,
// since the dashboard backend reports application errors in it.
type ResponseError struct {
	Url        string
	StatusCode int
	Body       []byte
}

func (r *ResponseError) Error() string {
	return fmt.Sprintf("Request [%s] failed with error code: %d", r.Url, r.StatusCode)
}

type HttpClient struct {
	BaseURL string
	Client  *http.Client
}

func NewHttpClient(baseURL string, timeout time.Duration) *HttpClient {
	return &HttpClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (h *HttpClient) Post(ctx context.Context, path string, message []byte, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+path, bytes.NewReader(message))
	if err != nil {
		return nil, errors.Wrap(err, "build POST request")
	}
	req.Header.Set("Content-Type", "application/json")

	return h.do(req, headers)
}

func (h *HttpClient) Get(ctx context.Context, path string, query url.Values, headers map[string]string) ([]byte, error) {
	target := h.BaseURL + path
	if len(query) > 0 {
		target = fmt.Sprintf("%s?%s", target, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build GET request")
	}

	return h.do(req, headers)
}

func (h *HttpClient) do(req *http.Request, headers map[string]string) ([]byte, error) {
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request [%s %s]", req.Method, req.URL.Path)
	}
	defer res.Body.Close()

	responseBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read response [%s %s]", req.Method, req.URL.Path)
	}

	if res.StatusCode >= 400 {
		return nil, &ResponseError{
			Url:        req.URL.Path,
			StatusCode: res.StatusCode,
			Body:       responseBody,
		}
	}

	return responseBody, nil
}
