package tests

import (
	"context"

	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-crypto-dashboard/src/model"
)

type DashboardAPIMock struct {
	mock.Mock
}

func (m *DashboardAPIMock) GetKlines(ctx context.Context, symbol string, interval string, limit int64) (model.KlineResponse, error) {
	args := m.Called(symbol, interval, limit)
	return args.Get(0).(model.KlineResponse), args.Error(1)
}
func (m *DashboardAPIMock) Convert(ctx context.Context, amount float64, from string, to string) (model.ConversionResult, error) {
	args := m.Called(amount, from, to)
	return args.Get(0).(model.ConversionResult), args.Error(1)
}
func (m *DashboardAPIMock) GetTicker(ctx context.Context, symbol string) (model.TickerResponse, error) {
	args := m.Called(symbol)
	return args.Get(0).(model.TickerResponse), args.Error(1)
}
func (m *DashboardAPIMock) Ask(ctx context.Context, text string, sid string) (model.AIResponse, error) {
	args := m.Called(text, sid)
	return args.Get(0).(model.AIResponse), args.Error(1)
}

type LocalStorageMock struct {
	mock.Mock
}

func (m *LocalStorageMock) GetItem(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}
func (m *LocalStorageMock) SetItem(ctx context.Context, key string, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}
