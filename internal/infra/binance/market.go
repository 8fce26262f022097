package binance

import (
	"context"
	"encoding/json"
	"net/http"
)

// MarketData wraps the public Spot market-data endpoints.
type MarketData struct {
	client *Client
}

// NewMarketData creates a MarketData wrapper over client.
func NewMarketData(client *Client) *MarketData {
	return &MarketData{client: client}
}

// KlinesRequest names the parameters of GetKlines. StartTime/EndTime are
// milliseconds; nil optionals are omitted from the venue call.
type KlinesRequest struct {
	Symbol    string
	Interval  string
	StartTime *int64
	EndTime   *int64
	Limit     *int64
}

// GetTicker returns the latest price ticker for symbol.
func (m *MarketData) GetTicker(ctx context.Context, symbol string) (json.RawMessage, error) {
	params := NewParams().Set("symbol", symbol)
	return m.client.do(ctx, http.MethodGet, "/api/v3/ticker/price", params, false)
}

// GetOrderbook returns order book depth for symbol.
func (m *MarketData) GetOrderbook(ctx context.Context, symbol string, limit *int64) (json.RawMessage, error) {
	params := NewParams().Set("symbol", symbol).OptInt64("limit", limit)
	return m.client.do(ctx, http.MethodGet, "/api/v3/depth", params, false)
}

// GetKlines returns candlestick data.
func (m *MarketData) GetKlines(ctx context.Context, req KlinesRequest) (json.RawMessage, error) {
	params := NewParams().
		Set("symbol", req.Symbol).
		Set("interval", req.Interval).
		OptInt64("startTime", req.StartTime).
		OptInt64("endTime", req.EndTime).
		OptInt64("limit", req.Limit)
	return m.client.do(ctx, http.MethodGet, "/api/v3/klines", params, false)
}

// GetTrades returns recent trades for symbol.
func (m *MarketData) GetTrades(ctx context.Context, symbol string, limit *int64) (json.RawMessage, error) {
	params := NewParams().Set("symbol", symbol).OptInt64("limit", limit)
	return m.client.do(ctx, http.MethodGet, "/api/v3/trades", params, false)
}

// Get24hrTicker returns 24h price change statistics; with a nil symbol the
// venue returns every symbol.
func (m *MarketData) Get24hrTicker(ctx context.Context, symbol *string) (json.RawMessage, error) {
	params := NewParams().OptString("symbol", symbol)
	return m.client.do(ctx, http.MethodGet, "/api/v3/ticker/24hr", params, false)
}

// GetAvgPrice returns the current average price for symbol.
func (m *MarketData) GetAvgPrice(ctx context.Context, symbol string) (json.RawMessage, error) {
	params := NewParams().Set("symbol", symbol)
	return m.client.do(ctx, http.MethodGet, "/api/v3/avgPrice", params, false)
}

// GetExchangeInfo returns exchange trading rules and symbol information.
func (m *MarketData) GetExchangeInfo(ctx context.Context, symbol *string) (json.RawMessage, error) {
	params := NewParams().OptString("symbol", symbol)
	return m.client.do(ctx, http.MethodGet, "/api/v3/exchangeInfo", params, false)
}
