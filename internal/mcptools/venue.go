// Package mcptools binds the enabled subset of the capability catalog onto an
// MCP server. Each tool adapter is a thin closure over the venue client: it
// normalizes parameters (optional arguments absent from the call are omitted
// from the forwarded request entirely) and passes results and failures through
// unmodified.
package mcptools

import (
	"context"
	"encoding/json"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/binance"
)

// MarketData is the market-data slice of the venue.
type MarketData interface {
	GetTicker(ctx context.Context, symbol string) (json.RawMessage, error)
	GetOrderbook(ctx context.Context, symbol string, limit *int64) (json.RawMessage, error)
	GetKlines(ctx context.Context, req binance.KlinesRequest) (json.RawMessage, error)
	GetTrades(ctx context.Context, symbol string, limit *int64) (json.RawMessage, error)
	Get24hrTicker(ctx context.Context, symbol *string) (json.RawMessage, error)
	GetAvgPrice(ctx context.Context, symbol string) (json.RawMessage, error)
	GetExchangeInfo(ctx context.Context, symbol *string) (json.RawMessage, error)
}

// Trading is the order-placement slice of the venue.
type Trading interface {
	CreateOrder(ctx context.Context, req binance.OrderRequest) (json.RawMessage, error)
	TestOrder(ctx context.Context, req binance.OrderRequest) (json.RawMessage, error)
	CancelOrder(ctx context.Context, symbol string, orderID *int64, origClientOrderID *string) (json.RawMessage, error)
	GetOrder(ctx context.Context, symbol string, orderID *int64, origClientOrderID *string) (json.RawMessage, error)
}

// Account is the account-information slice of the venue.
type Account interface {
	GetAccountInfo(ctx context.Context) (json.RawMessage, error)
	GetBalance(ctx context.Context, asset *string) (json.RawMessage, error)
	GetAccountStatus(ctx context.Context) (json.RawMessage, error)
}

// OrderManagement is the open/historical order slice of the venue.
type OrderManagement interface {
	GetOpenOrders(ctx context.Context, symbol *string) (json.RawMessage, error)
	GetAllOrders(ctx context.Context, req binance.AllOrdersRequest) (json.RawMessage, error)
	CancelAllOrders(ctx context.Context, symbol string) (json.RawMessage, error)
	CancelOpenOrders(ctx context.Context, symbol string) (json.RawMessage, error)
}

// Venue groups the per-category venue interfaces the adapters delegate to.
type Venue struct {
	Market  MarketData
	Trading Trading
	Account Account
	Orders  OrderManagement
}

// NewVenue wires a Venue over a live exchange client.
func NewVenue(client *binance.Client) Venue {
	return Venue{
		Market:  binance.NewMarketData(client),
		Trading: binance.NewTrading(client),
		Account: binance.NewAccount(client),
		Orders:  binance.NewOrderManagement(client),
	}
}
