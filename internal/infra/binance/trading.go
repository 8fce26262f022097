package binance

import (
	"context"
	"encoding/json"
	"net/http"
)

// Trading wraps the signed Spot order placement endpoints.
type Trading struct {
	client *Client
}

// NewTrading creates a Trading wrapper over client.
func NewTrading(client *Client) *Trading {
	return &Trading{client: client}
}

// OrderRequest names the parameters of CreateOrder and TestOrder. Symbol,
// Side and Type are required by the venue for every order type; everything
// else depends on the order type and is omitted when nil.
type OrderRequest struct {
	Symbol           string
	Side             string // BUY or SELL
	Type             string // LIMIT, MARKET, STOP_LOSS, ...
	Quantity         *float64
	QuoteOrderQty    *float64
	Price            *float64
	TimeInForce      *string // GTC, IOC, FOK
	StopPrice        *float64
	IcebergQty       *float64
	NewClientOrderID *string
}

func (r OrderRequest) params() *Params {
	return NewParams().
		Set("symbol", r.Symbol).
		Set("side", r.Side).
		Set("type", r.Type).
		OptFloat("quantity", r.Quantity).
		OptFloat("quoteOrderQty", r.QuoteOrderQty).
		OptFloat("price", r.Price).
		OptString("timeInForce", r.TimeInForce).
		OptFloat("stopPrice", r.StopPrice).
		OptFloat("icebergQty", r.IcebergQty).
		OptString("newClientOrderId", r.NewClientOrderID)
}

// CreateOrder places a new order.
func (t *Trading) CreateOrder(ctx context.Context, req OrderRequest) (json.RawMessage, error) {
	return t.client.do(ctx, http.MethodPost, "/api/v3/order", req.params(), true)
}

// TestOrder validates an order without placing it. The venue returns an
// empty object on success.
func (t *Trading) TestOrder(ctx context.Context, req OrderRequest) (json.RawMessage, error) {
	return t.client.do(ctx, http.MethodPost, "/api/v3/order/test", req.params(), true)
}

// CancelOrder cancels an active order, addressed by either the venue order
// id or the original client order id.
func (t *Trading) CancelOrder(ctx context.Context, symbol string, orderID *int64, origClientOrderID *string) (json.RawMessage, error) {
	params := NewParams().
		Set("symbol", symbol).
		OptInt64("orderId", orderID).
		OptString("origClientOrderId", origClientOrderID)
	return t.client.do(ctx, http.MethodDelete, "/api/v3/order", params, true)
}

// GetOrder queries an order's status.
func (t *Trading) GetOrder(ctx context.Context, symbol string, orderID *int64, origClientOrderID *string) (json.RawMessage, error) {
	params := NewParams().
		Set("symbol", symbol).
		OptInt64("orderId", orderID).
		OptString("origClientOrderId", origClientOrderID)
	return t.client.do(ctx, http.MethodGet, "/api/v3/order", params, true)
}
