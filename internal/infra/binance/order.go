package binance

import (
	"context"
	"encoding/json"
	"net/http"
)

// OrderManagement wraps the signed Spot order query and bulk-cancel endpoints.
type OrderManagement struct {
	client *Client
}

// NewOrderManagement creates an OrderManagement wrapper over client.
func NewOrderManagement(client *Client) *OrderManagement {
	return &OrderManagement{client: client}
}

// AllOrdersRequest names the parameters of GetAllOrders. Times are
// milliseconds; nil optionals are omitted from the venue call.
type AllOrdersRequest struct {
	Symbol    string
	OrderID   *int64
	StartTime *int64
	EndTime   *int64
	Limit     *int64
}

// GetOpenOrders returns open orders; with a nil symbol the venue returns
// open orders across all symbols.
func (o *OrderManagement) GetOpenOrders(ctx context.Context, symbol *string) (json.RawMessage, error) {
	params := NewParams().OptString("symbol", symbol)
	return o.client.do(ctx, http.MethodGet, "/api/v3/openOrders", params, true)
}

// GetAllOrders returns all orders (active, canceled, filled) for a symbol.
func (o *OrderManagement) GetAllOrders(ctx context.Context, req AllOrdersRequest) (json.RawMessage, error) {
	params := NewParams().
		Set("symbol", req.Symbol).
		OptInt64("orderId", req.OrderID).
		OptInt64("startTime", req.StartTime).
		OptInt64("endTime", req.EndTime).
		OptInt64("limit", req.Limit)
	return o.client.do(ctx, http.MethodGet, "/api/v3/allOrders", params, true)
}

// CancelAllOrders cancels every open order on a symbol.
func (o *OrderManagement) CancelAllOrders(ctx context.Context, symbol string) (json.RawMessage, error) {
	params := NewParams().Set("symbol", symbol)
	return o.client.do(ctx, http.MethodDelete, "/api/v3/openOrders", params, true)
}

// CancelOpenOrders is an alias of CancelAllOrders, kept because both names
// exist in the tool catalog.
func (o *OrderManagement) CancelOpenOrders(ctx context.Context, symbol string) (json.RawMessage, error) {
	return o.CancelAllOrders(ctx, symbol)
}
