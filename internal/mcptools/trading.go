package mcptools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/catalog"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/binance"
)

type createOrderArgs struct {
	Symbol           string   `json:"symbol"`
	Side             string   `json:"side"`
	OrderType        string   `json:"order_type"`
	Quantity         *float64 `json:"quantity,omitempty"`
	QuoteOrderQty    *float64 `json:"quote_order_qty,omitempty"`
	Price            *float64 `json:"price,omitempty"`
	TimeInForce      *string  `json:"time_in_force,omitempty"`
	StopPrice        *float64 `json:"stop_price,omitempty"`
	IcebergQty       *float64 `json:"iceberg_qty,omitempty"`
	NewClientOrderID *string  `json:"new_client_order_id,omitempty"`
}

type testOrderArgs struct {
	Symbol        string   `json:"symbol"`
	Side          string   `json:"side"`
	OrderType     string   `json:"order_type"`
	Quantity      *float64 `json:"quantity,omitempty"`
	QuoteOrderQty *float64 `json:"quote_order_qty,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	TimeInForce   *string  `json:"time_in_force,omitempty"`
}

type orderLookupArgs struct {
	Symbol            string  `json:"symbol"`
	OrderID           *int64  `json:"order_id,omitempty"`
	OrigClientOrderID *string `json:"orig_client_order_id,omitempty"`
}

func tradingTools(r *Registrar) []toolDef {
	const cat = catalog.CategoryTrading
	v := r.venue.Trading

	return []toolDef{
		{"create_order", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "create_order",
				Description: "Create a new order. side is 'BUY' or 'SELL'; order_type is one of 'LIMIT', 'MARKET', 'STOP_LOSS', 'STOP_LOSS_LIMIT', 'TAKE_PROFIT', 'TAKE_PROFIT_LIMIT', 'LIMIT_MAKER'. LIMIT orders require price and time_in_force ('GTC', 'IOC', 'FOK'); STOP orders require stop_price.",
			}, handler(r, cat, "create_order", func(ctx context.Context, args createOrderArgs) (json.RawMessage, error) {
				return v.CreateOrder(ctx, binance.OrderRequest{
					Symbol:           args.Symbol,
					Side:             args.Side,
					Type:             args.OrderType,
					Quantity:         args.Quantity,
					QuoteOrderQty:    args.QuoteOrderQty,
					Price:            args.Price,
					TimeInForce:      args.TimeInForce,
					StopPrice:        args.StopPrice,
					IcebergQty:       args.IcebergQty,
					NewClientOrderID: args.NewClientOrderID,
				})
			}))
		}},
		{"test_order", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "test_order",
				Description: "Validate an order without placing it. Same parameters as create_order; returns an empty object when validation passes.",
			}, handler(r, cat, "test_order", func(ctx context.Context, args testOrderArgs) (json.RawMessage, error) {
				return v.TestOrder(ctx, binance.OrderRequest{
					Symbol:        args.Symbol,
					Side:          args.Side,
					Type:          args.OrderType,
					Quantity:      args.Quantity,
					QuoteOrderQty: args.QuoteOrderQty,
					Price:         args.Price,
					TimeInForce:   args.TimeInForce,
				})
			}))
		}},
		{"cancel_order", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "cancel_order",
				Description: "Cancel an active order. Either order_id or orig_client_order_id is required.",
			}, handler(r, cat, "cancel_order", func(ctx context.Context, args orderLookupArgs) (json.RawMessage, error) {
				return v.CancelOrder(ctx, args.Symbol, args.OrderID, args.OrigClientOrderID)
			}))
		}},
		{"get_order", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_order",
				Description: "Check an order's status. Either order_id or orig_client_order_id is required.",
			}, handler(r, cat, "get_order", func(ctx context.Context, args orderLookupArgs) (json.RawMessage, error) {
				return v.GetOrder(ctx, args.Symbol, args.OrderID, args.OrigClientOrderID)
			}))
		}},
	}
}
