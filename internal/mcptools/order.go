package mcptools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/catalog"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/binance"
)

type allOrdersArgs struct {
	Symbol    string `json:"symbol"`
	OrderID   *int64 `json:"order_id,omitempty"`
	StartTime *int64 `json:"start_time,omitempty"`
	EndTime   *int64 `json:"end_time,omitempty"`
	Limit     *int64 `json:"limit,omitempty"`
}

func orderTools(r *Registrar) []toolDef {
	const cat = catalog.CategoryOrder
	v := r.venue.Orders

	return []toolDef{
		{"get_open_orders", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_open_orders",
				Description: "Get open orders for a symbol, or across all symbols when symbol is omitted.",
			}, handler(r, cat, "get_open_orders", func(ctx context.Context, args optionalSymbolArgs) (json.RawMessage, error) {
				return v.GetOpenOrders(ctx, args.Symbol)
			}))
		}},
		{"get_all_orders", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_all_orders",
				Description: "Get all orders for a symbol: active, canceled and filled. Optional order_id to fetch from, start_time/end_time in milliseconds and limit (default 500, max 1000).",
			}, handler(r, cat, "get_all_orders", func(ctx context.Context, args allOrdersArgs) (json.RawMessage, error) {
				return v.GetAllOrders(ctx, binance.AllOrdersRequest{
					Symbol:    args.Symbol,
					OrderID:   args.OrderID,
					StartTime: args.StartTime,
					EndTime:   args.EndTime,
					Limit:     args.Limit,
				})
			}))
		}},
		{"cancel_all_orders", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "cancel_all_orders",
				Description: "Cancel every open order on a symbol.",
			}, handler(r, cat, "cancel_all_orders", func(ctx context.Context, args symbolArgs) (json.RawMessage, error) {
				return v.CancelAllOrders(ctx, args.Symbol)
			}))
		}},
		{"cancel_open_orders", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "cancel_open_orders",
				Description: "Cancel every open order on a symbol. Alias of cancel_all_orders.",
			}, handler(r, cat, "cancel_open_orders", func(ctx context.Context, args symbolArgs) (json.RawMessage, error) {
				return v.CancelOpenOrders(ctx, args.Symbol)
			}))
		}},
	}
}
