package mcptools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/catalog"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/binance"
)

type symbolArgs struct {
	Symbol string `json:"symbol"`
}

type optionalSymbolArgs struct {
	Symbol *string `json:"symbol,omitempty"`
}

type depthArgs struct {
	Symbol string `json:"symbol"`
	Limit  *int64 `json:"limit,omitempty"`
}

type klinesArgs struct {
	Symbol    string `json:"symbol"`
	Interval  string `json:"interval"`
	StartTime *int64 `json:"start_time,omitempty"`
	EndTime   *int64 `json:"end_time,omitempty"`
	Limit     *int64 `json:"limit,omitempty"`
}

func marketTools(r *Registrar) []toolDef {
	const cat = catalog.CategoryMarket
	v := r.venue.Market

	return []toolDef{
		{"get_symbol_ticker", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_symbol_ticker",
				Description: "Get the latest price ticker for a trading pair symbol (e.g. 'BTCUSDT').",
			}, handler(r, cat, "get_symbol_ticker", func(ctx context.Context, args symbolArgs) (json.RawMessage, error) {
				return v.GetTicker(ctx, args.Symbol)
			}))
		}},
		{"get_orderbook", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_orderbook",
				Description: "Get order book depth for a symbol. Optional limit (default 100, max 5000).",
			}, handler(r, cat, "get_orderbook", func(ctx context.Context, args depthArgs) (json.RawMessage, error) {
				return v.GetOrderbook(ctx, args.Symbol, args.Limit)
			}))
		}},
		{"get_klines", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_klines",
				Description: "Get candlestick data for a symbol and interval (e.g. '1m', '1h', '1d'). Optional start_time/end_time in milliseconds and limit (default 500, max 1000).",
			}, handler(r, cat, "get_klines", func(ctx context.Context, args klinesArgs) (json.RawMessage, error) {
				return v.GetKlines(ctx, binance.KlinesRequest{
					Symbol:    args.Symbol,
					Interval:  args.Interval,
					StartTime: args.StartTime,
					EndTime:   args.EndTime,
					Limit:     args.Limit,
				})
			}))
		}},
		{"get_trades", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_trades",
				Description: "Get recent trades for a symbol. Optional limit (default 500, max 1000).",
			}, handler(r, cat, "get_trades", func(ctx context.Context, args depthArgs) (json.RawMessage, error) {
				return v.GetTrades(ctx, args.Symbol, args.Limit)
			}))
		}},
		{"get_24hr_ticker", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_24hr_ticker",
				Description: "Get 24 hour price change statistics. Omit symbol to get all symbols.",
			}, handler(r, cat, "get_24hr_ticker", func(ctx context.Context, args optionalSymbolArgs) (json.RawMessage, error) {
				return v.Get24hrTicker(ctx, args.Symbol)
			}))
		}},
		{"get_avg_price", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_avg_price",
				Description: "Get the current average price for a symbol.",
			}, handler(r, cat, "get_avg_price", func(ctx context.Context, args symbolArgs) (json.RawMessage, error) {
				return v.GetAvgPrice(ctx, args.Symbol)
			}))
		}},
		{"get_exchange_info", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_exchange_info",
				Description: "Get exchange trading rules and symbol information. Omit symbol to get all symbols.",
			}, handler(r, cat, "get_exchange_info", func(ctx context.Context, args optionalSymbolArgs) (json.RawMessage, error) {
				return v.GetExchangeInfo(ctx, args.Symbol)
			}))
		}},
	}
}
