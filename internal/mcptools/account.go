package mcptools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/catalog"
)

type emptyArgs struct{}

type balanceArgs struct {
	Asset *string `json:"asset,omitempty"`
}

func accountTools(r *Registrar) []toolDef {
	const cat = catalog.CategoryAccount
	v := r.venue.Account

	return []toolDef{
		{"get_account_info", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_account_info",
				Description: "Get account information including balances, permissions and commission rates.",
			}, handler(r, cat, "get_account_info", func(ctx context.Context, _ emptyArgs) (json.RawMessage, error) {
				return v.GetAccountInfo(ctx)
			}))
		}},
		{"get_balance", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_balance",
				Description: "Get the balance for one asset (e.g. 'BTC'), or all non-zero balances when asset is omitted.",
			}, handler(r, cat, "get_balance", func(ctx context.Context, args balanceArgs) (json.RawMessage, error) {
				return v.GetBalance(ctx, args.Asset)
			}))
		}},
		{"get_account_status", func(r *Registrar, srv *mcp.Server) {
			mcp.AddTool(srv, &mcp.Tool{
				Name:        "get_account_status",
				Description: "Get the account's API trading status, including any active restrictions.",
			}, handler(r, cat, "get_account_status", func(ctx context.Context, _ emptyArgs) (json.RawMessage, error) {
				return v.GetAccountStatus(ctx)
			}))
		}},
	}
}
