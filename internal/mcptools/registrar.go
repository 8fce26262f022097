package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/audit"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/catalog"
	"github.com/gary8403/my-binance-spot-mcp-server/pkg/auth"
)

// ErrMissingCategoryHandler reports an enabled catalog category the engine has
// no adapter table for. The catalog and the adapter tables must stay in
// lock-step; this is a programmer error, fatal at startup.
var ErrMissingCategoryHandler = errors.New("no adapter table for enabled category")

// Recorder receives the outcome of each tool invocation. Implemented by the
// audit service; nil disables recording.
type Recorder interface {
	RecordToolCall(ctx context.Context, actor, tool, category string, outcome audit.Outcome, detail string) error
}

// Registrar builds tool adapters over a venue and binds them onto MCP servers.
type Registrar struct {
	venue Venue
	log   *zap.Logger
	audit Recorder
}

// NewRegistrar creates a registrar. audit may be nil.
func NewRegistrar(venue Venue, log *zap.Logger, audit Recorder) *Registrar {
	return &Registrar{venue: venue, log: log, audit: audit}
}

// toolDef pairs an operation name with the function that binds its adapter.
type toolDef struct {
	name     string
	register func(r *Registrar, srv *mcp.Server)
}

// RegisterAll binds one adapter per enabled tool, iterating categories and
// tool names in configuration order. Registration is all-or-nothing: wiring is
// verified for every category before the first adapter is bound, so a wiring
// failure leaves the server with no tools from this run.
//
// Category names absent from the capability catalog are skipped (the validator
// already warned about them), as are enabled tool names with no entry in the
// category's adapter table.
func (r *Registrar) RegisterAll(srv *mcp.Server, categories []string, enabled map[string][]string) error {
	tables := map[string]func(*Registrar) []toolDef{
		catalog.CategoryMarket:  marketTools,
		catalog.CategoryTrading: tradingTools,
		catalog.CategoryAccount: accountTools,
		catalog.CategoryOrder:   orderTools,
	}

	for _, category := range categories {
		if !catalog.IsCategory(category) {
			continue
		}
		if _, ok := tables[category]; !ok {
			return fmt.Errorf("category %q: %w", category, ErrMissingCategoryHandler)
		}
	}

	registered := 0
	for _, category := range categories {
		if !catalog.IsCategory(category) {
			r.log.Warn("skipping unknown category", zap.String("category", category))
			continue
		}

		defs := tables[category](r)
		byName := make(map[string]toolDef, len(defs))
		for _, def := range defs {
			byName[def.name] = def
		}

		for _, name := range enabled[category] {
			def, ok := byName[name]
			if !ok {
				r.log.Warn("skipping unknown tool",
					zap.String("category", category),
					zap.String("tool", name))
				continue
			}
			def.register(r, srv)
			registered++
			r.log.Info("registered tool",
				zap.String("category", category),
				zap.String("tool", name))
		}
	}

	r.log.Info("tool registration complete", zap.Int("tools", registered))
	return nil
}

// handler adapts a venue call into an MCP tool handler. The venue's result is
// returned as structured content without reshaping; a venue failure propagates
// as the call's error. Each invocation is recorded on the audit trail when a
// recorder is present; recording failures are logged, never surfaced.
func handler[T any](r *Registrar, category, name string, call func(ctx context.Context, args T) (json.RawMessage, error)) func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args T) (*mcp.CallToolResult, any, error) {
		raw, err := call(ctx, args)

		if r.audit != nil {
			outcome := audit.OutcomeSuccess
			detail := ""
			if err != nil {
				outcome = audit.OutcomeError
				detail = err.Error()
			}
			if recErr := r.audit.RecordToolCall(ctx, auth.Subject, name, category, outcome, detail); recErr != nil {
				r.log.Error("audit record failed",
					zap.String("tool", name),
					zap.Error(recErr))
			}
		}

		if err != nil {
			r.log.Warn("tool call failed",
				zap.String("category", category),
				zap.String("tool", name),
				zap.Error(err))
			return nil, nil, err
		}
		return nil, raw, nil
	}
}
