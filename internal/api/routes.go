// Route registration and go-chi router setup.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	apmiddleware "github.com/gary8403/my-binance-spot-mcp-server/internal/api/middleware"
	pkgauth "github.com/gary8403/my-binance-spot-mcp-server/pkg/auth"
)

// NewRouter wires the HTTP surface: an unauthenticated health probe and the
// MCP endpoint behind the token gate. mcpHandler serves the MCP session
// protocol; every request reaching it has already passed the gate.
func NewRouter(mcpHandler http.Handler, verifier *pkgauth.Verifier, log *zap.Logger, denials apmiddleware.DenialRecorder) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on all routes)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(apmiddleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	// Health check, unauthenticated, used by load balancers and health probes
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	gate := apmiddleware.TokenAuth(verifier, log, denials)
	r.With(gate).Handle("/mcp", mcpHandler)

	return r
}
