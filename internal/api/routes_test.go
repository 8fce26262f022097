package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/api"
	pkgauth "github.com/gary8403/my-binance-spot-mcp-server/pkg/auth"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	verifier, err := pkgauth.NewVerifier("secret-token")
	if err != nil {
		t.Fatalf("NewVerifier() error = %v", err)
	}

	mcpHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("mcp")) //nolint:errcheck
	})

	return api.NewRouter(mcpHandler, verifier, zap.NewNop(), nil)
}

func TestHealthz_IsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("GET /healthz status = %d; want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("GET /healthz body = %q; want %q", got, `{"status":"ok"}`)
	}
}

func TestMCP_RequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("POST /mcp without token status = %d; want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestMCP_ReachableWithToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/mcp", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("POST /mcp with token status = %d; want %d", rec.Code, http.StatusOK)
	}
	if got := rec.Body.String(); got != "mcp" {
		t.Errorf("POST /mcp body = %q; want %q (gate must pass through to the MCP handler)", got, "mcp")
	}
}
