// Token-gate middleware. Reads Authorization: Bearer <token>, verifies it
// against the single expected token, injects the fixed subject into context.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/api/ctxkeys"
	pkgauth "github.com/gary8403/my-binance-spot-mcp-server/pkg/auth"
)

// DenialRecorder receives rejected requests for the audit trail.
// The audit service satisfies this interface; nil disables recording.
type DenialRecorder interface {
	RecordAuthDenied(ctx context.Context, detail string) error
}

// TokenAuth gates every request behind the static bearer token.
//
// Flow:
//  1. Read "Authorization: Bearer <token>" header
//  2. Verify the token against the expected value
//  3. On failure → 401 with a body that is identical whether the token was
//     missing or wrong, so the response leaks nothing about the secret
//  4. On success → inject ctxkeys.Subject and call the next handler
func TokenAuth(verifier *pkgauth.Verifier, log *zap.Logger, recorder DenialRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)

			if !verifier.Verify(token) {
				detail := "invalid token"
				if token == "" {
					detail = "missing bearer token"
				}
				log.Warn("request rejected at token gate",
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
					zap.String("reason", detail))
				if recorder != nil {
					if err := recorder.RecordAuthDenied(r.Context(), detail); err != nil {
						log.Error("audit record failed", zap.Error(err))
					}
				}
				writeUnauthorized(w)
				return
			}

			ctx := ctxkeys.WithValue(r.Context(), ctxkeys.Subject, pkgauth.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractBearerToken extracts the token from "Authorization: Bearer <token>".
// Returns empty string if the header is missing, wrong scheme, or token is empty.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	// Must start with "Bearer " (case-sensitive per RFC 7235)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// writeUnauthorized writes the single 401 response used for every rejection.
// The body never varies with the failure reason.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`)) //nolint:errcheck
}
