// Package auth implements the static bearer-token gate. The whole
// authentication model is one shared secret loaded at startup and compared
// on every call — no sessions, no scopes, no expiry. This is a leaf package
// with no domain dependencies, used by internal/api/middleware.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"errors"
)

// Subject is the fixed identity asserted for every successfully verified
// caller. It is a constant, not derived from the token.
const Subject = "mcp-client"

// ErrTokenMissing is returned by construction when no expected token is set.
var ErrTokenMissing = errors.New("expected token must not be empty")

// Verifier checks candidate tokens against one expected value.
// It holds only the SHA-256 digest of the expected token, and compares
// digests in constant time, so neither the comparison's timing nor the
// process memory layout depends on how much of the secret a candidate
// matches.
type Verifier struct {
	digest [sha256.Size]byte
}

// NewVerifier creates a Verifier for the expected token.
func NewVerifier(expected string) (*Verifier, error) {
	if expected == "" {
		return nil, ErrTokenMissing
	}
	return &Verifier{digest: sha256.Sum256([]byte(expected))}, nil
}

// Verify reports whether candidate equals the expected token. Stateless per
// check and safe for concurrent use.
func (v *Verifier) Verify(candidate string) bool {
	sum := sha256.Sum256([]byte(candidate))
	return subtle.ConstantTimeCompare(sum[:], v.digest[:]) == 1
}
