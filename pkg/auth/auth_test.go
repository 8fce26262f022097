package auth

import (
	"errors"
	"testing"
)

func TestNewVerifier_EmptyToken(t *testing.T) {
	t.Parallel()

	_, err := NewVerifier("")
	if !errors.Is(err, ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestVerify_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	v, err := NewVerifier("s3cret-token")
	if err != nil {
		t.Fatalf("NewVerifier: %v", err)
	}

	if !v.Verify("s3cret-token") {
		t.Error("Verify(expected) = false, want true")
	}

	rejected := []string{
		"",
		"s3cret-token ",
		" s3cret-token",
		"S3CRET-TOKEN",
		"s3cret-toke",
		"s3cret-tokenn",
		"completely-different",
	}
	for _, candidate := range rejected {
		if v.Verify(candidate) {
			t.Errorf("Verify(%q) = true, want false", candidate)
		}
	}
}

func TestVerify_DistinctExpectedValues(t *testing.T) {
	t.Parallel()

	a, _ := NewVerifier("token-a")
	b, _ := NewVerifier("token-b")

	if !a.Verify("token-a") || !b.Verify("token-b") {
		t.Error("each verifier must accept its own expected value")
	}
	if a.Verify("token-b") || b.Verify("token-a") {
		t.Error("verifiers must not accept each other's tokens")
	}
}
