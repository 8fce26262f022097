// No t.Parallel() — env vars are process-global and not thread-safe.
package config

import (
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BINANCE_API_KEY", "BINANCE_API_SECRET", "BINANCE_BASE_URL",
		"BINANCE_TESTNET", "PROXY_URL", "MCP_AUTH_TOKEN",
		"LISTEN_ADDR", "CONFIG_PATH", "AUDIT_DB_PATH", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("expected ListenAddr ':8080', got %q", cfg.ListenAddr)
	}
	if cfg.ConfigPath != "config.yaml" {
		t.Errorf("expected ConfigPath 'config.yaml', got %q", cfg.ConfigPath)
	}
	if cfg.AuditDBPath != "binance-mcp.db" {
		t.Errorf("expected AuditDBPath 'binance-mcp.db', got %q", cfg.AuditDBPath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel 'info', got %q", cfg.LogLevel)
	}
	if cfg.Testnet {
		t.Error("expected Testnet false by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BINANCE_API_KEY", "key-123")
	t.Setenv("BINANCE_API_SECRET", "secret-456")
	t.Setenv("MCP_AUTH_TOKEN", "tok-789")
	t.Setenv("BINANCE_TESTNET", "true")
	t.Setenv("LISTEN_ADDR", ":9090")

	cfg := Load()

	if cfg.APIKey != "key-123" {
		t.Errorf("expected APIKey 'key-123', got %q", cfg.APIKey)
	}
	if cfg.APISecret != "secret-456" {
		t.Errorf("expected APISecret 'secret-456', got %q", cfg.APISecret)
	}
	if cfg.AuthToken != "tok-789" {
		t.Errorf("expected AuthToken 'tok-789', got %q", cfg.AuthToken)
	}
	if !cfg.Testnet {
		t.Error("expected Testnet true")
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("expected ListenAddr ':9090', got %q", cfg.ListenAddr)
	}
}

func TestValidate_ReportsMissingKeyByName(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
		want string
	}{
		{"missing api key", Config{APISecret: "s", AuthToken: "t"}, "BINANCE_API_KEY"},
		{"missing api secret", Config{APIKey: "k", AuthToken: "t"}, "BINANCE_API_SECRET"},
		{"missing auth token", Config{APIKey: "k", APISecret: "s"}, "MCP_AUTH_TOKEN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should name %s", err, tc.want)
			}
		})
	}
}

func TestValidate_Complete(t *testing.T) {
	cfg := Config{APIKey: "k", APISecret: "s", AuthToken: "t"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestEnvOr_Present(t *testing.T) {
	t.Setenv("TEST_ENVOR_KEY", "custom-value")
	if got := envOr("TEST_ENVOR_KEY", "fallback"); got != "custom-value" {
		t.Errorf("expected 'custom-value', got %q", got)
	}
}

func TestEnvOr_Absent(t *testing.T) {
	t.Setenv("TEST_ENVOR_KEY", "")
	if got := envOr("TEST_ENVOR_KEY", "fallback"); got != "fallback" {
		t.Errorf("expected 'fallback', got %q", got)
	}
}
