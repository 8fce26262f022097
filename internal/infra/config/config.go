// Package config provides process configuration: credentials and endpoints
// from environment variables, and the tool enablement tree from a YAML file.
// All optional fields have safe defaults so the binary runs locally with only
// the credentials set.
package config

import (
	"fmt"
	"os"
)

// Config holds runtime configuration for the Binance Spot MCP server.
type Config struct {
	// Binance credentials and endpoint
	APIKey    string // BINANCE_API_KEY — required
	APISecret string // BINANCE_API_SECRET — required
	BaseURL   string // BINANCE_BASE_URL — optional override
	Testnet   bool   // BINANCE_TESTNET — default: false
	ProxyURL  string // PROXY_URL — optional (http, https, socks5)

	// MCP serving
	AuthToken  string // MCP_AUTH_TOKEN — required, the static bearer token
	ListenAddr string // LISTEN_ADDR — default: ":8080"
	ConfigPath string // CONFIG_PATH — default: "config.yaml"

	// Audit and logging
	AuditDBPath string // AUDIT_DB_PATH — default: "binance-mcp.db"
	LogLevel    string // LOG_LEVEL — default: "info"
}

const (
	envKeyAPIKey      = "BINANCE_API_KEY"
	envKeyAPISecret   = "BINANCE_API_SECRET"
	envKeyBaseURL     = "BINANCE_BASE_URL"
	envKeyTestnet     = "BINANCE_TESTNET"
	envKeyProxyURL    = "PROXY_URL"
	envKeyAuthToken   = "MCP_AUTH_TOKEN"
	envKeyListenAddr  = "LISTEN_ADDR"
	envKeyConfigPath  = "CONFIG_PATH"
	envKeyAuditDBPath = "AUDIT_DB_PATH"
	envKeyLogLevel    = "LOG_LEVEL"
)

// Load reads configuration from environment variables, applying defaults for
// missing optional values. Required fields are checked by Validate, not here,
// so the caller controls when a missing credential becomes fatal.
func Load() Config {
	return Config{
		APIKey:      os.Getenv(envKeyAPIKey),
		APISecret:   os.Getenv(envKeyAPISecret),
		BaseURL:     os.Getenv(envKeyBaseURL),
		Testnet:     os.Getenv(envKeyTestnet) == "true",
		ProxyURL:    os.Getenv(envKeyProxyURL),
		AuthToken:   os.Getenv(envKeyAuthToken),
		ListenAddr:  envOr(envKeyListenAddr, ":8080"),
		ConfigPath:  envOr(envKeyConfigPath, "config.yaml"),
		AuditDBPath: envOr(envKeyAuditDBPath, "binance-mcp.db"),
		LogLevel:    envOr(envKeyLogLevel, "info"),
	}
}

// Validate checks that every required field is present. The first missing
// field is reported by its environment variable name so the operator knows
// exactly what to set.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("%s not found in environment variables", envKeyAPIKey)
	}
	if c.APISecret == "" {
		return fmt.Errorf("%s not found in environment variables", envKeyAPISecret)
	}
	if c.AuthToken == "" {
		return fmt.Errorf("%s not found in environment variables", envKeyAuthToken)
	}
	return nil
}

// envOr returns the value of the environment variable key, or fallback if not set.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
