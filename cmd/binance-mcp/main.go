// Binance Spot MCP server - entry point.
//
// Startup order matters: environment, tool configuration, validation, venue
// connectivity, then registration. Any failure before serving exits non-zero
// with a specific message; nothing is registered until the configuration has
// fully validated.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gary8403/my-binance-spot-mcp-server/internal/api"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/audit"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/domain/catalog"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/binance"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/config"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/infra/sqlite"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/mcptools"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/server"
	"github.com/gary8403/my-binance-spot-mcp-server/internal/version"
	pkgauth "github.com/gary8403/my-binance-spot-mcp-server/pkg/auth"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("binance-mcp", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")
	stdio := fs.Bool("stdio", false, "Serve MCP over stdio instead of HTTP")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintln(out, version.String()) //nolint:errcheck
		return 0
	}

	if *showHelp {
		printHelp(out)
		return 0
	}

	return serve(out, *stdio)
}

func serve(out io.Writer, stdio bool) int {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(out, "error: %v\n", err) //nolint:errcheck
		return 1
	}

	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	toolCfg, err := config.LoadToolConfig(cfg.ConfigPath)
	if err != nil {
		fmt.Fprintf(out, "error: loading tool configuration: %v\n", err) //nolint:errcheck
		return 1
	}

	result := catalog.Validate(toolCfg.Raw())
	for _, warning := range result.Warnings {
		logger.Warn("configuration warning", zap.String("warning", warning))
	}
	if !result.Valid() {
		fmt.Fprintln(out, "error: configuration validation failed:") //nolint:errcheck
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  - %s\n", e) //nolint:errcheck
		}
		return 1
	}

	client, err := binance.NewClient(binance.Options{
		APIKey:    cfg.APIKey,
		APISecret: cfg.APISecret,
		BaseURL:   cfg.BaseURL,
		Testnet:   cfg.Testnet,
		ProxyURL:  cfg.ProxyURL,
	})
	if err != nil {
		fmt.Fprintf(out, "error: creating exchange client: %v\n", err) //nolint:errcheck
		return 1
	}

	pingCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		fmt.Fprintf(out, "error: exchange unreachable: %v\n", err) //nolint:errcheck
		return 1
	}
	logger.Info("connected to exchange", zap.String("base_url", client.BaseURL()))

	verifier, err := pkgauth.NewVerifier(cfg.AuthToken)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err) //nolint:errcheck
		return 1
	}

	db, err := sqlite.NewDB(cfg.AuditDBPath)
	if err != nil {
		fmt.Fprintf(out, "error: opening audit database: %v\n", err) //nolint:errcheck
		return 1
	}
	if err := sqlite.MigrateUp(db); err != nil {
		fmt.Fprintf(out, "error: migrating audit database: %v\n", err) //nolint:errcheck
		return 1
	}
	auditSvc := audit.NewService(db)

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "binance-spot-mcp",
		Version: version.Version,
	}, nil)

	registrar := mcptools.NewRegistrar(mcptools.NewVenue(client), logger, auditSvc)
	if err := registrar.RegisterAll(mcpServer, toolCfg.EnabledCategories(), toolCfg.AllEnabledTools()); err != nil {
		fmt.Fprintf(out, "error: registering tools: %v\n", err) //nolint:errcheck
		return 1
	}

	if stdio {
		return serveStdio(mcpServer, logger)
	}
	return serveHTTP(mcpServer, verifier, auditSvc, db, cfg.ListenAddr, logger, out)
}

// serveStdio runs the MCP session over the process's stdin/stdout. The token
// gate is transport-level and does not apply here; the token is still required
// at startup so the two modes share one configuration.
func serveStdio(mcpServer *mcp.Server, logger *zap.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("serving MCP over stdio")
	if err := mcpServer.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logger.Error("stdio session failed", zap.Error(err))
		return 1
	}
	return 0
}

func serveHTTP(mcpServer *mcp.Server, verifier *pkgauth.Verifier, auditSvc *audit.Service, db *sql.DB, addr string, logger *zap.Logger, out io.Writer) int {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return mcpServer
	}, nil)

	router := api.NewRouter(mcpHandler, verifier, logger, auditSvc)

	srvCfg := server.DefaultConfig()
	srvCfg.Addr = addr
	srv := server.NewServer(router, db, srvCfg, logger)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(out, "error: server failed: %v\n", err) //nolint:errcheck
			return 1
		}
		return 0
	case sig := <-sigCh:
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
			return 1
		}
		return 0
	}
}

// buildLogger writes JSON logs to stderr. Stdout stays clean for the stdio
// transport and CLI output.
func buildLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return logger
}

func printHelp(out io.Writer) {
	helpText := `Binance Spot MCP Server

Exposes a configurable subset of Binance Spot API operations as MCP tools
behind a static bearer token.

Usage:
  binance-mcp [options]

Options:
  --version    Show version information
  --help       Show this help message
  --stdio      Serve MCP over stdio instead of HTTP

Environment:
  BINANCE_API_KEY      Binance API key (required)
  BINANCE_API_SECRET   Binance API secret (required)
  MCP_AUTH_TOKEN       Expected bearer token (required)
  BINANCE_BASE_URL     Override the API base URL
  BINANCE_TESTNET      'true' to target the Spot testnet
  PROXY_URL            HTTP proxy for outbound requests
  LISTEN_ADDR          HTTP listen address (default :8080)
  CONFIG_PATH          Tool configuration file (default config.yaml)
  AUDIT_DB_PATH        Audit trail database (default binance-mcp.db)
  LOG_LEVEL            debug, info, warn or error (default info)`
	fmt.Fprintln(out, helpText) //nolint:errcheck
}
