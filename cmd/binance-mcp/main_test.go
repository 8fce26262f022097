package main

import (
	"strings"
	"testing"
)

func TestRun_Version(t *testing.T) {
	var out strings.Builder

	code := run([]string{"--version"}, &out)
	if code != 0 {
		t.Errorf("run(--version) = %d; want 0", code)
	}
	if !strings.Contains(out.String(), "binance-mcp version") {
		t.Errorf("run(--version) output = %q; want version string", out.String())
	}
}

func TestRun_Help(t *testing.T) {
	var out strings.Builder

	code := run([]string{"--help"}, &out)
	if code != 0 {
		t.Errorf("run(--help) = %d; want 0", code)
	}
	for _, want := range []string{"--stdio", "BINANCE_API_KEY", "MCP_AUTH_TOKEN"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("run(--help) output missing %q", want)
		}
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	var out strings.Builder

	code := run([]string{"--nope"}, &out)
	if code != 2 {
		t.Errorf("run(--nope) = %d; want 2", code)
	}
}

func TestServe_MissingEnvironmentFailsFast(t *testing.T) {
	for _, key := range []string{"BINANCE_API_KEY", "BINANCE_API_SECRET", "MCP_AUTH_TOKEN"} {
		t.Setenv(key, "")
	}

	var out strings.Builder
	code := run([]string{}, &out)
	if code != 1 {
		t.Errorf("run() with empty environment = %d; want 1", code)
	}
	if !strings.Contains(out.String(), "not found in environment variables") {
		t.Errorf("run() output = %q; want missing-variable diagnostic", out.String())
	}
}

func TestServe_MissingConfigFileFailsFast(t *testing.T) {
	t.Setenv("BINANCE_API_KEY", "key")
	t.Setenv("BINANCE_API_SECRET", "secret")
	t.Setenv("MCP_AUTH_TOKEN", "token")
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	var out strings.Builder
	code := run([]string{}, &out)
	if code != 1 {
		t.Errorf("run() with missing config = %d; want 1", code)
	}
	if !strings.Contains(out.String(), "loading tool configuration") {
		t.Errorf("run() output = %q; want config-load diagnostic", out.String())
	}
}
