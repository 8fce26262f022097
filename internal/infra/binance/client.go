// Package binance is the venue client: a thin REST adapter over the Binance
// Spot API using stdlib net/http. One method per exposed operation, grouped
// into MarketData, Trading, Account and OrderManagement wrappers.
// Responses are returned as raw JSON, unmodified — interpretation is the
// caller's business, not this package's.
//
// Endpoints used are the public /api/v3 market-data routes plus the signed
// account/trading routes (HMAC-SHA256 over the query string, X-MBX-APIKEY
// header).
package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	baseURLProduction = "https://api.binance.com"
	baseURLTestnet    = "https://testnet.binance.vision"

	headerAPIKey = "X-MBX-APIKEY"
)

// Options configures a Client.
type Options struct {
	APIKey    string
	APISecret string
	// BaseURL overrides the endpoint; when empty, Testnet selects between
	// the production and testnet hosts.
	BaseURL  string
	Testnet  bool
	ProxyURL string // http, https or socks5 proxy
}

// Client is a long-lived connection handle to the Binance Spot API.
// It holds no mutable state after construction and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  []byte
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a Client with a 30s request timeout.
func NewClient(opts Options) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		if opts.Testnet {
			baseURL = baseURLTestnet
		} else {
			baseURL = baseURLProduction
		}
	}

	transport := http.DefaultTransport
	if opts.ProxyURL != "" {
		proxy, err := url.Parse(opts.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("binance: invalid proxy URL %q: %w", opts.ProxyURL, err)
		}
		transport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}

	return &Client{
		baseURL:   baseURL,
		apiKey:    opts.APIKey,
		apiSecret: []byte(opts.APISecret),
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		now: time.Now,
	}, nil
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIError is a non-2xx response from the venue, propagated verbatim.
type APIError struct {
	Status  int    // HTTP status
	Code    int    `json:"code"`
	Message string `json:"msg"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance API error: status %d, code %d: %s", e.Status, e.Code, e.Message)
}

// Ping tests connectivity to the venue. Used once at startup before any
// tool is registered.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/api/v3/ping", nil, false)
	return err
}

// ServerTime returns the venue's current server time.
func (c *Client) ServerTime(ctx context.Context) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/v3/time", nil, false)
}

// do performs one REST call. Parameters travel in the query string; signed
// requests get a millisecond timestamp plus an HMAC-SHA256 signature over
// the encoded query, computed with the API secret.
func (c *Client) do(ctx context.Context, method, path string, params *Params, signed bool) (json.RawMessage, error) {
	query := ""
	if params != nil {
		query = params.Encode()
	}

	if signed {
		if query != "" {
			query += "&"
		}
		query += "timestamp=" + fmt.Sprintf("%d", c.now().UnixMilli())
		query += "&signature=" + c.sign(query)
	}

	endpoint := c.baseURL + path
	if query != "" {
		endpoint += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("binance: build request %s %s: %w", method, path, err)
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("binance: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("binance: read response %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		// Body is {"code": -1121, "msg": "..."} on venue errors; keep the
		// raw text when it is not.
		if jsonErr := json.Unmarshal(body, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = string(body)
		}
		return nil, apiErr
	}

	return json.RawMessage(body), nil
}

// sign computes the hex-encoded HMAC-SHA256 of payload with the API secret.
func (c *Client) sign(payload string) string {
	mac := hmac.New(sha256.New, c.apiSecret)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
