package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Account wraps the signed Spot account endpoints.
type Account struct {
	client *Client
}

// NewAccount creates an Account wrapper over client.
func NewAccount(client *Client) *Account {
	return &Account{client: client}
}

// balance mirrors one entry of the venue's account balances array.
type balance struct {
	Asset  string `json:"asset"`
	Free   string `json:"free"`
	Locked string `json:"locked"`
}

// GetAccountInfo returns account information including balances and permissions.
func (a *Account) GetAccountInfo(ctx context.Context) (json.RawMessage, error) {
	return a.client.do(ctx, http.MethodGet, "/api/v3/account", nil, true)
}

// GetBalance returns balances from the account endpoint. With an asset set
// it returns that asset's balance, or a zeroed placeholder when the account
// has never held it; with nil it returns only non-zero balances.
//
// This is the one venue call with local shaping: the venue has no
// per-asset balance endpoint, so the filter lives here.
func (a *Account) GetBalance(ctx context.Context, asset *string) (json.RawMessage, error) {
	raw, err := a.client.do(ctx, http.MethodGet, "/api/v3/account", nil, true)
	if err != nil {
		return nil, err
	}

	var info struct {
		Balances []balance `json:"balances"`
	}
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("binance: decode account balances: %w", err)
	}

	if asset != nil {
		for _, b := range info.Balances {
			if b.Asset == *asset {
				return json.Marshal(b)
			}
		}
		return json.Marshal(balance{Asset: *asset, Free: "0.00000000", Locked: "0.00000000"})
	}

	nonZero := make([]balance, 0, len(info.Balances))
	for _, b := range info.Balances {
		if parseAmount(b.Free) > 0 || parseAmount(b.Locked) > 0 {
			nonZero = append(nonZero, b)
		}
	}
	return json.Marshal(map[string][]balance{"balances": nonZero})
}

// GetAccountStatus returns the account's API trading status.
func (a *Account) GetAccountStatus(ctx context.Context) (json.RawMessage, error) {
	return a.client.do(ctx, http.MethodGet, "/sapi/v1/account/status", nil, true)
}

// parseAmount converts a venue decimal string; unparseable values count as zero.
func parseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
