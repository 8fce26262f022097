package binance

import (
	"net/url"
	"sort"
	"strconv"
)

// Params builds a request parameter set with the omit-if-absent contract
// enforced in one place: the Opt* setters add a key only when the value is
// present. Several venue endpoints reject a parameter's mere presence, even
// empty, so nil never becomes an empty placeholder.
type Params struct {
	values url.Values
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: url.Values{}}
}

// Set adds a required string parameter.
func (p *Params) Set(key, value string) *Params {
	p.values.Set(key, value)
	return p
}

// OptString adds key only when value is non-nil.
func (p *Params) OptString(key string, value *string) *Params {
	if value != nil {
		p.values.Set(key, *value)
	}
	return p
}

// OptInt64 adds key only when value is non-nil.
func (p *Params) OptInt64(key string, value *int64) *Params {
	if value != nil {
		p.values.Set(key, strconv.FormatInt(*value, 10))
	}
	return p
}

// OptFloat adds key only when value is non-nil. Values are formatted with
// the shortest representation that round-trips, as the venue expects plain
// decimal quantities and prices.
func (p *Params) OptFloat(key string, value *float64) *Params {
	if value != nil {
		p.values.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
	return p
}

// Has reports whether key is present.
func (p *Params) Has(key string) bool {
	return p.values.Has(key)
}

// Keys returns the present parameter names, sorted.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for key := range p.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Encode returns the URL-encoded query string (keys sorted, the same order
// they are sent and signed in).
func (p *Params) Encode() string {
	return p.values.Encode()
}
