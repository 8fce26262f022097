// Package catalog defines the fixed set of Binance Spot tool categories and
// the operations each category may expose. The catalog is the sole source of
// truth for "does this tool exist" — configuration can only select from it,
// never extend it.
package catalog

// Category names. These match the keys used under "tools:" in config.yaml.
const (
	CategoryMarket  = "market"
	CategoryTrading = "trading"
	CategoryAccount = "account"
	CategoryOrder   = "order"
)

// categories lists the known categories in catalog order.
var categories = []string{
	CategoryMarket,
	CategoryTrading,
	CategoryAccount,
	CategoryOrder,
}

// operations maps each category to its operation names in catalog order.
// Compiled-in and never mutated after init.
var operations = map[string][]string{
	CategoryMarket: {
		"get_symbol_ticker",
		"get_orderbook",
		"get_klines",
		"get_trades",
		"get_24hr_ticker",
		"get_avg_price",
		"get_exchange_info",
	},
	CategoryTrading: {
		"create_order",
		"test_order",
		"cancel_order",
		"get_order",
	},
	CategoryAccount: {
		"get_account_info",
		"get_balance",
		"get_account_status",
	},
	CategoryOrder: {
		"get_open_orders",
		"get_all_orders",
		"cancel_all_orders",
		"cancel_open_orders",
	},
}

// Categories returns the known category names in catalog order.
// The returned slice is a copy; callers may not mutate the catalog.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// IsCategory reports whether name is a known category.
func IsCategory(name string) bool {
	_, ok := operations[name]
	return ok
}

// Operations returns the operation names for category in catalog order,
// or nil for an unknown category.
func Operations(category string) []string {
	ops, ok := operations[category]
	if !ok {
		return nil
	}
	out := make([]string, len(ops))
	copy(out, ops)
	return out
}

// Has reports whether op is a known operation within category.
func Has(category, op string) bool {
	for _, name := range operations[category] {
		if name == op {
			return true
		}
	}
	return false
}
