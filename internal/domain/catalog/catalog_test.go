package catalog

import (
	"reflect"
	"testing"
)

func TestCategories_Order(t *testing.T) {
	t.Parallel()

	want := []string{"market", "trading", "account", "order"}
	if got := Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := Categories()
	first[0] = "mutated"
	if got := Categories()[0]; got != "market" {
		t.Errorf("catalog was mutated through Categories() result: got %q", got)
	}
}

func TestOperations_KnownCategory(t *testing.T) {
	t.Parallel()

	ops := Operations(CategoryTrading)
	want := []string{"create_order", "test_order", "cancel_order", "get_order"}
	if !reflect.DeepEqual(ops, want) {
		t.Errorf("Operations(trading) = %v, want %v", ops, want)
	}
}

func TestOperations_UnknownCategory(t *testing.T) {
	t.Parallel()

	if ops := Operations("futures"); ops != nil {
		t.Errorf("Operations(futures) = %v, want nil", ops)
	}
}

func TestHas(t *testing.T) {
	t.Parallel()

	cases := []struct {
		category string
		op       string
		want     bool
	}{
		{CategoryMarket, "get_symbol_ticker", true},
		{CategoryMarket, "create_order", false},
		{CategoryOrder, "cancel_open_orders", true},
		{"futures", "get_symbol_ticker", false},
	}
	for _, tc := range cases {
		if got := Has(tc.category, tc.op); got != tc.want {
			t.Errorf("Has(%q, %q) = %v, want %v", tc.category, tc.op, got, tc.want)
		}
	}
}

func TestIsCategory(t *testing.T) {
	t.Parallel()

	if !IsCategory("account") {
		t.Error("IsCategory(account) = false, want true")
	}
	if IsCategory("margin") {
		t.Error("IsCategory(margin) = true, want false")
	}
}
