package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustMoney(t *testing.T, s string) Money {
	t.Helper()
	m, err := NewMoneyFromString(s)
	if err != nil {
		t.Fatalf("parse money %s: %v", s, err)
	}
	return m
}

func TestCartTotalsSumRoundedLines(t *testing.T) {
	// 10.00 x 3 plus 7.51 x 2: line amounts are rounded before summing, so
	// the subtotal is 45.02 and the 10% discount on the second line is 1.50.
	cart := &Cart{
		TerminalID: "caja-1",
		BranchID:   1,
		Lines: []CartLine{
			{VariantID: 1, SKU: "PIN-VIN-BCO-1L", Quantity: 3, UnitPrice: mustMoney(t, "10.00"), DiscountPct: decimal.Zero},
			{VariantID: 2, SKU: "BRO-CER-2IN", Quantity: 2, UnitPrice: mustMoney(t, "7.51"), DiscountPct: decimal.NewFromInt(10)},
		},
	}

	totals := cart.Totals()
	if got := totals.Subtotal.String(); got != "45.02" {
		t.Errorf("subtotal = %s, want 45.02", got)
	}
	if got := totals.DiscountTotal.String(); got != "1.50" {
		t.Errorf("discount total = %s, want 1.50", got)
	}
	if got := totals.GrandTotal.String(); got != "43.52" {
		t.Errorf("grand total = %s, want 43.52", got)
	}
	if totals.ItemCount != 5 {
		t.Errorf("item count = %d, want 5", totals.ItemCount)
	}

	wantGrand := totals.Subtotal.Decimal.Sub(totals.DiscountTotal.Decimal)
	if !totals.GrandTotal.Decimal.Equal(wantGrand) {
		t.Errorf("grand total %s does not equal subtotal minus discounts %s",
			totals.GrandTotal.String(), wantGrand.StringFixed(2))
	}
}

func TestCartLineAmounts(t *testing.T) {
	line := CartLine{Quantity: 2, UnitPrice: mustMoney(t, "7.51"), DiscountPct: decimal.NewFromInt(10)}
	if got := line.GrossAmount().String(); got != "15.02" {
		t.Errorf("gross = %s, want 15.02", got)
	}
	if got := line.DiscountAmount().String(); got != "1.50" {
		t.Errorf("discount = %s, want 1.50", got)
	}
	if got := line.Subtotal().String(); got != "13.52" {
		t.Errorf("subtotal = %s, want 13.52", got)
	}
}

func TestCartEmptyAndFindLine(t *testing.T) {
	var nilCart *Cart
	if !nilCart.IsEmpty() {
		t.Error("nil cart should be empty")
	}
	if nilCart.FindLine(1) != -1 {
		t.Error("nil cart should not find lines")
	}

	cart := &Cart{Lines: []CartLine{{VariantID: 7}}}
	if cart.IsEmpty() {
		t.Error("cart with a line should not be empty")
	}
	if idx := cart.FindLine(7); idx != 0 {
		t.Errorf("FindLine(7) = %d, want 0", idx)
	}
	if idx := cart.FindLine(8); idx != -1 {
		t.Errorf("FindLine(8) = %d, want -1", idx)
	}

	totals := nilCart.Totals()
	if totals.GrandTotal.String() != "0.00" || totals.ItemCount != 0 {
		t.Errorf("nil cart totals = %+v, want zeroes", totals)
	}
}
