package worker

import (
	"strings"
	"testing"

	"github.com/ferreplus/internal/models"

	"github.com/shopspring/decimal"
)

func TestBuildReceiptTextNilOrder(t *testing.T) {
	if got := buildReceiptText(nil); got != "" {
		t.Fatalf("expected empty receipt for nil order, got %q", got)
	}
}

func TestBuildReceiptText(t *testing.T) {
	order := &models.Order{
		OrderNo:       "FP20260828120000123456",
		CustomerName:  "CONSUMIDOR FINAL",
		Subtotal:      models.NewMoneyFromDecimal(decimal.RequireFromString("45.02")),
		DiscountTotal: models.NewMoneyFromDecimal(decimal.RequireFromString("1.50")),
		GrandTotal:    models.NewMoneyFromDecimal(decimal.RequireFromString("43.52")),
		Items: []models.OrderItem{
			{DisplayName: "Pintura Latex Blanco 1L", Quantity: 3, LineTotal: models.NewMoneyFromDecimal(decimal.RequireFromString("30.00"))},
			{DisplayName: "Brocha 2 pulgadas", Quantity: 2, LineTotal: models.NewMoneyFromDecimal(decimal.RequireFromString("13.52"))},
		},
	}

	got := buildReceiptText(order)
	for _, want := range []string{
		"ORDEN FP20260828120000123456",
		"CLIENTE CONSUMIDOR FINAL",
		"x3  30.00",
		"x2  13.52",
		"SUBTOTAL  45.02",
		"DESCUENTO 1.50",
		"TOTAL     43.52",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("receipt missing %q:\n%s", want, got)
		}
	}
	// Long display names are clipped to the 20-column item field.
	if strings.Contains(got, "Pintura Latex Blanco 1L") {
		t.Fatalf("expected display name truncated to 20 runes:\n%s", got)
	}
}

func TestTruncateReceiptField(t *testing.T) {
	if got := truncateReceiptField("corto", 20); got != "corto" {
		t.Fatalf("short value should pass through, got %q", got)
	}
	if got := truncateReceiptField("ñandú ñandú ñandú ñandú", 5); got != "ñandú" {
		t.Fatalf("truncation should count runes, got %q", got)
	}
}
