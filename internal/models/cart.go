package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one variant held in a cart. Display data and unit price are
// captured at add time; the price is not re-fetched on quantity changes.
type CartLine struct {
	VariantID    uint            `json:"variant_id"`
	SKU          string          `json:"sku"`
	DisplayName  string          `json:"display_name"`
	Attributes   Attributes      `json:"attributes,omitempty"`
	Quantity     int             `json:"cantidad"`
	UnitPrice    Money           `json:"precio_unitario"`
	StockCeiling int             `json:"stock_ceiling"`
	DiscountPct  decimal.Decimal `json:"descuento_pct"`
}

// GrossAmount is the pre-discount line amount, rounded to two decimals.
func (l CartLine) GrossAmount() Money {
	qty := decimal.NewFromInt(int64(l.Quantity))
	return NewMoneyFromDecimal(l.UnitPrice.Decimal.Mul(qty))
}

// DiscountAmount is the per-line discount, rounded to two decimals before
// summing so totals never drift from the printed lines.
func (l CartLine) DiscountAmount() Money {
	gross := l.GrossAmount()
	pct := l.DiscountPct.Div(decimal.NewFromInt(100))
	return NewMoneyFromDecimal(gross.Decimal.Mul(pct))
}

// Subtotal is the line amount after discount.
func (l CartLine) Subtotal() Money {
	return NewMoneyFromDecimal(l.GrossAmount().Decimal.Sub(l.DiscountAmount().Decimal))
}

// Cart is the working order for one terminal: an ordered set of lines keyed
// by variant, bound to at most one branch. BranchID is zero only while the
// cart is empty.
type Cart struct {
	TerminalID string     `json:"terminal_id"`
	BranchID   uint       `json:"sucursal_id"`
	Lines      []CartLine `json:"lines"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CartTotals are the derived cart amounts. Each figure is summed from
// already-rounded line amounts, never by rounding a running float.
type CartTotals struct {
	Subtotal      Money `json:"subtotal"`
	DiscountTotal Money `json:"discount_total"`
	GrandTotal    Money `json:"grand_total"`
	ItemCount     int   `json:"item_count"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}

// FindLine returns the index of the line holding variantID, or -1.
func (c *Cart) FindLine(variantID uint) int {
	if c == nil {
		return -1
	}
	for i := range c.Lines {
		if c.Lines[i].VariantID == variantID {
			return i
		}
	}
	return -1
}

// Totals recomputes the cart totals from the current lines.
func (c *Cart) Totals() CartTotals {
	subtotal := decimal.Zero
	discountTotal := decimal.Zero
	itemCount := 0
	if c != nil {
		for i := range c.Lines {
			subtotal = subtotal.Add(c.Lines[i].GrossAmount().Decimal)
			discountTotal = discountTotal.Add(c.Lines[i].DiscountAmount().Decimal)
			itemCount += c.Lines[i].Quantity
		}
	}
	return CartTotals{
		Subtotal:      NewMoneyFromDecimal(subtotal),
		DiscountTotal: NewMoneyFromDecimal(discountTotal),
		GrandTotal:    NewMoneyFromDecimal(subtotal.Sub(discountTotal)),
		ItemCount:     itemCount,
	}
}
