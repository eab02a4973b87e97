package repository

import (
	"context"

	"github.com/ferreplus/internal/models"
)

// CartStore is the durable cart storage boundary for one terminal. The
// medium (Redis, database) is swappable without touching cart rules.
// Load never fails on corrupt stored data; it resets to an empty cart so a
// broken payload cannot take the terminal down.
type CartStore interface {
	LoadCart(ctx context.Context, terminalID string) (*models.Cart, error)
	SaveCart(ctx context.Context, cart *models.Cart) error
	ClearCart(ctx context.Context, terminalID string) error
}

// ReceiptStore keeps the last-order receipt summary per terminal for the
// confirmation view.
type ReceiptStore interface {
	LoadReceipt(ctx context.Context, terminalID string) (*models.Receipt, error)
	SaveReceipt(ctx context.Context, terminalID string, receipt *models.Receipt) error
	ClearReceipt(ctx context.Context, terminalID string) error
}

// Record kinds of the terminal key/value store.
const (
	terminalKindCart    = "cart"
	terminalKindReceipt = "receipt"
)

func emptyCart(terminalID string) *models.Cart {
	return &models.Cart{TerminalID: terminalID, Lines: []models.CartLine{}}
}
