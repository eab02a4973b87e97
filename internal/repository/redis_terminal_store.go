package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ferreplus/internal/cache"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"
)

// RedisTerminalStore keeps carts and receipts in Redis, one key per
// (terminal, kind), expiring idle terminals via TTL.
type RedisTerminalStore struct {
	cartTTL    time.Duration
	receiptTTL time.Duration
}

// NewRedisTerminalStore creates the Redis-backed terminal store.
func NewRedisTerminalStore(cartTTL, receiptTTL time.Duration) *RedisTerminalStore {
	if cartTTL <= 0 {
		cartTTL = 72 * time.Hour
	}
	if receiptTTL <= 0 {
		receiptTTL = 24 * time.Hour
	}
	return &RedisTerminalStore{cartTTL: cartTTL, receiptTTL: receiptTTL}
}

// LoadCart restores the terminal's cart. A missing key yields an empty
// cart; an unparseable payload is dropped and replaced by an empty cart.
func (s *RedisTerminalStore) LoadCart(ctx context.Context, terminalID string) (*models.Cart, error) {
	if terminalID == "" {
		return nil, errors.New("terminal id is empty")
	}
	var cart models.Cart
	found, err := cache.GetJSON(ctx, cartKey(terminalID), &cart)
	if err != nil {
		logger.Warnw("cart_payload_corrupt_reset",
			"terminal_id", terminalID,
			"error", err,
		)
		_ = cache.Del(ctx, cartKey(terminalID))
		return emptyCart(terminalID), nil
	}
	if !found {
		return emptyCart(terminalID), nil
	}
	cart.TerminalID = terminalID
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return &cart, nil
}

// SaveCart persists the full cart.
func (s *RedisTerminalStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	if cart == nil || cart.TerminalID == "" {
		return errors.New("cart has no terminal id")
	}
	cart.UpdatedAt = time.Now()
	return cache.SetJSON(ctx, cartKey(cart.TerminalID), cart, s.cartTTL)
}

// ClearCart drops the terminal's cart.
func (s *RedisTerminalStore) ClearCart(ctx context.Context, terminalID string) error {
	if terminalID == "" {
		return errors.New("terminal id is empty")
	}
	return cache.Del(ctx, cartKey(terminalID))
}

// LoadReceipt restores the terminal's last receipt, nil when absent or
// unparseable.
func (s *RedisTerminalStore) LoadReceipt(ctx context.Context, terminalID string) (*models.Receipt, error) {
	if terminalID == "" {
		return nil, errors.New("terminal id is empty")
	}
	var receipt models.Receipt
	found, err := cache.GetJSON(ctx, receiptKey(terminalID), &receipt)
	if err != nil {
		logger.Warnw("receipt_payload_corrupt_reset",
			"terminal_id", terminalID,
			"error", err,
		)
		_ = cache.Del(ctx, receiptKey(terminalID))
		return nil, nil
	}
	if !found {
		return nil, nil
	}
	return &receipt, nil
}

// SaveReceipt persists the last-order receipt.
func (s *RedisTerminalStore) SaveReceipt(ctx context.Context, terminalID string, receipt *models.Receipt) error {
	if terminalID == "" {
		return errors.New("terminal id is empty")
	}
	if receipt == nil {
		return errors.New("receipt is nil")
	}
	return cache.SetJSON(ctx, receiptKey(terminalID), receipt, s.receiptTTL)
}

// ClearReceipt drops the terminal's receipt.
func (s *RedisTerminalStore) ClearReceipt(ctx context.Context, terminalID string) error {
	if terminalID == "" {
		return errors.New("terminal id is empty")
	}
	return cache.Del(ctx, receiptKey(terminalID))
}

func cartKey(terminalID string) string {
	return fmt.Sprintf("%s:%s", terminalKindCart, terminalID)
}

func receiptKey(terminalID string) string {
	return fmt.Sprintf("%s:%s", terminalKindReceipt, terminalID)
}
