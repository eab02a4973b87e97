package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"

	"gorm.io/gorm"
)

// GormTerminalStore is the database fallback for the terminal key/value
// store, used when Redis is disabled.
type GormTerminalStore struct {
	db *gorm.DB
}

// NewGormTerminalStore creates the database-backed terminal store.
func NewGormTerminalStore(db *gorm.DB) *GormTerminalStore {
	return &GormTerminalStore{db: db}
}

// LoadCart restores the terminal's cart. A missing row yields an empty
// cart; an unparseable payload is dropped and replaced by an empty cart.
func (s *GormTerminalStore) LoadCart(ctx context.Context, terminalID string) (*models.Cart, error) {
	if terminalID == "" {
		return nil, errors.New("terminal id is empty")
	}
	payload, err := s.loadPayload(ctx, terminalID, terminalKindCart)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return emptyCart(terminalID), nil
	}
	var cart models.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		logger.Warnw("cart_payload_corrupt_reset",
			"terminal_id", terminalID,
			"error", err,
		)
		_ = s.deleteRecord(ctx, terminalID, terminalKindCart)
		return emptyCart(terminalID), nil
	}
	cart.TerminalID = terminalID
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return &cart, nil
}

// SaveCart persists the full cart.
func (s *GormTerminalStore) SaveCart(ctx context.Context, cart *models.Cart) error {
	if cart == nil || cart.TerminalID == "" {
		return errors.New("cart has no terminal id")
	}
	cart.UpdatedAt = time.Now()
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.savePayload(ctx, cart.TerminalID, terminalKindCart, payload)
}

// ClearCart drops the terminal's cart.
func (s *GormTerminalStore) ClearCart(ctx context.Context, terminalID string) error {
	if terminalID == "" {
		return errors.New("terminal id is empty")
	}
	return s.deleteRecord(ctx, terminalID, terminalKindCart)
}

// LoadReceipt restores the terminal's last receipt, nil when absent or
// unparseable.
func (s *GormTerminalStore) LoadReceipt(ctx context.Context, terminalID string) (*models.Receipt, error) {
	if terminalID == "" {
		return nil, errors.New("terminal id is empty")
	}
	payload, err := s.loadPayload(ctx, terminalID, terminalKindReceipt)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}
	var receipt models.Receipt
	if err := json.Unmarshal(payload, &receipt); err != nil {
		logger.Warnw("receipt_payload_corrupt_reset",
			"terminal_id", terminalID,
			"error", err,
		)
		_ = s.deleteRecord(ctx, terminalID, terminalKindReceipt)
		return nil, nil
	}
	return &receipt, nil
}

// SaveReceipt persists the last-order receipt.
func (s *GormTerminalStore) SaveReceipt(ctx context.Context, terminalID string, receipt *models.Receipt) error {
	if terminalID == "" {
		return errors.New("terminal id is empty")
	}
	if receipt == nil {
		return errors.New("receipt is nil")
	}
	payload, err := json.Marshal(receipt)
	if err != nil {
		return err
	}
	return s.savePayload(ctx, terminalID, terminalKindReceipt, payload)
}

// ClearReceipt drops the terminal's receipt.
func (s *GormTerminalStore) ClearReceipt(ctx context.Context, terminalID string) error {
	if terminalID == "" {
		return errors.New("terminal id is empty")
	}
	return s.deleteRecord(ctx, terminalID, terminalKindReceipt)
}

func (s *GormTerminalStore) loadPayload(ctx context.Context, terminalID, kind string) ([]byte, error) {
	var record models.TerminalRecord
	err := s.db.WithContext(ctx).
		Where("terminal_id = ? AND kind = ?", terminalID, kind).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record.Payload, nil
}

func (s *GormTerminalStore) savePayload(ctx context.Context, terminalID, kind string, payload []byte) error {
	var existing models.TerminalRecord
	err := s.db.WithContext(ctx).
		Where("terminal_id = ? AND kind = ?", terminalID, kind).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record := models.TerminalRecord{
			TerminalID: terminalID,
			Kind:       kind,
			Payload:    payload,
		}
		return s.db.WithContext(ctx).Create(&record).Error
	}
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
		"payload":    payload,
		"updated_at": time.Now(),
	}).Error
}

func (s *GormTerminalStore) deleteRecord(ctx context.Context, terminalID, kind string) error {
	return s.db.WithContext(ctx).
		Where("terminal_id = ? AND kind = ?", terminalID, kind).
		Delete(&models.TerminalRecord{}).Error
}
