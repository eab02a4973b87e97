package models

import (
	"time"

	"gorm.io/gorm"
)

// TerminalRecord is the database fallback for the durable terminal
// key/value store when Redis is disabled. One row per (terminal, kind);
// the payload is opaque JSON, cart and receipt rules live in the service
// layer, not here.
type TerminalRecord struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	TerminalID string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_terminal_record_key" json:"terminal_id"`
	Kind       string         `gorm:"type:varchar(20);not null;uniqueIndex:idx_terminal_record_key" json:"kind"`
	Payload    []byte         `gorm:"type:blob" json:"-"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (TerminalRecord) TableName() string {
	return "terminal_records"
}
