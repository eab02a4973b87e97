package models

import (
	"time"

	"gorm.io/gorm"
)

// BranchStock is the on-hand inventory row for a (branch, variant) pair.
// It is only ever read by the order pipeline; decrements happen inside the
// order submission transaction.
type BranchStock struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	BranchID  uint           `gorm:"not null;uniqueIndex:idx_branch_stock_pair" json:"sucursal_id"`
	VariantID uint           `gorm:"not null;uniqueIndex:idx_branch_stock_pair" json:"variant_id"`
	OnHand    int            `gorm:"column:existencia;not null;default:0" json:"existencia"`
	Minimum   int            `gorm:"column:minimo;not null;default:0" json:"minimo"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
}

// TableName sets the table name.
func (BranchStock) TableName() string {
	return "branch_stocks"
}
