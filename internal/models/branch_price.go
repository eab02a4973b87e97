package models

import (
	"time"

	"gorm.io/gorm"
)

// BranchPrice is one price record for a (variant, branch) pair. The same
// variant may carry a different price per branch; only the record flagged
// current is effective. The JSON field names keep the legacy POS contract.
type BranchPrice struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	VariantID     uint           `gorm:"not null;index:idx_branch_price_pair" json:"variant_id"`
	BranchID      uint           `gorm:"not null;index:idx_branch_price_pair" json:"sucursal_id"`
	SalePrice     Money          `gorm:"column:precio_venta;type:decimal(20,2);not null;default:0" json:"precio_venta"`
	MinimumStock  int            `gorm:"column:stock_minimo;not null;default:0" json:"stock_minimo"`
	EffectiveFrom time.Time      `gorm:"index" json:"effective_from"`
	IsCurrent     bool           `gorm:"default:true;index" json:"is_current"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Variant *ProductVariant `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Branch  *Branch         `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

// TableName sets the table name.
func (BranchPrice) TableName() string {
	return "branch_prices"
}
