package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/shopspring/decimal"
)

// OrderItem is one sold line, a snapshot of the cart line at submission.
type OrderItem struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	OrderID     uint            `gorm:"index;not null" json:"order_id"`
	VariantID   uint            `gorm:"index;not null" json:"variant_id"`
	SKU         string          `gorm:"type:varchar(64);not null" json:"sku"`
	DisplayName string          `gorm:"type:varchar(250);not null" json:"display_name"`
	Quantity    int             `gorm:"not null" json:"cantidad"`
	UnitPrice   Money           `gorm:"type:decimal(20,2);not null;default:0" json:"precio_unitario"`
	DiscountPct decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"descuento_pct"`
	LineTotal   Money           `gorm:"type:decimal(20,2);not null;default:0" json:"line_total"`
	CreatedAt   time.Time       `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
