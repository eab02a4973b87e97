package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductVariant is a specific product+presentation combination, the unit
// that is priced, stocked and sold (e.g. one paint color in one container
// size).
type ProductVariant struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ProductID   uint           `gorm:"not null;index" json:"product_id"`
	SKU         string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"sku"`
	DisplayName string         `gorm:"type:varchar(250);not null" json:"display_name"`
	Attributes  Attributes     `gorm:"type:json" json:"attributes,omitempty"`
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (ProductVariant) TableName() string {
	return "product_variants"
}
