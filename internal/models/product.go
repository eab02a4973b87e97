package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable catalog entry (e.g. a paint line or a tool model).
type Product struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(200);not null;index" json:"name"`
	Brand     string         `gorm:"type:varchar(120);index" json:"brand,omitempty"`
	Category  string         `gorm:"type:varchar(120);index" json:"category,omitempty"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
