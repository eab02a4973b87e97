package models

import (
	"time"

	"gorm.io/gorm"
)

// Branch is a physical sales location. Pricing and inventory are scoped
// per branch.
type Branch struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Code      string         `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	Name      string         `gorm:"type:varchar(120);not null" json:"name"`
	Address   string         `gorm:"type:varchar(250)" json:"address,omitempty"`
	Phone     string         `gorm:"type:varchar(40)" json:"phone,omitempty"`
	IsActive  bool           `gorm:"default:true;index" json:"is_active"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Branch) TableName() string {
	return "branches"
}
