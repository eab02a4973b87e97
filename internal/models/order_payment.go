package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderPayment is one payment entry of an order. The summed amounts of an
// order's payments always equal its grand total.
type OrderPayment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"index;not null" json:"order_id"`
	Type      string         `gorm:"type:varchar(20);not null" json:"tipo"`
	Amount    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"monto"`
	Reference string         `gorm:"type:varchar(120)" json:"referencia,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (OrderPayment) TableName() string {
	return "order_payments"
}
