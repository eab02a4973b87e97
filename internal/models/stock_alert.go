package models

import (
	"time"

	"gorm.io/gorm"
)

// StockAlert records a variant that dropped to or below its branch minimum
// after a sale. Written by the queue worker for back-office review.
type StockAlert struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	BranchID     uint           `gorm:"index;not null" json:"sucursal_id"`
	VariantID    uint           `gorm:"index;not null" json:"variant_id"`
	OrderNo      string         `gorm:"type:varchar(40);index" json:"order_no"`
	OnHand       int            `gorm:"not null" json:"existencia"`
	Minimum      int            `gorm:"not null" json:"minimo"`
	Acknowledged bool           `gorm:"default:false;index" json:"acknowledged"`
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (StockAlert) TableName() string {
	return "stock_alerts"
}
