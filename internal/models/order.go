package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is an accepted sale. Orders are written once by the submission
// transaction and never mutated afterwards.
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	OrderNo       string         `gorm:"type:varchar(40);uniqueIndex;not null" json:"order_no"`
	BranchID      uint           `gorm:"index;not null" json:"sucursal_id"`
	CustomerID    *uint          `gorm:"index" json:"cliente_id,omitempty"`
	CustomerName  string         `gorm:"type:varchar(200);not null" json:"cliente"`
	CustomerEmail string         `gorm:"type:varchar(200)" json:"email,omitempty"`
	CustomerPhone string         `gorm:"type:varchar(40)" json:"telefono,omitempty"`
	ShipTo        string         `gorm:"type:varchar(300)" json:"envio,omitempty"`
	Channel       string         `gorm:"type:varchar(20);index;not null" json:"channel"`
	Status        string         `gorm:"type:varchar(20);index;not null" json:"status"`
	Subtotal      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	DiscountTotal Money          `gorm:"type:decimal(20,2);not null;default:0" json:"discount_total"`
	GrandTotal    Money          `gorm:"type:decimal(20,2);not null;default:0" json:"grand_total"`
	Notes         string         `gorm:"type:varchar(500)" json:"notas,omitempty"`
	TerminalID    string         `gorm:"type:varchar(64);index" json:"terminal_id,omitempty"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Items    []OrderItem    `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	Payments []OrderPayment `gorm:"foreignKey:OrderID" json:"pagos,omitempty"`
	Branch   *Branch        `gorm:"foreignKey:BranchID" json:"branch,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
