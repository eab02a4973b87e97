package models

import "time"

// Receipt is the lightweight summary persisted after a successful
// submission for the confirmation view. It is stored in the terminal
// key/value store, not in the database.
type Receipt struct {
	OrderNo    string    `json:"order_no"`
	BranchID   uint      `json:"sucursal_id"`
	Customer   string    `json:"cliente"`
	ShipTo     string    `json:"envio,omitempty"`
	GrandTotal Money     `json:"grand_total"`
	ItemCount  int       `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}
