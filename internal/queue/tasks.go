package queue

import (
	"encoding/json"

	"github.com/ferreplus/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderReceipt renders and archives the printable order receipt.
	TaskOrderReceipt = constants.TaskOrderReceipt
	// TaskLowStockAlert records a restock alert for a depleted variant.
	TaskLowStockAlert = constants.TaskLowStockAlert
)

// OrderReceiptPayload identifies the order whose receipt should be produced.
type OrderReceiptPayload struct {
	OrderID uint `json:"order_id"`
}

// LowStockAlertPayload describes inventory left after a deducting sale.
type LowStockAlertPayload struct {
	BranchID  uint `json:"sucursal_id"`
	VariantID uint `json:"variant_id"`
	OnHand    int  `json:"existencia"`
	Minimum   int  `json:"minimo"`
}

// NewOrderReceiptTask creates a receipt generation task.
func NewOrderReceiptTask(payload OrderReceiptPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderReceipt, body), nil
}

// NewLowStockAlertTask creates a low stock alert task.
func NewLowStockAlertTask(payload LowStockAlertPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLowStockAlert, body), nil
}
