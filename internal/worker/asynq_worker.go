package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/provider"
	"github.com/ferreplus/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer handles the queued POS tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register wires the task handlers.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderReceipt, c.handleOrderReceipt)
	mux.HandleFunc(queue.TaskLowStockAlert, c.handleLowStockAlert)
}

// handleOrderReceipt renders the printable receipt for a completed order
// and hands it to the print spool via the log pipeline.
func (c *Consumer) handleOrderReceipt(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_receipt_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderReceiptPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_receipt_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_receipt_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_receipt_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_receipt_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	logger.Infow("worker_order_receipt_rendered",
		"order_id", order.ID,
		"order_no", order.OrderNo,
		"receipt", buildReceiptText(order),
	)
	return nil
}

// handleLowStockAlert records a restock alert, skipping pairs that
// already have one open.
func (c *Consumer) handleLowStockAlert(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_low_stock_alert_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.LowStockAlertPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_low_stock_alert_unmarshal_failed", "error", err)
		return err
	}
	if payload.BranchID == 0 || payload.VariantID == 0 {
		logger.Debugw("worker_low_stock_alert_skip_invalid_payload", "branch_id", payload.BranchID, "variant_id", payload.VariantID)
		return nil
	}
	open, err := c.StockAlertRepo.ListOpen(payload.BranchID, 0)
	if err != nil {
		logger.Warnw("worker_low_stock_alert_list_failed", "branch_id", payload.BranchID, "error", err)
		return err
	}
	for _, alert := range open {
		if alert.VariantID == payload.VariantID {
			logger.Debugw("worker_low_stock_alert_skip_open_exists", "branch_id", payload.BranchID, "variant_id", payload.VariantID)
			return nil
		}
	}
	alert := &models.StockAlert{
		BranchID:  payload.BranchID,
		VariantID: payload.VariantID,
		OnHand:    payload.OnHand,
		Minimum:   payload.Minimum,
	}
	if err := c.StockAlertRepo.Create(alert); err != nil {
		logger.Warnw("worker_low_stock_alert_create_failed", "branch_id", payload.BranchID, "variant_id", payload.VariantID, "error", err)
		return err
	}
	return nil
}

// buildReceiptText renders a fixed-width receipt body from the stored
// order. Line totals come from the order items, never recomputed.
func buildReceiptText(order *models.Order) string {
	if order == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "ORDEN %s\n", order.OrderNo)
	fmt.Fprintf(&b, "CLIENTE %s\n", order.CustomerName)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%-20s x%d  %s\n", truncateReceiptField(item.DisplayName, 20), item.Quantity, item.LineTotal.StringFixed(2))
	}
	fmt.Fprintf(&b, "SUBTOTAL  %s\n", order.Subtotal.StringFixed(2))
	fmt.Fprintf(&b, "DESCUENTO %s\n", order.DiscountTotal.StringFixed(2))
	fmt.Fprintf(&b, "TOTAL     %s", order.GrandTotal.StringFixed(2))
	return b.String()
}

func truncateReceiptField(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
