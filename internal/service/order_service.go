package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/queue"
	"github.com/ferreplus/internal/repository"

	"gorm.io/gorm"
)

// PaymentInput is one payment entry of a submission.
type PaymentInput struct {
	Type      string       `json:"tipo"`
	Amount    models.Money `json:"monto"`
	Reference string       `json:"referencia"`
}

// SubmitOrderInput carries everything the submission transaction needs.
// Totals are recomputed from the cart, never taken from the caller.
type SubmitOrderInput struct {
	Cart          *models.Cart
	Channel       string
	CustomerID    *uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ShipTo        string
	Notes         string
	Payments      []PaymentInput
}

// OrderSubmitter turns a validated cart into a persisted order. Checkout
// depends on this boundary, not on the database, so submission can be
// faked in tests.
type OrderSubmitter interface {
	Submit(input SubmitOrderInput) (*models.Order, error)
}

// OrderService persists orders. Submit runs the whole write in one
// transaction with a guarded stock decrement per line, so two terminals
// racing for the last unit cannot both win.
type OrderService struct {
	orderRepo       repository.OrderRepository
	stockRepo       repository.BranchStockRepository
	queueClient     *queue.Client
	lowStockAlertOn bool
}

// NewOrderService creates an order service.
func NewOrderService(orderRepo repository.OrderRepository, stockRepo repository.BranchStockRepository, queueClient *queue.Client, lowStockAlertOn bool) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		stockRepo:       stockRepo,
		queueClient:     queueClient,
		lowStockAlertOn: lowStockAlertOn,
	}
}

// Submit writes the order, its items and its payments, deducting branch
// stock line by line. Any line whose guarded decrement affects zero rows
// aborts the transaction with ErrStockConflict and no stock moves.
func (s *OrderService) Submit(input SubmitOrderInput) (*models.Order, error) {
	cart := input.Cart
	if cart == nil || cart.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if cart.BranchID == 0 {
		return nil, ErrBranchUnbound
	}

	totals := cart.Totals()
	now := time.Now()
	order := &models.Order{
		OrderNo:       generateOrderNo(),
		BranchID:      cart.BranchID,
		CustomerID:    input.CustomerID,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerEmail: strings.TrimSpace(input.CustomerEmail),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
		ShipTo:        strings.TrimSpace(input.ShipTo),
		Channel:       input.Channel,
		Status:        constants.OrderStatusCompleted,
		Subtotal:      totals.Subtotal,
		DiscountTotal: totals.DiscountTotal,
		GrandTotal:    totals.GrandTotal,
		Notes:         strings.TrimSpace(input.Notes),
		TerminalID:    cart.TerminalID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	items := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, models.OrderItem{
			VariantID:   line.VariantID,
			SKU:         line.SKU,
			DisplayName: line.DisplayName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			DiscountPct: line.DiscountPct,
			LineTotal:   line.Subtotal(),
		})
	}
	payments := make([]models.OrderPayment, 0, len(input.Payments))
	for _, payment := range input.Payments {
		payments = append(payments, models.OrderPayment{
			Type:      payment.Type,
			Amount:    payment.Amount,
			Reference: strings.TrimSpace(payment.Reference),
		})
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		stockRepo := s.stockRepo.WithTx(tx)
		for _, line := range cart.Lines {
			affected, err := stockRepo.Deduct(cart.BranchID, line.VariantID, line.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStockConflict
			}
		}
		return s.orderRepo.WithTx(tx).Create(order, items, payments)
	})
	if err != nil {
		return nil, err
	}

	s.notifyAfterSubmit(order, cart)
	return order, nil
}

// notifyAfterSubmit fires the post-commit queue tasks. Failures here are
// logged and never surfaced; the order is already committed.
func (s *OrderService) notifyAfterSubmit(order *models.Order, cart *models.Cart) {
	if err := s.queueClient.EnqueueOrderReceipt(queue.OrderReceiptPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("enqueue order receipt failed", "order_no", order.OrderNo, "error", err)
	}
	if !s.lowStockAlertOn {
		return
	}
	for _, line := range cart.Lines {
		stock, err := s.stockRepo.Get(cart.BranchID, line.VariantID)
		if err != nil || stock == nil {
			continue
		}
		if stock.OnHand > stock.Minimum {
			continue
		}
		err = s.queueClient.EnqueueLowStockAlert(queue.LowStockAlertPayload{
			BranchID:  cart.BranchID,
			VariantID: line.VariantID,
			OnHand:    stock.OnHand,
			Minimum:   stock.Minimum,
		})
		if err != nil {
			logger.Warnw("enqueue low stock alert failed", "variant_id", line.VariantID, "error", err)
		}
	}
}

// GetByOrderNo loads one order by number, nil when absent.
func (s *OrderService) GetByOrderNo(orderNo string) (*models.Order, error) {
	return s.orderRepo.GetByOrderNo(orderNo)
}

// GetByID loads one order, nil when absent.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// List returns a page of orders.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("FP%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
