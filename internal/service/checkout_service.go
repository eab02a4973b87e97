package service

import (
	"context"
	"net/mail"
	"strings"
	"sync"
	"time"

	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"

	"github.com/shopspring/decimal"
)

// CheckoutInput is one submission attempt for a terminal's cart.
type CheckoutInput struct {
	TerminalID    string
	Channel       string
	CustomerID    *uint
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ShipTo        string
	Notes         string
	Payments      []PaymentInput
}

// CheckoutResult is what a submission attempt produced. Report is set when
// stock validation rejected the attempt; Order and Receipt on success.
type CheckoutResult struct {
	Order   *models.Order   `json:"order,omitempty"`
	Receipt *models.Receipt `json:"receipt,omitempty"`
	Report  *StockReport    `json:"stock,omitempty"`
}

// CheckoutService drives a submission attempt end to end: entry guards,
// fresh stock validation, the order write, then receipt persistence and
// cart teardown. A failed attempt leaves the cart exactly as it was.
type CheckoutService struct {
	cartService  *CartService
	stockService *StockService
	submitter    OrderSubmitter
	receipts     repository.ReceiptStore

	// inFlight holds terminal IDs with a submission in progress so a
	// double-tapped submit cannot start a second attempt.
	inFlight sync.Map
}

// NewCheckoutService creates a checkout service.
func NewCheckoutService(cartService *CartService, stockService *StockService, submitter OrderSubmitter, receipts repository.ReceiptStore) *CheckoutService {
	return &CheckoutService{
		cartService:  cartService,
		stockService: stockService,
		submitter:    submitter,
		receipts:     receipts,
	}
}

// Validate runs the stock check against the terminal's current cart
// without submitting anything. Used by the pre-flight endpoint.
func (s *CheckoutService) Validate(ctx context.Context, terminalID string) (*StockReport, error) {
	cart, err := s.cartService.Get(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	return s.stockService.Validate(cart)
}

// LastReceipt returns the terminal's last successful-order summary, nil
// when none is stored.
func (s *CheckoutService) LastReceipt(ctx context.Context, terminalID string) (*models.Receipt, error) {
	return s.receipts.LoadReceipt(ctx, terminalID)
}

// Submit runs one submission attempt. Input and payment problems reject
// before any stock or database work; a stock rejection returns the report
// alongside ErrStockRejected. On success the receipt is stored and the
// cart cleared.
func (s *CheckoutService) Submit(ctx context.Context, input CheckoutInput) (*CheckoutResult, error) {
	terminalID := strings.TrimSpace(input.TerminalID)
	if _, busy := s.inFlight.LoadOrStore(terminalID, struct{}{}); busy {
		return nil, ErrSubmitInFlight
	}
	defer s.inFlight.Delete(terminalID)

	cart, err := s.cartService.Get(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if cart.BranchID == 0 {
		return nil, ErrBranchUnbound
	}
	if err := validateCustomer(input); err != nil {
		return nil, err
	}
	totals := cart.Totals()
	if err := validatePayments(input.Payments, totals.GrandTotal); err != nil {
		return nil, err
	}

	report, err := s.stockService.Validate(cart)
	if err != nil {
		return nil, err
	}
	if !report.OK {
		return &CheckoutResult{Report: report}, ErrStockRejected
	}

	order, err := s.submitter.Submit(SubmitOrderInput{
		Cart:          cart,
		Channel:       input.Channel,
		CustomerID:    input.CustomerID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		ShipTo:        input.ShipTo,
		Notes:         input.Notes,
		Payments:      input.Payments,
	})
	if err != nil {
		return nil, err
	}

	receipt := &models.Receipt{
		OrderNo:    order.OrderNo,
		BranchID:   order.BranchID,
		Customer:   order.CustomerName,
		ShipTo:     order.ShipTo,
		GrandTotal: order.GrandTotal,
		ItemCount:  totals.ItemCount,
		CreatedAt:  time.Now(),
	}
	if err := s.receipts.SaveReceipt(ctx, terminalID, receipt); err != nil {
		logger.Warnw("save receipt failed", "terminal_id", terminalID, "order_no", order.OrderNo, "error", err)
	}
	if err := s.cartService.Clear(ctx, terminalID); err != nil {
		logger.Warnw("clear cart after submit failed", "terminal_id", terminalID, "order_no", order.OrderNo, "error", err)
	}

	return &CheckoutResult{Order: order, Receipt: receipt}, nil
}

func validateCustomer(input CheckoutInput) error {
	if strings.TrimSpace(input.CustomerName) == "" {
		return ErrCustomerInvalid
	}
	if email := strings.TrimSpace(input.CustomerEmail); email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return ErrEmailInvalid
		}
	}
	return nil
}

func validatePayments(payments []PaymentInput, grandTotal models.Money) error {
	if len(payments) == 0 {
		return ErrPaymentRequired
	}
	total := decimal.Zero
	for _, payment := range payments {
		if !validPaymentType(payment.Type) {
			return ErrPaymentInvalid
		}
		if !payment.Amount.Decimal.IsPositive() {
			return ErrPaymentInvalid
		}
		total = total.Add(payment.Amount.Decimal)
	}
	if !total.Round(2).Equal(grandTotal.Decimal) {
		return ErrPaymentMismatch
	}
	return nil
}

func validPaymentType(paymentType string) bool {
	switch paymentType {
	case constants.PaymentTypeCash, constants.PaymentTypeCard, constants.PaymentTypeTransfer, constants.PaymentTypeCredit:
		return true
	}
	return false
}
