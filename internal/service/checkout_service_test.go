package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"

	"github.com/shopspring/decimal"
)

type stubSubmitter struct {
	calls int
	order *models.Order
	err   error
}

func (s *stubSubmitter) Submit(input SubmitOrderInput) (*models.Order, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	order := s.order
	if order == nil {
		totals := input.Cart.Totals()
		order = &models.Order{
			OrderNo:      "FP20260828120000123456",
			BranchID:     input.Cart.BranchID,
			CustomerName: input.CustomerName,
			ShipTo:       input.ShipTo,
			GrandTotal:   totals.GrandTotal,
			Status:       constants.OrderStatusCompleted,
		}
	}
	return order, nil
}

type checkoutFixture struct {
	*cartFixture
	submitter *stubSubmitter
	checkout  *CheckoutService
}

func newCheckoutFixture(t *testing.T, name string) *checkoutFixture {
	t.Helper()
	f := newCartFixture(t, name)
	store := repository.NewGormTerminalStore(f.db)
	submitter := &stubSubmitter{}
	checkout := NewCheckoutService(
		f.cartService,
		NewStockService(repository.NewBranchStockRepository(f.db)),
		submitter,
		store,
	)
	return &checkoutFixture{cartFixture: f, submitter: submitter, checkout: checkout}
}

func (f *checkoutFixture) fillCart(t *testing.T, quantity int) {
	t.Helper()
	ctx := context.Background()
	input := AddItemInput{TerminalID: "caja-1", BranchID: 1, VariantID: f.paintID, AvailableStock: 5}
	for i := 0; i < quantity; i++ {
		if _, err := f.cartService.AddItem(ctx, input); err != nil {
			t.Fatalf("AddItem error: %v", err)
		}
	}
}

func cashPayment(amount string) []PaymentInput {
	return []PaymentInput{{
		Type:   constants.PaymentTypeCash,
		Amount: models.NewMoneyFromDecimal(decimal.RequireFromString(amount)),
	}}
}

func TestCheckoutSuccessStoresReceiptAndClearsCart(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_success")
	ctx := context.Background()
	f.fillCart(t, 2)

	result, err := f.checkout.Submit(ctx, CheckoutInput{
		TerminalID:   "caja-1",
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		ShipTo:       "Av. Juarez 100",
		Payments:     cashPayment("20.00"),
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if result.Order == nil || result.Receipt == nil {
		t.Fatalf("expected order and receipt, got %+v", result)
	}
	if f.submitter.calls != 1 {
		t.Fatalf("expected one submission, got %d", f.submitter.calls)
	}

	cart, err := f.cartService.Get(ctx, "caja-1")
	if err != nil {
		t.Fatalf("Get cart error: %v", err)
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected cart cleared after success")
	}
	receipt, err := f.checkout.LastReceipt(ctx, "caja-1")
	if err != nil {
		t.Fatalf("LastReceipt error: %v", err)
	}
	if receipt == nil || receipt.OrderNo != result.Order.OrderNo {
		t.Fatalf("expected stored receipt for %s, got %+v", result.Order.OrderNo, receipt)
	}
	if receipt.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", receipt.ItemCount)
	}
}

func TestCheckoutPaymentMismatchRejectedBeforeSubmit(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_mismatch")
	ctx := context.Background()
	f.fillCart(t, 2)

	_, err := f.checkout.Submit(ctx, CheckoutInput{
		TerminalID:   "caja-1",
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments:     cashPayment("19.99"),
	})
	if !errors.Is(err, ErrPaymentMismatch) {
		t.Fatalf("expected ErrPaymentMismatch, got %v", err)
	}
	if f.submitter.calls != 0 {
		t.Fatalf("expected no submission on mismatch, got %d", f.submitter.calls)
	}
	cart, _ := f.cartService.Get(ctx, "caja-1")
	if cart.IsEmpty() {
		t.Fatalf("expected cart preserved after rejection")
	}
}

func TestCheckoutSplitPaymentMatchesTotal(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_split")
	ctx := context.Background()
	f.fillCart(t, 2)

	result, err := f.checkout.Submit(ctx, CheckoutInput{
		TerminalID:   "caja-1",
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments: []PaymentInput{
			{Type: constants.PaymentTypeCash, Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("12.50"))},
			{Type: constants.PaymentTypeCard, Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("7.50")), Reference: "VISA-4412"},
		},
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if result.Order == nil {
		t.Fatalf("expected order on matching split payment")
	}
}

func TestCheckoutStockRejectionKeepsCart(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_stockreject")
	ctx := context.Background()
	f.fillCart(t, 2)
	// Stock collapsed between add and submit.
	if err := f.db.Model(&models.BranchStock{}).Where("branch_id = ? AND variant_id = ?", 1, f.paintID).Update("existencia", 1).Error; err != nil {
		t.Fatalf("shrink stock failed: %v", err)
	}

	result, err := f.checkout.Submit(ctx, CheckoutInput{
		TerminalID:   "caja-1",
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments:     cashPayment("20.00"),
	})
	if !errors.Is(err, ErrStockRejected) {
		t.Fatalf("expected ErrStockRejected, got %v", err)
	}
	if result == nil || result.Report == nil || result.Report.OK {
		t.Fatalf("expected failing stock report, got %+v", result)
	}
	if f.submitter.calls != 0 {
		t.Fatalf("expected no submission after stock rejection")
	}
	cart, _ := f.cartService.Get(ctx, "caja-1")
	if cart.IsEmpty() {
		t.Fatalf("expected cart preserved after stock rejection")
	}
}

func TestCheckoutSubmissionFailureKeepsCart(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_fail")
	ctx := context.Background()
	f.fillCart(t, 1)
	f.submitter.err = ErrStockConflict

	_, err := f.checkout.Submit(ctx, CheckoutInput{
		TerminalID:   "caja-1",
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments:     cashPayment("10.00"),
	})
	if !errors.Is(err, ErrStockConflict) {
		t.Fatalf("expected ErrStockConflict, got %v", err)
	}
	cart, _ := f.cartService.Get(ctx, "caja-1")
	if cart.IsEmpty() {
		t.Fatalf("expected cart preserved after submission failure")
	}
	receipt, err := f.checkout.LastReceipt(ctx, "caja-1")
	if err != nil {
		t.Fatalf("LastReceipt error: %v", err)
	}
	if receipt != nil {
		t.Fatalf("expected no receipt after failure, got %+v", receipt)
	}
}

func TestCheckoutInFlightGuard(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_inflight")
	ctx := context.Background()
	f.fillCart(t, 1)
	f.checkout.inFlight.Store("caja-1", struct{}{})

	_, err := f.checkout.Submit(ctx, CheckoutInput{
		TerminalID:   "caja-1",
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments:     cashPayment("10.00"),
	})
	if !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}
	if f.submitter.calls != 0 {
		t.Fatalf("expected no submission while another is in flight")
	}
}

func TestCheckoutInputValidation(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_inputs")
	ctx := context.Background()
	f.fillCart(t, 1)

	cases := []struct {
		name  string
		input CheckoutInput
		want  error
	}{
		{
			name:  "missing customer name",
			input: CheckoutInput{TerminalID: "caja-1", CustomerName: "  ", Payments: cashPayment("10.00")},
			want:  ErrCustomerInvalid,
		},
		{
			name:  "malformed email",
			input: CheckoutInput{TerminalID: "caja-1", CustomerName: "Juana", CustomerEmail: "not-an-email", Payments: cashPayment("10.00")},
			want:  ErrEmailInvalid,
		},
		{
			name:  "no payments",
			input: CheckoutInput{TerminalID: "caja-1", CustomerName: "Juana"},
			want:  ErrPaymentRequired,
		},
		{
			name: "unknown payment type",
			input: CheckoutInput{TerminalID: "caja-1", CustomerName: "Juana", Payments: []PaymentInput{{
				Type: "cheque", Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("10.00")),
			}}},
			want: ErrPaymentInvalid,
		},
		{
			name: "non-positive amount",
			input: CheckoutInput{TerminalID: "caja-1", CustomerName: "Juana", Payments: []PaymentInput{{
				Type: constants.PaymentTypeCash, Amount: models.NewMoneyFromDecimal(decimal.Zero),
			}}},
			want: ErrPaymentInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.checkout.Submit(ctx, tc.input)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if f.submitter.calls != 0 {
		t.Fatalf("input errors must reject before submission, got %d calls", f.submitter.calls)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t, "checkout_emptycart")
	_, err := f.checkout.Submit(context.Background(), CheckoutInput{
		TerminalID:   "caja-1",
		CustomerName: "Juana",
		Payments:     cashPayment("10.00"),
	})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}
