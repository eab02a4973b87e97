package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/ferreplus/internal/config"
	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/queue"
	"github.com/ferreplus/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newOrderFixture(t *testing.T, name string) (*gorm.DB, *OrderService, *cartFixture) {
	t.Helper()
	f := newCartFixture(t, name)
	queueClient, err := queue.NewClient(&config.QueueConfig{Enabled: false})
	if err != nil {
		t.Fatalf("queue client error: %v", err)
	}
	orderService := NewOrderService(
		repository.NewOrderRepository(f.db),
		repository.NewBranchStockRepository(f.db),
		queueClient,
		false,
	)
	return f.db, orderService, f
}

func paidCart(f *cartFixture, quantity int) *models.Cart {
	return &models.Cart{
		TerminalID: "caja-1",
		BranchID:   1,
		Lines: []models.CartLine{{
			VariantID:    f.paintID,
			SKU:          "PNT-BLANCO-1L",
			DisplayName:  "Pintura Latex Blanco 1L",
			Quantity:     quantity,
			UnitPrice:    models.NewMoneyFromDecimal(decimal.RequireFromString("10.00")),
			StockCeiling: 5,
			DiscountPct:  decimal.Zero,
		}},
	}
}

func TestSubmitPersistsOrderAndDeductsStock(t *testing.T) {
	db, orderService, f := newOrderFixture(t, "order_submit")
	cart := paidCart(f, 2)

	order, err := orderService.Submit(SubmitOrderInput{
		Cart:         cart,
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments: []PaymentInput{{
			Type:   constants.PaymentTypeCash,
			Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("20.00")),
		}},
	})
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if !strings.HasPrefix(order.OrderNo, "FP") {
		t.Fatalf("unexpected order number: %s", order.OrderNo)
	}
	if order.Status != constants.OrderStatusCompleted {
		t.Fatalf("expected completed status, got %s", order.Status)
	}
	if !order.GrandTotal.Decimal.Equal(decimal.RequireFromString("20.00")) {
		t.Fatalf("expected grand total 20.00, got %s", order.GrandTotal.String())
	}

	var stock models.BranchStock
	if err := db.Where("branch_id = ? AND variant_id = ?", 1, f.paintID).First(&stock).Error; err != nil {
		t.Fatalf("load stock failed: %v", err)
	}
	if stock.OnHand != 3 {
		t.Fatalf("expected stock 3 after deduction, got %d", stock.OnHand)
	}

	stored, err := orderService.GetByOrderNo(order.OrderNo)
	if err != nil {
		t.Fatalf("GetByOrderNo error: %v", err)
	}
	if stored == nil || len(stored.Items) != 1 || len(stored.Payments) != 1 {
		t.Fatalf("expected stored order with 1 item and 1 payment, got %+v", stored)
	}
	if stored.Items[0].Quantity != 2 {
		t.Fatalf("expected item quantity 2, got %d", stored.Items[0].Quantity)
	}
}

func TestSubmitStockConflictRollsBack(t *testing.T) {
	db, orderService, f := newOrderFixture(t, "order_conflict")
	cart := paidCart(f, 2)
	// Another terminal bought most of the stock after this cart was built.
	if err := db.Model(&models.BranchStock{}).Where("branch_id = ? AND variant_id = ?", 1, f.paintID).Update("existencia", 1).Error; err != nil {
		t.Fatalf("shrink stock failed: %v", err)
	}

	_, err := orderService.Submit(SubmitOrderInput{
		Cart:         cart,
		Channel:      constants.SaleChannelCheckout,
		CustomerName: "Juana Perez",
		Payments: []PaymentInput{{
			Type:   constants.PaymentTypeCash,
			Amount: models.NewMoneyFromDecimal(decimal.RequireFromString("20.00")),
		}},
	})
	if !errors.Is(err, ErrStockConflict) {
		t.Fatalf("expected ErrStockConflict, got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("expected no orders after rollback, got %d", orderCount)
	}
	var stock models.BranchStock
	if err := db.Where("branch_id = ? AND variant_id = ?", 1, f.paintID).First(&stock).Error; err != nil {
		t.Fatalf("load stock failed: %v", err)
	}
	if stock.OnHand != 1 {
		t.Fatalf("expected stock untouched at 1, got %d", stock.OnHand)
	}
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	_, orderService, _ := newOrderFixture(t, "order_empty")
	_, err := orderService.Submit(SubmitOrderInput{Cart: &models.Cart{TerminalID: "caja-1"}})
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestGenerateOrderNoShape(t *testing.T) {
	orderNo := generateOrderNo()
	if !strings.HasPrefix(orderNo, "FP") {
		t.Fatalf("expected FP prefix, got %s", orderNo)
	}
	if len(orderNo) != 2+14+6 {
		t.Fatalf("unexpected order number length: %s", orderNo)
	}
	if orderNo == generateOrderNo() {
		t.Fatalf("expected random suffix to differ")
	}
}
