package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ferreplus/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Branch{},
		&models.ProductVariant{},
		&models.BranchStock{},
		&models.TerminalRecord{},
	)
	if err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestGormTerminalStoreCartRoundTrip(t *testing.T) {
	db := newTestDB(t, "terminal_cart_roundtrip")
	store := NewGormTerminalStore(db)
	ctx := context.Background()

	cart := &models.Cart{
		TerminalID: "caja-1",
		BranchID:   2,
		Lines: []models.CartLine{
			{VariantID: 5, SKU: "BRO-CER-2IN", Quantity: 3, UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromFloat(38.90)), DiscountPct: decimal.Zero},
		},
	}
	if err := store.SaveCart(ctx, cart); err != nil {
		t.Fatalf("save cart failed: %v", err)
	}

	loaded, err := store.LoadCart(ctx, "caja-1")
	if err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if loaded.BranchID != 2 || len(loaded.Lines) != 1 {
		t.Fatalf("loaded cart = %+v, want branch 2 with 1 line", loaded)
	}
	if loaded.Lines[0].SKU != "BRO-CER-2IN" || loaded.Lines[0].Quantity != 3 {
		t.Errorf("loaded line = %+v", loaded.Lines[0])
	}
	if loaded.Lines[0].UnitPrice.String() != "38.90" {
		t.Errorf("unit price = %s, want 38.90", loaded.Lines[0].UnitPrice.String())
	}

	// Save again to exercise the update path.
	loaded.Lines[0].Quantity = 5
	if err := store.SaveCart(ctx, loaded); err != nil {
		t.Fatalf("resave cart failed: %v", err)
	}
	again, err := store.LoadCart(ctx, "caja-1")
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if again.Lines[0].Quantity != 5 {
		t.Errorf("quantity after resave = %d, want 5", again.Lines[0].Quantity)
	}

	if err := store.ClearCart(ctx, "caja-1"); err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	cleared, err := store.LoadCart(ctx, "caja-1")
	if err != nil {
		t.Fatalf("load after clear failed: %v", err)
	}
	if !cleared.IsEmpty() || cleared.BranchID != 0 {
		t.Errorf("cart after clear = %+v, want empty", cleared)
	}
}

func TestGormTerminalStoreMissingCartIsEmpty(t *testing.T) {
	db := newTestDB(t, "terminal_cart_missing")
	store := NewGormTerminalStore(db)

	cart, err := store.LoadCart(context.Background(), "caja-9")
	if err != nil {
		t.Fatalf("load cart failed: %v", err)
	}
	if !cart.IsEmpty() || cart.TerminalID != "caja-9" || cart.Lines == nil {
		t.Errorf("cart = %+v, want empty cart for caja-9", cart)
	}
}

func TestGormTerminalStoreCorruptCartResets(t *testing.T) {
	db := newTestDB(t, "terminal_cart_corrupt")
	store := NewGormTerminalStore(db)
	ctx := context.Background()

	record := models.TerminalRecord{
		TerminalID: "caja-1",
		Kind:       "cart",
		Payload:    []byte("{not json"),
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed corrupt record failed: %v", err)
	}

	cart, err := store.LoadCart(ctx, "caja-1")
	if err != nil {
		t.Fatalf("load corrupt cart failed: %v", err)
	}
	if !cart.IsEmpty() {
		t.Errorf("cart = %+v, want empty after corrupt payload", cart)
	}

	// The broken row is dropped so the next load does not re-log.
	var count int64
	db.Model(&models.TerminalRecord{}).
		Where("terminal_id = ? AND kind = ?", "caja-1", "cart").
		Count(&count)
	if count != 0 {
		t.Errorf("corrupt record count = %d, want 0", count)
	}
}

func TestGormTerminalStoreReceipt(t *testing.T) {
	db := newTestDB(t, "terminal_receipt")
	store := NewGormTerminalStore(db)
	ctx := context.Background()

	missing, err := store.LoadReceipt(ctx, "caja-1")
	if err != nil {
		t.Fatalf("load missing receipt failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing receipt = %+v, want nil", missing)
	}

	receipt := &models.Receipt{
		OrderNo:    "FP20260828120000001234",
		BranchID:   1,
		Customer:   "María López",
		GrandTotal: models.NewMoneyFromDecimal(decimal.NewFromFloat(43.52)),
		ItemCount:  5,
		CreatedAt:  time.Now(),
	}
	if err := store.SaveReceipt(ctx, "caja-1", receipt); err != nil {
		t.Fatalf("save receipt failed: %v", err)
	}

	loaded, err := store.LoadReceipt(ctx, "caja-1")
	if err != nil {
		t.Fatalf("load receipt failed: %v", err)
	}
	if loaded == nil || loaded.OrderNo != receipt.OrderNo || loaded.GrandTotal.String() != "43.52" {
		t.Errorf("loaded receipt = %+v", loaded)
	}

	if err := store.ClearReceipt(ctx, "caja-1"); err != nil {
		t.Fatalf("clear receipt failed: %v", err)
	}
	gone, err := store.LoadReceipt(ctx, "caja-1")
	if err != nil {
		t.Fatalf("load after clear failed: %v", err)
	}
	if gone != nil {
		t.Errorf("receipt after clear = %+v, want nil", gone)
	}
}

func TestGormTerminalStoreEmptyTerminalID(t *testing.T) {
	db := newTestDB(t, "terminal_empty_id")
	store := NewGormTerminalStore(db)
	ctx := context.Background()

	if _, err := store.LoadCart(ctx, ""); err == nil {
		t.Error("LoadCart with empty terminal id should fail")
	}
	if err := store.SaveCart(ctx, &models.Cart{}); err == nil {
		t.Error("SaveCart without terminal id should fail")
	}
	if err := store.SaveReceipt(ctx, "caja-1", nil); err == nil {
		t.Error("SaveReceipt with nil receipt should fail")
	}
}
