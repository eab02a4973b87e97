package service

import (
	"testing"

	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"
)

func newStockService(t *testing.T, name string, stocks []models.BranchStock) *StockService {
	t.Helper()
	db := newTestDB(t, name)
	if len(stocks) > 0 {
		if err := db.Create(&stocks).Error; err != nil {
			t.Fatalf("create stock failed: %v", err)
		}
	}
	return NewStockService(repository.NewBranchStockRepository(db))
}

func cartWith(branchID uint, lines ...models.CartLine) *models.Cart {
	return &models.Cart{TerminalID: "caja-1", BranchID: branchID, Lines: lines}
}

func TestValidateClassification(t *testing.T) {
	service := newStockService(t, "stock_classify", []models.BranchStock{
		{BranchID: 1, VariantID: 10, OnHand: 5, Minimum: 1},
		{BranchID: 1, VariantID: 11, OnHand: 2, Minimum: 0},
		{BranchID: 1, VariantID: 12, OnHand: 4, Minimum: 3},
		{BranchID: 1, VariantID: 13, OnHand: 1, Minimum: 0},
	})

	report, err := service.Validate(cartWith(1,
		models.CartLine{VariantID: 10, SKU: "OK", Quantity: 2},         // plenty left
		models.CartLine{VariantID: 11, SKU: "DEPLETE", Quantity: 2},    // exact depletion
		models.CartLine{VariantID: 12, SKU: "BELOWMIN", Quantity: 1},   // 3 left == minimum
		models.CartLine{VariantID: 13, SKU: "SHORT", Quantity: 3},      // over available
		models.CartLine{VariantID: 99, SKU: "UNSTOCKED", Quantity: 1},  // not in snapshot
	))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if report.OK {
		t.Fatalf("expected ok=false with hard errors present")
	}
	if len(report.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d: %+v", len(report.Errors), report.Errors)
	}
	if len(report.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %+v", len(report.Warnings), report.Warnings)
	}

	codes := map[uint]string{}
	for _, issue := range append(report.Errors, report.Warnings...) {
		codes[issue.VariantID] = issue.Code
	}
	if codes[11] != constants.StockIssueWillDeplete {
		t.Fatalf("variant 11: expected will_deplete, got %s", codes[11])
	}
	if codes[12] != constants.StockIssueBelowMinimumAfterSale {
		t.Fatalf("variant 12: expected below_minimum_after_sale, got %s", codes[12])
	}
	if codes[13] != constants.StockIssueInsufficientStock {
		t.Fatalf("variant 13: expected insufficient_stock, got %s", codes[13])
	}
	if codes[99] != constants.StockIssueVariantNotStocked {
		t.Fatalf("variant 99: expected variant_not_stocked, got %s", codes[99])
	}
}

func TestValidateInsufficientCarriesCounts(t *testing.T) {
	service := newStockService(t, "stock_counts", []models.BranchStock{
		{BranchID: 1, VariantID: 10, OnHand: 1, Minimum: 0},
	})
	report, err := service.Validate(cartWith(1, models.CartLine{VariantID: 10, SKU: "SHORT", Quantity: 3}))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if report.OK || len(report.Errors) != 1 {
		t.Fatalf("expected one hard error, got %+v", report)
	}
	issue := report.Errors[0]
	if issue.Requested != 3 || issue.Available != 1 {
		t.Fatalf("expected requested=3 available=1, got %+v", issue)
	}
	if !issue.IsError {
		t.Fatalf("expected issue flagged as error")
	}
}

func TestValidateZeroAvailable(t *testing.T) {
	service := newStockService(t, "stock_zero", []models.BranchStock{
		{BranchID: 1, VariantID: 10, OnHand: 0, Minimum: 0},
	})
	report, err := service.Validate(cartWith(1, models.CartLine{VariantID: 10, SKU: "GONE", Quantity: 1}))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if report.OK {
		t.Fatalf("expected ok=false for zero availability")
	}
	if report.Errors[0].Code != constants.StockIssueInsufficientStock {
		t.Fatalf("expected insufficient_stock, got %s", report.Errors[0].Code)
	}
}

func TestValidateWarningsDoNotBlock(t *testing.T) {
	service := newStockService(t, "stock_warn", []models.BranchStock{
		{BranchID: 1, VariantID: 10, OnHand: 3, Minimum: 0},
	})
	report, err := service.Validate(cartWith(1, models.CartLine{VariantID: 10, SKU: "LAST", Quantity: 3}))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !report.OK {
		t.Fatalf("expected ok=true with warnings only, got %+v", report)
	}
	if len(report.Warnings) != 1 || report.Warnings[0].Code != constants.StockIssueWillDeplete {
		t.Fatalf("expected one will_deplete warning, got %+v", report.Warnings)
	}
}

func TestValidateEmptyCart(t *testing.T) {
	service := newStockService(t, "stock_empty", nil)
	report, err := service.Validate(cartWith(1))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !report.OK || len(report.Errors) != 0 || len(report.Warnings) != 0 {
		t.Fatalf("expected clean report for empty cart, got %+v", report)
	}
}
