package service

import (
	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"
)

// StockIssue is one finding from a cart stock check. Hard errors block
// checkout; warnings inform the operator but let the sale proceed.
type StockIssue struct {
	VariantID uint   `json:"variant_id"`
	SKU       string `json:"sku"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Requested int    `json:"cantidad,omitempty"`
	Available int    `json:"existencia,omitempty"`
	IsError   bool   `json:"is_error"`
}

// StockReport is the full validation result for a cart. OK is true exactly
// when no hard error was found, regardless of warnings.
type StockReport struct {
	OK       bool         `json:"ok"`
	Errors   []StockIssue `json:"errors"`
	Warnings []StockIssue `json:"warnings"`
}

// StockService checks cart lines against live branch inventory.
type StockService struct {
	stockRepo repository.BranchStockRepository
}

// NewStockService creates a stock service.
func NewStockService(stockRepo repository.BranchStockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// Validate takes a fresh inventory snapshot for the cart's branch and
// classifies every line. Stock ceilings captured at add time are ignored
// here; only the snapshot counts.
func (s *StockService) Validate(cart *models.Cart) (*StockReport, error) {
	report := &StockReport{OK: true, Errors: []StockIssue{}, Warnings: []StockIssue{}}
	if cart == nil || cart.IsEmpty() {
		return report, nil
	}

	snapshot, err := s.stockRepo.SnapshotForBranch(cart.BranchID)
	if err != nil {
		return nil, err
	}
	byVariant := make(map[uint]models.BranchStock, len(snapshot))
	for _, stock := range snapshot {
		byVariant[stock.VariantID] = stock
	}

	for _, line := range cart.Lines {
		stock, found := byVariant[line.VariantID]
		if !found {
			report.Errors = append(report.Errors, StockIssue{
				VariantID: line.VariantID,
				SKU:       line.SKU,
				Code:      constants.StockIssueVariantNotStocked,
				Message:   "articulo no disponible en esta sucursal",
				Requested: line.Quantity,
				IsError:   true,
			})
			continue
		}
		switch {
		case stock.OnHand < line.Quantity:
			report.Errors = append(report.Errors, StockIssue{
				VariantID: line.VariantID,
				SKU:       line.SKU,
				Code:      constants.StockIssueInsufficientStock,
				Message:   "existencia insuficiente",
				Requested: line.Quantity,
				Available: stock.OnHand,
				IsError:   true,
			})
		case stock.OnHand == line.Quantity:
			report.Warnings = append(report.Warnings, StockIssue{
				VariantID: line.VariantID,
				SKU:       line.SKU,
				Code:      constants.StockIssueWillDeplete,
				Message:   "la venta agota la existencia",
				Requested: line.Quantity,
				Available: stock.OnHand,
			})
		case stock.OnHand-line.Quantity <= stock.Minimum:
			report.Warnings = append(report.Warnings, StockIssue{
				VariantID: line.VariantID,
				SKU:       line.SKU,
				Code:      constants.StockIssueBelowMinimumAfterSale,
				Message:   "la existencia queda bajo el minimo",
				Requested: line.Quantity,
				Available: stock.OnHand,
			})
		}
	}

	report.OK = len(report.Errors) == 0
	return report, nil
}
