package service

import (
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"
)

// PriceQuote is the currently effective price of a (variant, branch) pair.
type PriceQuote struct {
	UnitPrice    models.Money `json:"precio_venta"`
	MinimumStock int          `json:"stock_minimo"`
}

// PriceService resolves per-branch selling prices. It is read-only and
// deliberately uncached: every cart add re-resolves, so back-office price
// changes take effect on the next add within the same session.
type PriceService struct {
	priceRepo repository.BranchPriceRepository
}

// NewPriceService creates a price service.
func NewPriceService(priceRepo repository.BranchPriceRepository) *PriceService {
	return &PriceService{priceRepo: priceRepo}
}

// ResolvePrice returns the effective price for the pair. A variant without
// a branch-specific record resolves to ErrPriceNotFound; another branch's
// price is never substituted.
func (s *PriceService) ResolvePrice(variantID, branchID uint) (*PriceQuote, error) {
	if variantID == 0 || branchID == 0 {
		return nil, ErrPriceNotFound
	}
	price, err := s.priceRepo.GetCurrent(variantID, branchID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, ErrPriceNotFound
	}
	return &PriceQuote{
		UnitPrice:    price.SalePrice,
		MinimumStock: price.MinimumStock,
	}, nil
}
