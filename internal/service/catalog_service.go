package service

import (
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"
)

// CatalogItem is a variant as one branch sees it: display data plus the
// effective price and the live stock figures the cart surfaces need.
type CatalogItem struct {
	Variant   models.ProductVariant `json:"variant"`
	UnitPrice *models.Money         `json:"precio_venta,omitempty"`
	OnHand    int                   `json:"existencia"`
	Minimum   int                   `json:"minimo"`
	Stocked   bool                  `json:"stocked"`
}

// CatalogPage is one page of branch catalog items.
type CatalogPage struct {
	Items []CatalogItem `json:"items"`
	Total int64         `json:"total"`
}

// CatalogService serves the read side of the three sale surfaces: branch
// lists, searchable variant catalogs and per-branch availability lookups.
type CatalogService struct {
	branchRepo  repository.BranchRepository
	variantRepo repository.VariantRepository
	priceRepo   repository.BranchPriceRepository
	stockRepo   repository.BranchStockRepository
}

// NewCatalogService creates a catalog service.
func NewCatalogService(branchRepo repository.BranchRepository, variantRepo repository.VariantRepository, priceRepo repository.BranchPriceRepository, stockRepo repository.BranchStockRepository) *CatalogService {
	return &CatalogService{
		branchRepo:  branchRepo,
		variantRepo: variantRepo,
		priceRepo:   priceRepo,
		stockRepo:   stockRepo,
	}
}

// ListBranches returns the active branches.
func (s *CatalogService) ListBranches() ([]models.Branch, error) {
	return s.branchRepo.List(true)
}

// GetBranch loads one branch, nil when absent.
func (s *CatalogService) GetBranch(id uint) (*models.Branch, error) {
	return s.branchRepo.GetByID(id)
}

// ListForBranch returns a catalog page for one branch with price and stock
// overlaid per variant. Variants without a current price stay listed with
// a nil price so the operator can see the gap.
func (s *CatalogService) ListForBranch(branchID uint, filter repository.CatalogFilter) (*CatalogPage, error) {
	variants, total, err := s.variantRepo.List(filter)
	if err != nil {
		return nil, err
	}
	page := &CatalogPage{Items: make([]CatalogItem, 0, len(variants)), Total: total}
	if len(variants) == 0 {
		return page, nil
	}

	ids := make([]uint, 0, len(variants))
	for _, variant := range variants {
		ids = append(ids, variant.ID)
	}
	prices, err := s.priceRepo.ListCurrentForBranch(branchID, ids)
	if err != nil {
		return nil, err
	}
	priceByVariant := make(map[uint]models.Money, len(prices))
	for _, price := range prices {
		priceByVariant[price.VariantID] = price.SalePrice
	}
	snapshot, err := s.stockRepo.SnapshotForBranch(branchID)
	if err != nil {
		return nil, err
	}
	stockByVariant := make(map[uint]models.BranchStock, len(snapshot))
	for _, stock := range snapshot {
		stockByVariant[stock.VariantID] = stock
	}

	for _, variant := range variants {
		item := CatalogItem{Variant: variant}
		if price, found := priceByVariant[variant.ID]; found {
			p := price
			item.UnitPrice = &p
		}
		if stock, found := stockByVariant[variant.ID]; found {
			item.OnHand = stock.OnHand
			item.Minimum = stock.Minimum
			item.Stocked = true
		}
		page.Items = append(page.Items, item)
	}
	return page, nil
}

// LookupBySKU resolves one variant with branch price and stock, the scan
// path of the point-of-sale surface. Unknown SKUs return nil.
func (s *CatalogService) LookupBySKU(sku string, branchID uint) (*CatalogItem, error) {
	variant, err := s.variantRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, nil
	}
	item := &CatalogItem{Variant: *variant}
	price, err := s.priceRepo.GetCurrent(variant.ID, branchID)
	if err != nil {
		return nil, err
	}
	if price != nil {
		p := price.SalePrice
		item.UnitPrice = &p
	}
	stock, err := s.stockRepo.Get(branchID, variant.ID)
	if err != nil {
		return nil, err
	}
	if stock != nil {
		item.OnHand = stock.OnHand
		item.Minimum = stock.Minimum
		item.Stocked = true
	}
	return item, nil
}
