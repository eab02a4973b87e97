package service

import (
	"testing"

	"github.com/ferreplus/internal/repository"

	"github.com/shopspring/decimal"
)

func newCatalogService(f *cartFixture) *CatalogService {
	return NewCatalogService(
		repository.NewBranchRepository(f.db),
		repository.NewVariantRepository(f.db),
		repository.NewBranchPriceRepository(f.db),
		repository.NewBranchStockRepository(f.db),
	)
}

func TestListForBranchOverlaysPriceAndStock(t *testing.T) {
	f := newCartFixture(t, "catalog_list")
	service := newCatalogService(f)

	page, err := service.ListForBranch(1, repository.CatalogFilter{OnlyActive: true, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("ListForBranch error: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("expected 2 catalog items, got total=%d len=%d", page.Total, len(page.Items))
	}
	bySKU := map[string]CatalogItem{}
	for _, item := range page.Items {
		bySKU[item.Variant.SKU] = item
	}
	paint := bySKU["PNT-BLANCO-1L"]
	if paint.UnitPrice == nil || !paint.UnitPrice.Decimal.Equal(decimal.RequireFromString("10.00")) {
		t.Fatalf("unexpected paint price: %+v", paint.UnitPrice)
	}
	if !paint.Stocked || paint.OnHand != 5 || paint.Minimum != 2 {
		t.Fatalf("unexpected paint stock: %+v", paint)
	}
}

func TestListForBranchKeepsUnpricedVariants(t *testing.T) {
	f := newCartFixture(t, "catalog_unpriced")
	service := newCatalogService(f)

	// Another branch has no prices or stock at all.
	page, err := service.ListForBranch(2, repository.CatalogFilter{OnlyActive: true, Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("ListForBranch error: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected variants listed without prices, got %d", len(page.Items))
	}
	for _, item := range page.Items {
		if item.UnitPrice != nil || item.Stocked {
			t.Fatalf("expected nil price and no stock for branch 2, got %+v", item)
		}
	}
}

func TestLookupBySKU(t *testing.T) {
	f := newCartFixture(t, "catalog_sku")
	service := newCatalogService(f)

	item, err := service.LookupBySKU("BRO-2IN", 1)
	if err != nil {
		t.Fatalf("LookupBySKU error: %v", err)
	}
	if item == nil {
		t.Fatalf("expected item for known SKU")
	}
	if item.UnitPrice == nil || !item.UnitPrice.Decimal.Equal(decimal.RequireFromString("7.51")) {
		t.Fatalf("unexpected price: %+v", item.UnitPrice)
	}
	if item.OnHand != 10 {
		t.Fatalf("expected 10 on hand, got %d", item.OnHand)
	}

	missing, err := service.LookupBySKU("NO-SUCH-SKU", 1)
	if err != nil {
		t.Fatalf("LookupBySKU error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for unknown SKU, got %+v", missing)
	}
}
