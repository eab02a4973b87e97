package service

import (
	"context"

	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/repository"

	"github.com/shopspring/decimal"
)

// AddItemInput adds one unit of a variant to a terminal's cart.
// AvailableStock is the caller's live availability reading; it becomes the
// line's stock ceiling when the line is created.
type AddItemInput struct {
	TerminalID     string
	BranchID       uint
	VariantID      uint
	AvailableStock int
}

// CartService owns every cart mutation rule: quantity bounds, branch
// exclusivity and totals math. Mutations are all-or-nothing: a rejected
// operation leaves both the in-memory cart and the stored cart untouched.
type CartService struct {
	store        repository.CartStore
	priceService *PriceService
	variantRepo  repository.VariantRepository
}

// NewCartService creates a cart service.
func NewCartService(store repository.CartStore, priceService *PriceService, variantRepo repository.VariantRepository) *CartService {
	return &CartService{
		store:        store,
		priceService: priceService,
		variantRepo:  variantRepo,
	}
}

// Get restores the terminal's cart from the durable store.
func (s *CartService) Get(ctx context.Context, terminalID string) (*models.Cart, error) {
	return s.store.LoadCart(ctx, terminalID)
}

// AddItem inserts a new line with quantity 1, or increments an existing
// line. The first successful add to an empty cart binds the cart to the
// item's branch; a non-empty cart rejects items from any other branch.
func (s *CartService) AddItem(ctx context.Context, input AddItemInput) (*models.Cart, error) {
	if input.VariantID == 0 || input.BranchID == 0 {
		return nil, ErrLineNotFound
	}
	cart, err := s.store.LoadCart(ctx, input.TerminalID)
	if err != nil {
		return nil, err
	}
	if !cart.IsEmpty() && cart.BranchID != input.BranchID {
		return nil, ErrBranchMismatch
	}

	if idx := cart.FindLine(input.VariantID); idx >= 0 {
		line := &cart.Lines[idx]
		if line.Quantity+1 > line.StockCeiling {
			return nil, ErrStockCeilingExceeded
		}
		line.Quantity++
	} else {
		if input.AvailableStock <= 0 {
			return nil, ErrOutOfStock
		}
		variant, err := s.variantRepo.GetByID(input.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil || !variant.IsActive {
			return nil, ErrVariantNotActive
		}
		quote, err := s.priceService.ResolvePrice(input.VariantID, input.BranchID)
		if err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, models.CartLine{
			VariantID:    variant.ID,
			SKU:          variant.SKU,
			DisplayName:  variant.DisplayName,
			Attributes:   variant.Attributes,
			Quantity:     1,
			UnitPrice:    quote.UnitPrice,
			StockCeiling: input.AvailableStock,
			DiscountPct:  decimal.Zero,
		})
		if cart.BranchID == 0 {
			cart.BranchID = input.BranchID
		}
	}

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetQuantity replaces a line's quantity. Zero or negative removes the
// line; above the stock ceiling the stored quantity is left unchanged and
// the call is rejected.
func (s *CartService) SetQuantity(ctx context.Context, terminalID string, variantID uint, quantity int) (*models.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, terminalID, variantID)
	}
	cart, err := s.store.LoadCart(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	idx := cart.FindLine(variantID)
	if idx < 0 {
		return nil, ErrLineNotFound
	}
	if quantity > cart.Lines[idx].StockCeiling {
		return nil, ErrStockCeilingExceeded
	}
	cart.Lines[idx].Quantity = quantity

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetDiscount replaces a line's percentage discount (0–100).
func (s *CartService) SetDiscount(ctx context.Context, terminalID string, variantID uint, discountPct decimal.Decimal) (*models.Cart, error) {
	if discountPct.IsNegative() || discountPct.GreaterThan(decimal.NewFromInt(100)) {
		return nil, ErrInvalidDiscount
	}
	cart, err := s.store.LoadCart(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	idx := cart.FindLine(variantID)
	if idx < 0 {
		return nil, ErrLineNotFound
	}
	cart.Lines[idx].DiscountPct = discountPct

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem deletes a line. When the last line goes, the branch binding
// is cleared as well.
func (s *CartService) RemoveItem(ctx context.Context, terminalID string, variantID uint) (*models.Cart, error) {
	cart, err := s.store.LoadCart(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	idx := cart.FindLine(variantID)
	if idx < 0 {
		return nil, ErrLineNotFound
	}
	cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
	if len(cart.Lines) == 0 {
		cart.BranchID = 0
	}

	if err := s.store.SaveCart(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the cart and resets the branch binding. Used after a
// successful order and on explicit reset.
func (s *CartService) Clear(ctx context.Context, terminalID string) error {
	return s.store.ClearCart(ctx, terminalID)
}
