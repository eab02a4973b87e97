package pos

import (
	"github.com/ferreplus/internal/http/response"
	"github.com/ferreplus/internal/models"
	"github.com/ferreplus/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AddItemRequest adds one unit of a variant to the terminal's cart.
type AddItemRequest struct {
	BranchID  uint `json:"sucursal_id" binding:"required"`
	VariantID uint `json:"variant_id" binding:"required"`
}

// QuantityRequest replaces a line's quantity.
type QuantityRequest struct {
	Quantity int `json:"cantidad"`
}

// DiscountRequest replaces a line's percentage discount.
type DiscountRequest struct {
	DiscountPct decimal.Decimal `json:"descuento_pct"`
}

func cartView(cart *models.Cart) gin.H {
	return gin.H{
		"cart":   cart,
		"totals": cart.Totals(),
	}
}

// GetCart returns the terminal's cart with derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Get(c.Request.Context(), id)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(cart))
}

// AddItem adds one unit of a variant, reading live availability so the
// new line's stock ceiling reflects this moment's inventory.
func (h *Handler) AddItem(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	available := 0
	stock, err := h.BranchStockRepo.Get(req.BranchID, req.VariantID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	if stock != nil {
		available = stock.OnHand
	}

	cart, err := h.CartService.AddItem(c.Request.Context(), service.AddItemInput{
		TerminalID:     id,
		BranchID:       req.BranchID,
		VariantID:      req.VariantID,
		AvailableStock: available,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(cart))
}

// UpdateQuantity replaces a line's quantity; zero removes the line.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	variantID, ok := paramUint(c, "variant_id")
	if !ok {
		return
	}
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.CartService.SetQuantity(c.Request.Context(), id, variantID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(cart))
}

// UpdateDiscount replaces a line's percentage discount.
func (h *Handler) UpdateDiscount(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	variantID, ok := paramUint(c, "variant_id")
	if !ok {
		return
	}
	var req DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.CartService.SetDiscount(c.Request.Context(), id, variantID, req.DiscountPct)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(cart))
}

// RemoveItem deletes one line from the cart.
func (h *Handler) RemoveItem(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	variantID, ok := paramUint(c, "variant_id")
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveItem(c.Request.Context(), id, variantID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, cartView(cart))
}

// ClearCart empties the terminal's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), id); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, nil)
}
