package pos

import (
	"strings"

	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/http/response"
	"github.com/ferreplus/internal/service"

	"github.com/gin-gonic/gin"
)

// SaleRequest is the in-store counter submission. The customer is
// optional; an unnamed buyer is recorded as the walk-in placeholder.
type SaleRequest struct {
	CustomerID   *uint                  `json:"cliente_id"`
	CustomerName string                 `json:"cliente"`
	Notes        string                 `json:"notas"`
	Payments     []service.PaymentInput `json:"pagos" binding:"required"`
}

// SubmitSale runs a point-of-sale submission for the terminal's cart.
// Same pipeline as checkout, minus shipping and contact fields.
func (h *Handler) SubmitSale(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		customer = constants.WalkInCustomerName
	}
	h.submit(c, service.CheckoutInput{
		TerminalID:   id,
		Channel:      constants.SaleChannelPOS,
		CustomerID:   req.CustomerID,
		CustomerName: customer,
		Notes:        req.Notes,
		Payments:     req.Payments,
	})
}

// ScanSKU resolves a barcode-scanned SKU into a variant with branch price
// and availability, the counter's add-to-cart lookup.
func (h *Handler) ScanSKU(c *gin.Context) {
	branchID := queryUint(c, "sucursal_id")
	if branchID == 0 {
		response.BadRequest(c, "missing sucursal_id")
		return
	}
	item, err := h.CatalogService.LookupBySKU(c.Param("sku"), branchID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	if item == nil {
		response.NotFound(c, "unknown sku")
		return
	}
	response.Success(c, item)
}
