package pos

import (
	"errors"

	"github.com/ferreplus/internal/constants"
	"github.com/ferreplus/internal/http/response"
	"github.com/ferreplus/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitRequest is the checkout form: customer identity, contact fields
// and the payment split.
type SubmitRequest struct {
	CustomerID    *uint                  `json:"cliente_id"`
	CustomerName  string                 `json:"cliente" binding:"required"`
	CustomerEmail string                 `json:"email"`
	CustomerPhone string                 `json:"telefono"`
	ShipTo        string                 `json:"envio"`
	Notes         string                 `json:"notas"`
	Payments      []service.PaymentInput `json:"pagos" binding:"required"`
}

// ValidateCart runs the stock pre-flight without submitting, so the
// checkout page can show errors and warnings before the customer commits.
func (h *Handler) ValidateCart(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	report, err := h.CheckoutService.Validate(c.Request.Context(), id)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, report)
}

// SubmitOrder runs one checkout attempt for the terminal's cart.
func (h *Handler) SubmitOrder(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	h.submit(c, service.CheckoutInput{
		TerminalID:    id,
		Channel:       constants.SaleChannelCheckout,
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		ShipTo:        req.ShipTo,
		Notes:         req.Notes,
		Payments:      req.Payments,
	})
}

// LastReceipt returns the terminal's last-order summary for the
// confirmation view.
func (h *Handler) LastReceipt(c *gin.Context) {
	id, ok := terminalID(c)
	if !ok {
		return
	}
	receipt, err := h.CheckoutService.LastReceipt(c.Request.Context(), id)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	if receipt == nil {
		response.NotFound(c, "no receipt stored for this terminal")
		return
	}
	response.Success(c, receipt)
}

func (h *Handler) submit(c *gin.Context, input service.CheckoutInput) {
	result, err := h.CheckoutService.Submit(c.Request.Context(), input)
	if err != nil {
		// A stock rejection carries the structured report for display.
		if errors.Is(err, service.ErrStockRejected) && result != nil {
			response.ErrorWithData(c, response.CodeConflict, "stock validation failed", result.Report)
			return
		}
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, result)
}
