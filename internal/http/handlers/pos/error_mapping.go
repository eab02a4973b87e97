package pos

import (
	"errors"

	"github.com/ferreplus/internal/http/response"
	"github.com/ferreplus/internal/logger"
	"github.com/ferreplus/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service error onto an envelope code and message.
type mappedHandlerError struct {
	target  error
	code    int
	message string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackMessage string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			response.Error(c, rule.code, rule.message)
			return
		}
	}
	logger.Errorw("pos_handler_error", "path", c.FullPath(), "error", err)
	response.Error(c, response.CodeInternal, fallbackMessage)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrOutOfStock, code: response.CodeConflict, message: "item is out of stock"},
	{target: service.ErrStockCeilingExceeded, code: response.CodeConflict, message: "quantity exceeds available stock"},
	{target: service.ErrBranchMismatch, code: response.CodeBadRequest, message: "cart is bound to a different branch"},
	{target: service.ErrLineNotFound, code: response.CodeNotFound, message: "item not in cart"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, message: "invalid quantity"},
	{target: service.ErrInvalidDiscount, code: response.CodeBadRequest, message: "discount must be between 0 and 100"},
	{target: service.ErrVariantNotActive, code: response.CodeBadRequest, message: "item is not available for sale"},
	{target: service.ErrPriceNotFound, code: response.CodeNotFound, message: "no current price for this branch"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, message: "cart is empty"},
	{target: service.ErrBranchUnbound, code: response.CodeBadRequest, message: "cart has no branch"},
	{target: service.ErrCustomerInvalid, code: response.CodeBadRequest, message: "customer name is required"},
	{target: service.ErrEmailInvalid, code: response.CodeBadRequest, message: "customer email is malformed"},
	{target: service.ErrPaymentRequired, code: response.CodeBadRequest, message: "at least one payment is required"},
	{target: service.ErrPaymentInvalid, code: response.CodeBadRequest, message: "payment entry is invalid"},
	{target: service.ErrPaymentMismatch, code: response.CodeBadRequest, message: "payments do not add up to the total"},
	{target: service.ErrSubmitInFlight, code: response.CodeConflict, message: "a submission is already in progress"},
	{target: service.ErrStockConflict, code: response.CodeConflict, message: "stock changed during submission, review the cart"},
	{target: service.ErrSubmissionRejected, code: response.CodeUnprocessable, message: "order was rejected"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, "cart operation failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatRules(cartErrorRules, checkoutErrorRules), "order submission failed")
}

func concatRules(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}
