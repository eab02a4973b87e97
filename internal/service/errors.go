package service

import "errors"

// Capacity errors. Detected locally before or at submission time; they
// block the offending action and never silently clamp a quantity.
var (
	ErrOutOfStock           = errors.New("variant has no available stock")
	ErrStockCeilingExceeded = errors.New("quantity exceeds the line stock ceiling")
	ErrStockRejected        = errors.New("stock validation rejected the cart")
)

// Cart errors.
var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrBranchUnbound    = errors.New("cart has no bound branch")
	ErrBranchMismatch   = errors.New("cart is bound to a different branch")
	ErrLineNotFound     = errors.New("cart line not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrInvalidDiscount  = errors.New("discount must be between 0 and 100")
	ErrVariantNotActive = errors.New("variant is not available for sale")
)

// Pricing errors.
var (
	ErrPriceNotFound = errors.New("no effective price for variant at branch")
)

// Checkout errors.
var (
	ErrCustomerInvalid    = errors.New("customer name is required")
	ErrEmailInvalid       = errors.New("customer e-mail is malformed")
	ErrPaymentRequired    = errors.New("at least one payment entry is required")
	ErrPaymentInvalid     = errors.New("payment entry is invalid")
	ErrPaymentMismatch    = errors.New("payment sum does not equal the grand total")
	ErrSubmitInFlight     = errors.New("a submission for this terminal is already in flight")
	ErrStockConflict      = errors.New("stock changed between validation and submission")
	ErrSubmissionRejected = errors.New("order submission rejected")
)
