package constants

// Order status constants
const (
	OrderStatusCompleted = "completed"
	OrderStatusVoided    = "voided"
)

// Sale channel constants (which surface assembled the order)
const (
	SaleChannelCart     = "cart"
	SaleChannelCheckout = "checkout"
	SaleChannelPOS      = "pos"
)

// Payment type constants (wire values kept from the legacy POS contract)
const (
	PaymentTypeCash     = "efectivo"
	PaymentTypeCard     = "tarjeta"
	PaymentTypeTransfer = "transferencia"
	PaymentTypeCredit   = "credito"
)

// Walk-in customer placeholder used by the point-of-sale surface
const (
	WalkInCustomerName = "CONSUMIDOR FINAL"
)

// Stock validation issue codes
const (
	StockIssueVariantNotStocked     = "variant_not_stocked"
	StockIssueInsufficientStock     = "insufficient_stock"
	StockIssueWillDeplete           = "will_deplete"
	StockIssueBelowMinimumAfterSale = "below_minimum_after_sale"
)

// Queue constants
const (
	QueueDefault      = "default"
	TaskOrderReceipt  = "pos:order_receipt"
	TaskLowStockAlert = "pos:low_stock_alert"
)

// Cache default constants
const (
	RedisPrefixDefault = "ferre"
)

// Discount bounds (percentage points)
const (
	DiscountPctMin = 0
	DiscountPctMax = 100
)
