package pos

import (
	"github.com/ferreplus/internal/http/response"
	"github.com/ferreplus/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetOrder loads one submitted order by its number.
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByOrderNo(c.Param("order_no"))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	if order == nil {
		response.NotFound(c, "order not found")
		return
	}
	response.Success(c, order)
}

// ListOrders returns a page of submitted orders, filterable by branch,
// status and channel.
func (h *Handler) ListOrders(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	orders, total, err := h.OrderService.List(repository.OrderListFilter{
		BranchID: queryUint(c, "sucursal_id"),
		Status:   c.Query("status"),
		Channel:  c.Query("channel"),
		OrderNo:  c.Query("order_no"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// ListStockAlerts returns unacknowledged low-stock alerts for one branch.
func (h *Handler) ListStockAlerts(c *gin.Context) {
	branchID := queryUint(c, "sucursal_id")
	alerts, err := h.StockAlertRepo.ListOpen(branchID, queryInt(c, "limit", 50))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, alerts)
}

// AcknowledgeStockAlert marks one alert as handled.
func (h *Handler) AcknowledgeStockAlert(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}
	if err := h.StockAlertRepo.Acknowledge(id); err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, nil)
}
