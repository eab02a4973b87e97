package pos

import (
	"github.com/ferreplus/internal/http/response"
	"github.com/ferreplus/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListBranches returns the active branches for the branch picker.
func (h *Handler) ListBranches(c *gin.Context) {
	branches, err := h.CatalogService.ListBranches()
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, branches)
}

// ListCatalog returns a searchable catalog page for one branch, each item
// carrying its effective price and live stock.
func (h *Handler) ListCatalog(c *gin.Context) {
	branchID := queryUint(c, "sucursal_id")
	if branchID == 0 {
		response.BadRequest(c, "missing sucursal_id")
		return
	}
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	result, err := h.CatalogService.ListForBranch(branchID, repository.CatalogFilter{
		Search:     c.Query("search"),
		OnlyActive: true,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.SuccessWithPage(c, result.Items, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     result.Total,
		TotalPage: (result.Total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetStock returns the live stock snapshot of one branch, the cart
// surfaces poll it to keep availability badges fresh.
func (h *Handler) GetStock(c *gin.Context) {
	branchID, ok := paramUint(c, "branch_id")
	if !ok {
		return
	}
	snapshot, err := h.BranchStockRepo.SnapshotForBranch(branchID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, snapshot)
}
