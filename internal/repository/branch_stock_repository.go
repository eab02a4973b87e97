package repository

import (
	"errors"

	"github.com/ferreplus/internal/models"

	"gorm.io/gorm"
)

// BranchStockRepository is the per-branch inventory data access interface.
type BranchStockRepository interface {
	SnapshotForBranch(branchID uint) ([]models.BranchStock, error)
	Get(branchID, variantID uint) (*models.BranchStock, error)
	Deduct(branchID, variantID uint, quantity int) (int64, error)
	Upsert(stock *models.BranchStock) error
	WithTx(tx *gorm.DB) BranchStockRepository
}

// GormBranchStockRepository is the GORM implementation.
type GormBranchStockRepository struct {
	db *gorm.DB
}

// NewBranchStockRepository creates a branch stock repository.
func NewBranchStockRepository(db *gorm.DB) *GormBranchStockRepository {
	return &GormBranchStockRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormBranchStockRepository) WithTx(tx *gorm.DB) BranchStockRepository {
	if tx == nil {
		return r
	}
	return &GormBranchStockRepository{db: tx}
}

// SnapshotForBranch reads the full inventory of one branch. Validation
// always takes a fresh snapshot; rows are never cached across calls.
func (r *GormBranchStockRepository) SnapshotForBranch(branchID uint) ([]models.BranchStock, error) {
	if branchID == 0 {
		return nil, errors.New("invalid branch id")
	}
	var rows []models.BranchStock
	if err := r.db.Where("branch_id = ?", branchID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get loads one inventory row, nil when absent.
func (r *GormBranchStockRepository) Get(branchID, variantID uint) (*models.BranchStock, error) {
	if branchID == 0 || variantID == 0 {
		return nil, nil
	}
	var row models.BranchStock
	err := r.db.Where("branch_id = ? AND variant_id = ?", branchID, variantID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Deduct decrements on-hand stock with a guard against over-selling. The
// returned rows-affected count is zero when the row is missing or on-hand
// is short; the caller treats that as a stock conflict.
func (r *GormBranchStockRepository) Deduct(branchID, variantID uint, quantity int) (int64, error) {
	if branchID == 0 || variantID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock deduction")
	}
	result := r.db.Model(&models.BranchStock{}).
		Where("branch_id = ? AND variant_id = ? AND existencia >= ?", branchID, variantID, quantity).
		Update("existencia", gorm.Expr("existencia - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Upsert writes one inventory row, replacing an existing pair row.
func (r *GormBranchStockRepository) Upsert(stock *models.BranchStock) error {
	if stock == nil {
		return nil
	}
	var existing models.BranchStock
	err := r.db.Where("branch_id = ? AND variant_id = ?", stock.BranchID, stock.VariantID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(stock).Error
	}
	if err != nil {
		return err
	}
	return r.db.Model(&existing).Updates(map[string]interface{}{
		"existencia": stock.OnHand,
		"minimo":     stock.Minimum,
	}).Error
}
