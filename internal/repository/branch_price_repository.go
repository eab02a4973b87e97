package repository

import (
	"errors"

	"github.com/ferreplus/internal/models"

	"gorm.io/gorm"
)

// BranchPriceRepository is the per-branch price data access interface.
type BranchPriceRepository interface {
	GetCurrent(variantID, branchID uint) (*models.BranchPrice, error)
	ListCurrentForBranch(branchID uint, variantIDs []uint) ([]models.BranchPrice, error)
	Create(price *models.BranchPrice) error
	Supersede(variantID, branchID uint) error
}

// GormBranchPriceRepository is the GORM implementation.
type GormBranchPriceRepository struct {
	db *gorm.DB
}

// NewBranchPriceRepository creates a branch price repository.
func NewBranchPriceRepository(db *gorm.DB) *GormBranchPriceRepository {
	return &GormBranchPriceRepository{db: db}
}

// GetCurrent returns the single effective price record for the pair, nil
// when no branch-specific record exists. Callers must not substitute a
// different branch's price.
func (r *GormBranchPriceRepository) GetCurrent(variantID, branchID uint) (*models.BranchPrice, error) {
	if variantID == 0 || branchID == 0 {
		return nil, nil
	}
	var price models.BranchPrice
	err := r.db.
		Where("variant_id = ? AND branch_id = ? AND is_current = ?", variantID, branchID, true).
		Order("effective_from DESC, id DESC").
		First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &price, nil
}

// ListCurrentForBranch returns the effective price records of the given
// variants in one branch.
func (r *GormBranchPriceRepository) ListCurrentForBranch(branchID uint, variantIDs []uint) ([]models.BranchPrice, error) {
	if branchID == 0 {
		return nil, nil
	}
	query := r.db.Where("branch_id = ? AND is_current = ?", branchID, true)
	if len(variantIDs) > 0 {
		query = query.Where("variant_id IN ?", variantIDs)
	}
	var prices []models.BranchPrice
	if err := query.Order("variant_id ASC, effective_from DESC").Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}

// Create inserts a price record.
func (r *GormBranchPriceRepository) Create(price *models.BranchPrice) error {
	return r.db.Create(price).Error
}

// Supersede clears the current flag on all records of the pair, making room
// for a replacement record.
func (r *GormBranchPriceRepository) Supersede(variantID, branchID uint) error {
	return r.db.Model(&models.BranchPrice{}).
		Where("variant_id = ? AND branch_id = ?", variantID, branchID).
		Update("is_current", false).Error
}
