package repository

import (
	"errors"

	"github.com/ferreplus/internal/models"

	"gorm.io/gorm"
)

// BranchRepository is the branch data access interface.
type BranchRepository interface {
	List(onlyActive bool) ([]models.Branch, error)
	GetByID(id uint) (*models.Branch, error)
	Create(branch *models.Branch) error
}

// GormBranchRepository is the GORM implementation.
type GormBranchRepository struct {
	db *gorm.DB
}

// NewBranchRepository creates a branch repository.
func NewBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

// List returns branches, optionally only active ones.
func (r *GormBranchRepository) List(onlyActive bool) ([]models.Branch, error) {
	query := r.db.Model(&models.Branch{})
	if onlyActive {
		query = query.Where("is_active = ?", true)
	}
	var branches []models.Branch
	if err := query.Order("code ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

// GetByID loads one branch, nil when absent.
func (r *GormBranchRepository) GetByID(id uint) (*models.Branch, error) {
	if id == 0 {
		return nil, nil
	}
	var branch models.Branch
	err := r.db.First(&branch, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// Create inserts a branch.
func (r *GormBranchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}
