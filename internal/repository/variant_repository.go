package repository

import (
	"errors"
	"strings"

	"github.com/ferreplus/internal/models"

	"gorm.io/gorm"
)

// VariantRepository is the product variant data access interface.
type VariantRepository interface {
	GetByID(id uint) (*models.ProductVariant, error)
	GetBySKU(sku string) (*models.ProductVariant, error)
	ListByIDs(ids []uint) ([]models.ProductVariant, error)
	List(filter CatalogFilter) ([]models.ProductVariant, int64, error)
	Create(variant *models.ProductVariant) error
}

// GormVariantRepository is the GORM implementation.
type GormVariantRepository struct {
	db *gorm.DB
}

// NewVariantRepository creates a variant repository.
func NewVariantRepository(db *gorm.DB) *GormVariantRepository {
	return &GormVariantRepository{db: db}
}

// GetByID loads one variant with its product, nil when absent.
func (r *GormVariantRepository) GetByID(id uint) (*models.ProductVariant, error) {
	if id == 0 {
		return nil, nil
	}
	var variant models.ProductVariant
	err := r.db.Preload("Product").First(&variant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// GetBySKU loads one variant by SKU code, nil when absent.
func (r *GormVariantRepository) GetBySKU(sku string) (*models.ProductVariant, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, nil
	}
	var variant models.ProductVariant
	err := r.db.Preload("Product").Where("sku = ?", sku).First(&variant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &variant, nil
}

// ListByIDs loads the given variants in one query.
func (r *GormVariantRepository) ListByIDs(ids []uint) ([]models.ProductVariant, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var variants []models.ProductVariant
	if err := r.db.Where("id IN ?", ids).Find(&variants).Error; err != nil {
		return nil, err
	}
	return variants, nil
}

// List returns a page of variants matching the filter.
func (r *GormVariantRepository) List(filter CatalogFilter) ([]models.ProductVariant, int64, error) {
	query := r.db.Model(&models.ProductVariant{})
	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("sku LIKE ? OR display_name LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var variants []models.ProductVariant
	err := applyPagination(query.Preload("Product").Order("sku ASC"), filter.Page, filter.PageSize).Find(&variants).Error
	if err != nil {
		return nil, 0, err
	}
	return variants, total, nil
}

// Create inserts a variant.
func (r *GormVariantRepository) Create(variant *models.ProductVariant) error {
	return r.db.Create(variant).Error
}
