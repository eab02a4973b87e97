package repository

import (
	"github.com/ferreplus/internal/models"

	"gorm.io/gorm"
)

// StockAlertRepository is the low-stock alert data access interface.
type StockAlertRepository interface {
	Create(alert *models.StockAlert) error
	ListOpen(branchID uint, limit int) ([]models.StockAlert, error)
	Acknowledge(id uint) error
}

// GormStockAlertRepository is the GORM implementation.
type GormStockAlertRepository struct {
	db *gorm.DB
}

// NewStockAlertRepository creates a stock alert repository.
func NewStockAlertRepository(db *gorm.DB) *GormStockAlertRepository {
	return &GormStockAlertRepository{db: db}
}

// Create inserts an alert.
func (r *GormStockAlertRepository) Create(alert *models.StockAlert) error {
	if alert == nil {
		return nil
	}
	return r.db.Create(alert).Error
}

// ListOpen returns unacknowledged alerts, newest first.
func (r *GormStockAlertRepository) ListOpen(branchID uint, limit int) ([]models.StockAlert, error) {
	query := r.db.Where("acknowledged = ?", false)
	if branchID > 0 {
		query = query.Where("branch_id = ?", branchID)
	}
	if limit <= 0 {
		limit = 100
	}
	var alerts []models.StockAlert
	if err := query.Order("created_at DESC").Limit(limit).Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Acknowledge marks an alert handled.
func (r *GormStockAlertRepository) Acknowledge(id uint) error {
	return r.db.Model(&models.StockAlert{}).Where("id = ?", id).Update("acknowledged", true).Error
}
