package repositories

import (
	"errors"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/metrics"
	"gorm.io/gorm"
)

// SupplierRepository handles database operations for supplier accounts.
type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

// FindByEmail looks up a supplier by email address.
func (r *SupplierRepository) FindByEmail(email string) (models.Supplier, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var supplier models.Supplier
	err := r.db.Where("email = ?", email).First(&supplier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return supplier, apperr.ErrNotFound
	}
	return supplier, err
}

// FindByID looks up a supplier by primary key.
func (r *SupplierRepository) FindByID(id uint) (models.Supplier, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var supplier models.Supplier
	err := r.db.First(&supplier, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return supplier, apperr.ErrNotFound
	}
	return supplier, err
}

// Create persists a new supplier record.
func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(supplier).Error
}
