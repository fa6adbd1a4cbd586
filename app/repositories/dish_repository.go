package repositories

import (
	"errors"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/metrics"
	"gorm.io/gorm"
)

// DishRepository handles database operations for the dish catalog.
type DishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{db: db}
}

// FindByID looks up a dish by primary key.
func (r *DishRepository) FindByID(id uint) (models.Dish, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var dish models.Dish
	err := r.db.First(&dish, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dish, apperr.ErrNotFound
	}
	return dish, err
}

// BySupplier returns every dish in a supplier's catalog, available or not.
func (r *DishRepository) BySupplier(supplierID uint) ([]models.Dish, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var dishes []models.Dish
	err := r.db.Where("supplier_id = ?", supplierID).Order("name").Find(&dishes).Error
	return dishes, err
}
