package repositories

import (
	"errors"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/metrics"
	"gorm.io/gorm"
)

// OrderRepository handles database reads for orders. Writes go through the
// intake and status services, which own their transactions.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID loads one order with its line items, dish display fields, and
// supplier.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	err := r.db.
		Preload("Items.Dish").
		Preload("Supplier").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, apperr.ErrNotFound
	}
	return order, err
}

// ForSupplier returns all orders owned by a supplier, newest first.
// When day is non-nil the result is bounded to that calendar day in loc,
// inclusive: [startOfDay, nextDay).
func (r *OrderRepository) ForSupplier(supplierID uint, day *time.Time, loc *time.Location) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	q := r.db.
		Preload("Items.Dish").
		Where("supplier_id = ?", supplierID)

	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
		end := start.AddDate(0, 0, 1)
		q = q.Where("placed_at >= ? AND placed_at < ?", start, end)
	}

	var orders []models.Order
	err := q.Order("placed_at DESC").Find(&orders).Error
	return orders, err
}

// ForCustomer returns all orders placed by a customer, newest first.
func (r *OrderRepository) ForCustomer(customerID uint) ([]models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var orders []models.Order
	err := r.db.
		Preload("Items.Dish").
		Preload("Supplier").
		Where("customer_id = ?", customerID).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}
