package services

import (
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/repositories"
	"gorm.io/gorm"
)

// OrderQueryService serves the two read shapes: orders for a supplier
// (optionally bounded to one calendar day) and orders for a customer.
// Both join line items, dish display fields, and the counterpart's name,
// newest first. No pagination.
type OrderQueryService struct {
	orders *repositories.OrderRepository
	loc    *time.Location
}

func NewOrderQueryService(db *gorm.DB, loc *time.Location) *OrderQueryService {
	return &OrderQueryService{orders: repositories.NewOrderRepository(db), loc: loc}
}

// ForSupplier lists a supplier's orders. A non-nil day bounds the result to
// that calendar day in the business timezone, inclusive.
func (s *OrderQueryService) ForSupplier(supplierID uint, day *time.Time) ([]models.Order, error) {
	orders, err := s.orders.ForSupplier(supplierID, day, s.loc)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].CounterpartName = orders[i].CustomerName
	}
	return orders, nil
}

// ForCustomer lists a customer's own orders.
func (s *OrderQueryService) ForCustomer(customerID uint) ([]models.Order, error) {
	orders, err := s.orders.ForCustomer(customerID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].CounterpartName = orders[i].Supplier.Name
	}
	return orders, nil
}
