package services_test

import (
	"testing"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrderAt(t *testing.T, db *gorm.DB, supplierID uint, customerID *uint, placedAt time.Time) models.Order {
	t.Helper()
	order := models.Order{
		SupplierID:   supplierID,
		CustomerID:   customerID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Status:       models.StatusNovo,
		TotalAmount:  decimal.NewFromFloat(10.00),
		PlacedAt:     placedAt,
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestForSupplierDayFilter(t *testing.T) {
	db := newTestDB(t)
	loc := testLocation(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, loc)
	// Midnight is inclusive, the next midnight is not.
	first := seedOrderAt(t, db, supplier.ID, nil, day)
	last := seedOrderAt(t, db, supplier.ID, nil, time.Date(2026, 8, 20, 23, 59, 59, 0, loc))
	seedOrderAt(t, db, supplier.ID, nil, time.Date(2026, 8, 19, 23, 59, 59, 0, loc))
	seedOrderAt(t, db, supplier.ID, nil, time.Date(2026, 8, 21, 0, 0, 0, 0, loc))

	svc := services.NewOrderQueryService(db, loc)
	orders, err := svc.ForSupplier(supplier.ID, &day)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, last.ID, orders[0].ID, "newest first")
	assert.Equal(t, first.ID, orders[1].ID)
}

func TestForSupplierAllDays(t *testing.T) {
	db := newTestDB(t)
	loc := testLocation(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	other := seedSupplier(t, db, "Doces do Pedro")

	seedOrderAt(t, db, supplier.ID, nil, time.Date(2026, 8, 19, 12, 0, 0, 0, loc))
	seedOrderAt(t, db, supplier.ID, nil, time.Date(2026, 8, 20, 12, 0, 0, 0, loc))
	seedOrderAt(t, db, other.ID, nil, time.Date(2026, 8, 20, 12, 0, 0, 0, loc))

	svc := services.NewOrderQueryService(db, loc)
	orders, err := svc.ForSupplier(supplier.ID, nil)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, supplier.ID, o.SupplierID)
		assert.Equal(t, o.CustomerName, o.CounterpartName)
	}
}

func TestForSupplierJoinsLineItems(t *testing.T) {
	db := newTestDB(t)
	loc := testLocation(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)

	intake := services.NewOrderIntakeService(db, loc)
	_, err := intake.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	svc := services.NewOrderQueryService(db, loc)
	orders, err := svc.ForSupplier(supplier.ID, nil)
	require.NoError(t, err)

	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Coxinha", orders[0].Items[0].Dish.Name)
}

func TestForCustomerOwnOrdersOnly(t *testing.T) {
	db := newTestDB(t)
	loc := testLocation(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	ana := seedUser(t, db, "Ana Paula")
	beto := seedUser(t, db, "Beto Silva")

	seedOrderAt(t, db, supplier.ID, &ana.ID, time.Date(2026, 8, 20, 10, 0, 0, 0, loc))
	seedOrderAt(t, db, supplier.ID, &ana.ID, time.Date(2026, 8, 20, 11, 0, 0, 0, loc))
	seedOrderAt(t, db, supplier.ID, &beto.ID, time.Date(2026, 8, 20, 12, 0, 0, 0, loc))
	seedOrderAt(t, db, supplier.ID, nil, time.Date(2026, 8, 20, 13, 0, 0, 0, loc))

	svc := services.NewOrderQueryService(db, loc)
	orders, err := svc.ForCustomer(ana.ID)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.True(t, orders[0].PlacedAt.After(orders[1].PlacedAt), "newest first")
	for _, o := range orders {
		require.NotNil(t, o.CustomerID)
		assert.Equal(t, ana.ID, *o.CustomerID)
		assert.Equal(t, supplier.Name, o.CounterpartName)
	}
}
