package services_test

import (
	"testing"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/services"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	order, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	// Raise the catalog price after the order committed.
	require.NoError(t, db.Model(&models.Dish{}).
		Where("id = ?", dish.ID).
		Update("price", decimal.NewFromFloat(25.00)).Error)

	var reloaded models.Order
	require.NoError(t, db.Preload("Items").First(&reloaded, order.ID).Error)

	require.Len(t, reloaded.Items, 1)
	line := reloaded.Items[0]
	assert.True(t, line.UnitPrice.Equal(decimal.NewFromFloat(18.50)),
		"unit price must keep the price at order time, got %s", line.UnitPrice)
	assert.True(t, line.Subtotal.Equal(decimal.NewFromFloat(37.00)), "subtotal %s", line.Subtotal)
	assert.True(t, reloaded.TotalAmount.Equal(decimal.NewFromFloat(37.00)), "total %s", reloaded.TotalAmount)
}

func TestCreateOrderTotalSumsAllLines(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	coxinha := seedDish(t, db, supplier.ID, "Coxinha", 10.00, true)
	brigadeiro := seedDish(t, db, supplier.ID, "Brigadeiro", 5.50, true)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	order, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items: []services.OrderItemInput{
			{DishID: coxinha.ID, Quantity: 2},
			{DishID: brigadeiro.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	sum := decimal.Zero
	for _, line := range order.Items {
		sum = sum.Add(line.Subtotal)
	}
	assert.True(t, order.TotalAmount.Equal(sum), "total %s != line sum %s", order.TotalAmount, sum)
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromFloat(25.50)))
	assert.Equal(t, models.StatusNovo, order.Status)
	assert.Equal(t, supplier.Name, order.CounterpartName)
	assert.False(t, order.PlacedAt.IsZero())
}

func TestCreateOrderRejectsEmptyItems(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
	})
	require.Error(t, err)

	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateOrderRejectsZeroQuantity(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 0}},
	})
	require.Error(t, err)

	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateOrderDeliveryAddressRules(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)
	svc := services.NewOrderIntakeService(db, testLocation(t))

	base := services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 1}},
	}

	cases := []struct {
		name     string
		delivery models.DeliveryType
		address  string
		wantErr  bool
	}{
		{"delivery with address", models.DeliveryEntrega, "Rua das Flores 10", false},
		{"delivery without address", models.DeliveryEntrega, "", true},
		{"pickup without address", models.DeliveryRetirada, "", false},
		{"pickup with address", models.DeliveryRetirada, "Rua das Flores 10", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			in.DeliveryType = tc.delivery
			in.DeliveryAddress = tc.address

			_, err := svc.Create(in)
			if tc.wantErr {
				var verr *apperr.ValidationError
				assert.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateOrderMissingAddressWritesNothing(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryEntrega,
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 1}},
	})
	require.Error(t, err)

	var orders, lines int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.LineItem{}).Count(&lines)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestCreateOrderUnavailableDishRollsBack(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	available := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)
	soldOut := seedDish(t, db, supplier.ID, "Torta", 14.00, false)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items: []services.OrderItemInput{
			{DishID: available.ID, Quantity: 1},
			{DishID: soldOut.ID, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, apperr.ErrUnavailable)

	// The whole order aborts: nothing persisted, not even the valid line.
	var orders, lines int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.LineItem{}).Count(&lines)
	assert.Zero(t, orders)
	assert.Zero(t, lines)
}

func TestDishCreatedUnavailableStaysUnavailable(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	soldOut := seedDish(t, db, supplier.ID, "Torta", 14.00, false)

	// A column default would make gorm skip the false on insert and the
	// dish would reload as available.
	var reloaded models.Dish
	require.NoError(t, db.First(&reloaded, soldOut.ID).Error)
	assert.False(t, reloaded.Available)
}

func TestCreateOrderForeignDishRejected(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	other := seedSupplier(t, db, "Doces do Pedro")
	foreign := seedDish(t, db, other.ID, "Brigadeiro", 5.00, true)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: foreign.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperr.ErrOwnershipMismatch)
}

func TestCreateOrderUnknownDish(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: 9999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCreateOrderGuestRequiresName(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)

	svc := services.NewOrderIntakeService(db, testLocation(t))
	_, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 1}},
	})
	require.Error(t, err)

	var verr *apperr.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCreateOrderUsesCustomerProfile(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	dish := seedDish(t, db, supplier.ID, "Coxinha", 18.50, true)
	user := seedUser(t, db, "Ana Paula")

	svc := services.NewOrderIntakeService(db, testLocation(t))
	order, err := svc.Create(services.CreateOrderInput{
		SupplierID:   supplier.ID,
		CustomerName: "Someone Else",
		DeliveryType: models.DeliveryRetirada,
		Items:        []services.OrderItemInput{{DishID: dish.ID, Quantity: 1}},
		CustomerID:   &user.ID,
	})
	require.NoError(t, err)

	// The authenticated profile wins over whatever the body claimed.
	assert.Equal(t, "Ana Paula", order.CustomerName)
	assert.Equal(t, user.Phone, order.CustomerContact)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, user.ID, *order.CustomerID)
}
