package services_test

import (
	"testing"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/services"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, supplierID uint, status models.OrderStatus) models.Order {
	t.Helper()
	order := models.Order{
		SupplierID:   supplierID,
		CustomerName: "Ana",
		DeliveryType: models.DeliveryRetirada,
		Status:       status,
		TotalAmount:  decimal.NewFromFloat(10.00),
		PlacedAt:     time.Now(),
	}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func TestEveryStatusHasAnExit(t *testing.T) {
	for _, status := range models.AllStatuses() {
		targets := services.AllowedTransitions(status)
		assert.NotEmpty(t, targets, "status %s is a dead end", status)
		for _, to := range targets {
			assert.NotEqual(t, status, to, "status %s loops to itself", status)
		}
	}
}

func TestCanTransitionTable(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.StatusNovo, models.StatusEmPreparo, true},
		{models.StatusNovo, models.StatusAguardandoCliente, true},
		{models.StatusNovo, models.StatusRecusado, true},
		{models.StatusNovo, models.StatusFinalizado, false},
		{models.StatusNovo, models.StatusCanceladoFornecedor, false},

		{models.StatusEmPreparo, models.StatusFinalizado, true},
		{models.StatusEmPreparo, models.StatusCanceladoFornecedor, true},
		{models.StatusEmPreparo, models.StatusAguardandoCliente, true},
		{models.StatusEmPreparo, models.StatusNovo, true},
		{models.StatusEmPreparo, models.StatusRecusado, false},

		{models.StatusAguardandoCliente, models.StatusFinalizado, true},
		{models.StatusAguardandoCliente, models.StatusCanceladoFornecedor, true},
		{models.StatusAguardandoCliente, models.StatusEmPreparo, true},
		{models.StatusAguardandoCliente, models.StatusRecusado, false},

		{models.StatusFinalizado, models.StatusAguardandoCliente, true},
		{models.StatusFinalizado, models.StatusEmPreparo, true},
		{models.StatusFinalizado, models.StatusNovo, true},
		{models.StatusFinalizado, models.StatusRecusado, false},

		{models.StatusRecusado, models.StatusNovo, true},
		{models.StatusRecusado, models.StatusEmPreparo, false},
		{models.StatusRecusado, models.StatusFinalizado, false},

		{models.StatusCanceladoFornecedor, models.StatusNovo, true},
		{models.StatusCanceladoFornecedor, models.StatusFinalizado, false},
	}

	for _, tc := range cases {
		got := services.CanTransition(tc.from, tc.to)
		assert.Equal(t, tc.want, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionPersists(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	order := seedOrder(t, db, supplier.ID, models.StatusNovo)

	svc := services.NewOrderStatusService(db)
	updated, err := svc.Transition(order.ID, models.StatusEmPreparo, supplier.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusEmPreparo, updated.Status)
	assert.Equal(t, "Ana", updated.CounterpartName)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusEmPreparo, reloaded.Status)
}

func TestTransitionRejectedKeepsStatus(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	order := seedOrder(t, db, supplier.ID, models.StatusNovo)

	svc := services.NewOrderStatusService(db)
	_, err := svc.Transition(order.ID, models.StatusFinalizado, supplier.ID)
	require.Error(t, err)

	var terr *apperr.InvalidTransitionError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, string(models.StatusNovo), terr.From)
	assert.Equal(t, string(models.StatusFinalizado), terr.To)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusNovo, reloaded.Status)
}

func TestTransitionOwnershipGuard(t *testing.T) {
	db := newTestDB(t)
	owner := seedSupplier(t, db, "Quitutes da Maria")
	intruder := seedSupplier(t, db, "Doces do Pedro")
	order := seedOrder(t, db, owner.ID, models.StatusNovo)

	svc := services.NewOrderStatusService(db)
	_, err := svc.Transition(order.ID, models.StatusEmPreparo, intruder.ID)
	assert.ErrorIs(t, err, apperr.ErrOwnershipMismatch)

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusNovo, reloaded.Status)
}

func TestTransitionUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")

	svc := services.NewOrderStatusService(db)
	_, err := svc.Transition(4242, models.StatusEmPreparo, supplier.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestReopenCycle(t *testing.T) {
	db := newTestDB(t)
	supplier := seedSupplier(t, db, "Quitutes da Maria")
	order := seedOrder(t, db, supplier.ID, models.StatusNovo)

	svc := services.NewOrderStatusService(db)
	path := []models.OrderStatus{
		models.StatusEmPreparo,
		models.StatusFinalizado,
		models.StatusNovo,
		models.StatusRecusado,
		models.StatusNovo,
	}
	for _, to := range path {
		_, err := svc.Transition(order.ID, to, supplier.ID)
		require.NoError(t, err, "transition to %s", to)
	}

	var reloaded models.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, models.StatusNovo, reloaded.Status)
}
