package services

import (
	"fmt"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/repositories"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/event"
	"github.com/quitute/quitute/pkg/metrics"
	"gorm.io/gorm"
)

// transitions is the adjacency table of the order state machine. A status
// may only move to a member of its set; no state is its own target.
var transitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusNovo:                {models.StatusEmPreparo, models.StatusAguardandoCliente, models.StatusRecusado},
	models.StatusEmPreparo:           {models.StatusFinalizado, models.StatusCanceladoFornecedor, models.StatusAguardandoCliente, models.StatusNovo},
	models.StatusAguardandoCliente:   {models.StatusFinalizado, models.StatusCanceladoFornecedor, models.StatusEmPreparo},
	models.StatusFinalizado:          {models.StatusAguardandoCliente, models.StatusEmPreparo, models.StatusNovo},
	models.StatusRecusado:            {models.StatusNovo},
	models.StatusCanceladoFornecedor: {models.StatusNovo},
}

func init() {
	// The table is fixed at compile time; verify its shape once at startup
	// so a bad edit fails loudly instead of silently stranding orders.
	for _, status := range models.AllStatuses() {
		targets, ok := transitions[status]
		if !ok || len(targets) == 0 {
			panic(fmt.Sprintf("order status %s has no outgoing transitions", status))
		}
		for _, to := range targets {
			if to == status {
				panic(fmt.Sprintf("order status %s transitions to itself", status))
			}
		}
	}
}

// AllowedTransitions returns a copy of the targets reachable from a status.
func AllowedTransitions(from models.OrderStatus) []models.OrderStatus {
	targets := transitions[from]
	out := make([]models.OrderStatus, len(targets))
	copy(out, targets)
	return out
}

// CanTransition reports whether from → to is in the adjacency table.
func CanTransition(from, to models.OrderStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// OrderStatusService applies guarded status transitions. It is the only
// code path that mutates Order.Status.
type OrderStatusService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
}

func NewOrderStatusService(db *gorm.DB) *OrderStatusService {
	return &OrderStatusService{db: db, orders: repositories.NewOrderRepository(db)}
}

// Transition moves an order to the requested status on behalf of the acting
// supplier. The write is a blind overwrite: concurrent transitions on the
// same order resolve last-write-wins at the storage layer.
func (s *OrderStatusService) Transition(orderID uint, to models.OrderStatus, actingSupplierID uint) (models.Order, error) {
	order, err := s.orders.FindByID(orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("load order: %w", err)
	}

	if order.SupplierID != actingSupplierID {
		return models.Order{}, fmt.Errorf("order %d: %w", orderID, apperr.ErrOwnershipMismatch)
	}

	if !CanTransition(order.Status, to) {
		metrics.StatusTransitions.WithLabelValues("rejected").Inc()
		return models.Order{}, &apperr.InvalidTransitionError{
			From: string(order.Status),
			To:   string(to),
		}
	}

	if err := s.db.Model(&order).Update("status", to).Error; err != nil {
		return models.Order{}, fmt.Errorf("persist status: %w", err)
	}
	order.Status = to
	order.CounterpartName = order.CustomerName

	metrics.StatusTransitions.WithLabelValues("applied").Inc()
	event.Fire(event.OrderStatusChanged, order)
	return order, nil
}
