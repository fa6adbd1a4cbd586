package services

import (
	"fmt"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/repositories"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/event"
	"github.com/quitute/quitute/pkg/metrics"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItemInput is one requested dish+quantity entry.
type OrderItemInput struct {
	DishID   uint `json:"dish_id" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderInput is the order creation request. CustomerID comes from the
// caller's session, never from the body.
type CreateOrderInput struct {
	SupplierID      uint                `json:"supplier_id" validate:"required"`
	CustomerName    string              `json:"customer_name"`
	CustomerContact string              `json:"customer_contact"`
	DeliveryType    models.DeliveryType `json:"delivery_type" validate:"required,in=ENTREGA,RETIRADA"`
	DeliveryAddress string              `json:"delivery_address"`
	Notes           string              `json:"notes"`
	Items           []OrderItemInput    `json:"items" validate:"required"`

	CustomerID *uint `json:"-"`
}

// OrderIntakeService validates a creation request, snapshots live dish
// prices, and commits the order atomically. Any single failure aborts the
// whole transaction; no partial order is ever visible.
type OrderIntakeService struct {
	db        *gorm.DB
	suppliers *repositories.SupplierRepository
	users     *repositories.UserRepository
	loc       *time.Location
}

func NewOrderIntakeService(db *gorm.DB, loc *time.Location) *OrderIntakeService {
	return &OrderIntakeService{
		db:        db,
		suppliers: repositories.NewSupplierRepository(db),
		users:     repositories.NewUserRepository(db),
		loc:       loc,
	}
}

// Create runs the full intake pipeline and returns the committed order
// enriched with items, dish fields, and the supplier's name as counterpart.
func (s *OrderIntakeService) Create(in CreateOrderInput) (models.Order, error) {
	if len(in.Items) == 0 {
		return models.Order{}, apperr.Validation("order must have at least one item")
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return models.Order{}, apperr.Validation("item quantity must be at least 1")
		}
	}

	// Address present iff the order is a delivery.
	switch in.DeliveryType {
	case models.DeliveryEntrega:
		if in.DeliveryAddress == "" {
			return models.Order{}, apperr.Validation("delivery address is required for ENTREGA orders")
		}
	case models.DeliveryRetirada:
		if in.DeliveryAddress != "" {
			return models.Order{}, apperr.Validation("delivery address must be empty for RETIRADA orders")
		}
	default:
		return models.Order{}, apperr.Validation("delivery type must be ENTREGA or RETIRADA")
	}

	supplier, err := s.suppliers.FindByID(in.SupplierID)
	if err != nil {
		return models.Order{}, fmt.Errorf("load supplier: %w", err)
	}

	var order models.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Every dish is checked inside the transaction so the price
		// snapshot and the availability check see the same row state.
		dishes := make([]models.Dish, 0, len(in.Items))
		for _, item := range in.Items {
			var dish models.Dish
			if err := tx.First(&dish, item.DishID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fmt.Errorf("dish %d: %w", item.DishID, apperr.ErrNotFound)
				}
				return err
			}
			if dish.SupplierID != in.SupplierID {
				return fmt.Errorf("dish %d belongs to another supplier: %w", dish.ID, apperr.ErrOwnershipMismatch)
			}
			if !dish.Available {
				return fmt.Errorf("dish %q: %w", dish.Name, apperr.ErrUnavailable)
			}
			dishes = append(dishes, dish)
		}

		name, contact, err := s.resolveCustomer(in)
		if err != nil {
			return err
		}

		// Placement timestamp is captured once, at transaction start,
		// in the business timezone.
		order = models.Order{
			CustomerID:      in.CustomerID,
			SupplierID:      in.SupplierID,
			CustomerName:    name,
			CustomerContact: contact,
			DeliveryType:    in.DeliveryType,
			DeliveryAddress: in.DeliveryAddress,
			Notes:           in.Notes,
			Status:          models.StatusNovo,
			TotalAmount:     decimal.Zero,
			PlacedAt:        time.Now().In(s.loc),
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order header: %w", err)
		}

		total := decimal.Zero
		for i, item := range in.Items {
			dish := dishes[i]
			subtotal := dish.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))

			line := models.LineItem{
				OrderID:   order.ID,
				DishID:    dish.ID,
				Quantity:  item.Quantity,
				UnitPrice: dish.Price,
				Subtotal:  subtotal,
			}
			if err := tx.Create(&line).Error; err != nil {
				return fmt.Errorf("create line item: %w", err)
			}
			total = total.Add(subtotal)
		}

		if err := tx.Model(&order).Update("total_amount", total).Error; err != nil {
			return fmt.Errorf("update order total: %w", err)
		}
		order.TotalAmount = total
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCreated.Inc()

	created, err := repositories.NewOrderRepository(s.db).FindByID(order.ID)
	if err != nil {
		return models.Order{}, fmt.Errorf("reload created order: %w", err)
	}
	created.CounterpartName = supplier.Name

	event.Fire(event.OrderCreated, created)
	return created, nil
}

// resolveCustomer produces the display name and contact: the authenticated
// profile wins; guests must provide a name in the request.
func (s *OrderIntakeService) resolveCustomer(in CreateOrderInput) (name, contact string, err error) {
	if in.CustomerID != nil {
		user, err := s.users.FindByID(*in.CustomerID)
		if err != nil {
			return "", "", fmt.Errorf("load customer: %w", err)
		}
		contact = in.CustomerContact
		if contact == "" {
			contact = user.Phone
		}
		return user.Name, contact, nil
	}

	if in.CustomerName == "" {
		return "", "", apperr.Validation("customer name is required for guest orders")
	}
	return in.CustomerName, in.CustomerContact, nil
}
