package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the order lifecycle state. The allowed transitions live in
// the status service's adjacency table; nothing else mutates Status.
type OrderStatus string

const (
	StatusNovo                OrderStatus = "NOVO"
	StatusEmPreparo           OrderStatus = "EM_PREPARO"
	StatusAguardandoCliente   OrderStatus = "AGUARDANDO_CLIENTE"
	StatusFinalizado          OrderStatus = "FINALIZADO"
	StatusRecusado            OrderStatus = "RECUSADO"
	StatusCanceladoFornecedor OrderStatus = "CANCELADO_FORNECEDOR"
)

// AllStatuses lists every lifecycle state, for validation and tests.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		StatusNovo,
		StatusEmPreparo,
		StatusAguardandoCliente,
		StatusFinalizado,
		StatusRecusado,
		StatusCanceladoFornecedor,
	}
}

// DeliveryType is how the customer receives the order.
type DeliveryType string

const (
	DeliveryEntrega  DeliveryType = "ENTREGA"  // courier delivery, address required
	DeliveryRetirada DeliveryType = "RETIRADA" // customer pickup
)

// Order is a customer's request for one or more dishes from a single
// supplier. CustomerID is nil for guest orders, which always carry a
// non-empty CustomerName.
type Order struct {
	gorm.Model
	CustomerID      *uint           `gorm:"index" json:"customer_id,omitempty"`
	SupplierID      uint            `gorm:"not null;index" json:"supplier_id"`
	CustomerName    string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerContact string          `gorm:"size:64" json:"customer_contact"`
	DeliveryType    DeliveryType    `gorm:"size:16;not null" json:"delivery_type"`
	DeliveryAddress string          `gorm:"size:512" json:"delivery_address,omitempty"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	Status          OrderStatus     `gorm:"size:32;not null;index" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PlacedAt        time.Time       `gorm:"not null;index" json:"placed_at"`

	Items    []LineItem `json:"items"`
	Supplier Supplier   `json:"-"`

	// CounterpartName is the other party's display name, filled by the
	// query service: supplier name for customer views, customer name for
	// supplier views. Never persisted.
	CounterpartName string `gorm:"-" json:"counterpart_name,omitempty"`
}

// LineItem is one dish+quantity entry within an order. UnitPrice is
// snapshotted at creation and never follows the dish's live price.
// Line items are immutable after the creating transaction commits.
type LineItem struct {
	gorm.Model
	OrderID   uint            `gorm:"not null;index" json:"order_id"`
	DishID    uint            `gorm:"not null;index" json:"dish_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`

	Dish Dish `json:"dish"`
}
