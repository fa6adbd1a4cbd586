package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Dish is a sellable item. Price is the live price and may diverge from any
// already-snapshotted order price.
type Dish struct {
	gorm.Model
	SupplierID  uint            `gorm:"not null;index" json:"supplier_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	// No column default here: with one, gorm drops the zero value false from
	// the insert and an unavailable dish comes back available. Callers set
	// Available explicitly.
	Available   bool            `gorm:"not null" json:"available"`
}
