package models

import "gorm.io/gorm"

// Supplier is a vendor account listing dishes and fulfilling orders.
type Supplier struct {
	gorm.Model
	Name     string `gorm:"size:255;not null;index" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Phone    string `gorm:"size:32" json:"phone"`       // WhatsApp number for contact links
}
