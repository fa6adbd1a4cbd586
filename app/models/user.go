package models

import "gorm.io/gorm"

// User is a customer account. Profile management lives in another system;
// this table carries only what order intake and queries need.
type User struct {
	gorm.Model
	Name     string `gorm:"size:255;not null" json:"name"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"` // hashed, never serialised
	Phone    string `gorm:"size:32" json:"phone"`
}
