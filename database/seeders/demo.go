package seeders

import (
	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/auth"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	Register("demo_supplier", SeedDemoSupplier)
	Register("demo_customer", SeedDemoCustomer)
}

// SeedDemoSupplier inserts a demo supplier with a small dish catalog.
// Running it twice is a no-op.
func SeedDemoSupplier(db *gorm.DB) error {
	var count int64
	db.Model(&models.Supplier{}).Where("email = ?", "maria@quitute.dev").Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	supplier := models.Supplier{
		Name:     "Quitutes da Maria",
		Email:    "maria@quitute.dev",
		Password: hashed,
		Phone:    "+5511999990001",
	}
	if err := db.Create(&supplier).Error; err != nil {
		return err
	}

	dishes := []models.Dish{
		{SupplierID: supplier.ID, Name: "Coxinha de Frango", Description: "Porção com 6 unidades", Price: decimal.NewFromFloat(18.50), Available: true},
		{SupplierID: supplier.ID, Name: "Bolo de Cenoura", Description: "Fatia com cobertura de chocolate", Price: decimal.NewFromFloat(12.00), Available: true},
		{SupplierID: supplier.ID, Name: "Torta de Limão", Description: "Fatia", Price: decimal.NewFromFloat(14.00), Available: false},
	}
	return db.Create(&dishes).Error
}

// SeedDemoCustomer inserts a demo customer account.
func SeedDemoCustomer(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("email = ?", "joao@quitute.dev").Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := auth.HashPassword("password")
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "João Cliente",
		Email:    "joao@quitute.dev",
		Password: hashed,
		Phone:    "+5511999990002",
	}
	return db.Create(&user).Error
}
