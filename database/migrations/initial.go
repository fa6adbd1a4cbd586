package migrations

import (
	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/migration"
	"gorm.io/gorm"
)

func init() {
	migration.Register("20260101000000_create_accounts_tables", &CreateAccountsTables{})
	migration.Register("20260101000001_create_dishes_table", &CreateDishesTable{})
	migration.Register("20260101000002_create_orders_tables", &CreateOrdersTables{})
}

// -------- 0001: suppliers and customers --------

type CreateAccountsTables struct{}

func (m *CreateAccountsTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Supplier{}, &models.User{})
}

func (m *CreateAccountsTables) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("users"); err != nil {
		return err
	}
	return db.Migrator().DropTable("suppliers")
}

// -------- 0002: dish catalog --------

type CreateDishesTable struct{}

func (m *CreateDishesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Dish{})
}

func (m *CreateDishesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("dishes")
}

// -------- 0003: orders and line items --------

type CreateOrdersTables struct{}

func (m *CreateOrdersTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{}, &models.LineItem{})
}

func (m *CreateOrdersTables) Down(db *gorm.DB) error {
	if err := db.Migrator().DropTable("line_items"); err != nil {
		return err
	}
	return db.Migrator().DropTable("orders")
}
