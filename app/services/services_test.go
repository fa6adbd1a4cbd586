package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database migrated with every
// model. Each test gets its own named database so parallel tests never
// share state through the connection pool.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Supplier{},
		&models.User{},
		&models.Dish{},
		&models.Order{},
		&models.LineItem{},
	))
	return db
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func seedSupplier(t *testing.T, db *gorm.DB, name string) models.Supplier {
	t.Helper()
	supplier := models.Supplier{
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Password: "irrelevant",
		Phone:    "+55 (11) 99999-0001",
	}
	require.NoError(t, db.Create(&supplier).Error)
	return supplier
}

func seedDish(t *testing.T, db *gorm.DB, supplierID uint, name string, price float64, available bool) models.Dish {
	t.Helper()
	dish := models.Dish{
		SupplierID: supplierID,
		Name:       name,
		Price:      decimal.NewFromFloat(price),
		Available:  available,
	}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		Name:     name,
		Email:    strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		Password: "irrelevant",
		Phone:    "+5511988887777",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
