package repositories

import (
	"errors"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/metrics"
	"gorm.io/gorm"
)

// UserRepository handles database operations for customer accounts.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks up a customer by email address.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperr.ErrNotFound
	}
	return user, err
}

// FindByID looks up a customer by primary key.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return user, apperr.ErrNotFound
	}
	return user, err
}

// Create persists a new customer record.
func (r *UserRepository) Create(user *models.User) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return r.db.Create(user).Error
}
