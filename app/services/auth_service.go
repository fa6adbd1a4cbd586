package services

import (
	"github.com/quitute/quitute/app/repositories"
	"github.com/quitute/quitute/pkg/apperr"
	"github.com/quitute/quitute/pkg/auth"
	"gorm.io/gorm"
)

// AuthService issues JWTs for supplier and customer accounts. Credential
// storage itself is minimal; full profile management is another system's job.
type AuthService struct {
	suppliers *repositories.SupplierRepository
	users     *repositories.UserRepository
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		suppliers: repositories.NewSupplierRepository(db),
		users:     repositories.NewUserRepository(db),
	}
}

// LoginSupplier returns a signed token for a supplier account.
func (s *AuthService) LoginSupplier(email, password string) (string, error) {
	supplier, err := s.suppliers.FindByEmail(email)
	if err != nil {
		return "", apperr.ErrNotFound
	}
	if !auth.CheckPassword(supplier.Password, password) {
		return "", apperr.Validation("invalid credentials")
	}
	return auth.GenerateToken(supplier.ID, auth.RoleSupplier)
}

// LoginCustomer returns a signed token for a customer account.
func (s *AuthService) LoginCustomer(email, password string) (string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", apperr.ErrNotFound
	}
	if !auth.CheckPassword(user.Password, password) {
		return "", apperr.Validation("invalid credentials")
	}
	return auth.GenerateToken(user.ID, auth.RoleCustomer)
}
