package controllers

import (
	"net/http"

	"github.com/quitute/quitute/app/services"
	"github.com/quitute/quitute/pkg/bind"
	"github.com/quitute/quitute/pkg/response"
	"gorm.io/gorm"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{auth: services.NewAuthService(db)}
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SupplierLogin handles POST /api/auth/supplier/login.
func (c *AuthController) SupplierLogin(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, c.auth.LoginSupplier)
}

// CustomerLogin handles POST /api/auth/customer/login.
func (c *AuthController) CustomerLogin(w http.ResponseWriter, r *http.Request) {
	c.login(w, r, c.auth.LoginCustomer)
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request, fn func(email, password string) (string, error)) {
	var in loginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	token, err := fn(in.Email, in.Password)
	if err != nil {
		response.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	response.Success(w, map[string]string{"token": token})
}
