package controllers

import (
	"net/http"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/services"
	"github.com/quitute/quitute/config"
	"github.com/quitute/quitute/pkg/auth"
	"github.com/quitute/quitute/pkg/bind"
	"github.com/quitute/quitute/pkg/middleware"
	"github.com/quitute/quitute/pkg/response"
	"gorm.io/gorm"
)

type OrderController struct {
	intake  *services.OrderIntakeService
	status  *services.OrderStatusService
	queries *services.OrderQueryService
}

func NewOrderController(db *gorm.DB) *OrderController {
	loc := config.BusinessTimezone()
	return &OrderController{
		intake:  services.NewOrderIntakeService(db, loc),
		status:  services.NewOrderStatusService(db),
		queries: services.NewOrderQueryService(db, loc),
	}
}

// Create handles POST /api/orders. Guests and authenticated customers both
// create orders; an authenticated customer's identity overrides the body.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput

	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	if claims := middleware.ClaimsFromCtx(r.Context()); claims != nil && claims.Role == auth.RoleCustomer {
		id := claims.AccountID
		in.CustomerID = &id
	}

	order, err := c.intake.Create(in)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Created(w, order)
}

type updateStatusInput struct {
	NewStatus models.OrderStatus `json:"new_status" validate:"required"`
}

// UpdateStatus handles PATCH /api/orders/{order_id}/status. The acting
// supplier comes from the caller's session claims.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID, ok := uintParam(r, "order_id")
	if !ok {
		response.NotFound(w)
		return
	}

	var in updateStatusInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	claims := middleware.ClaimsFromCtx(r.Context())
	order, err := c.status.Transition(orderID, in.NewStatus, claims.AccountID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"order":        order,
		"contact_link": services.WhatsAppLink(order),
	})
}

// SupplierOrders handles GET /api/supplier/orders?date=YYYY-MM-DD.
func (c *OrderController) SupplierOrders(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	var day *time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, config.BusinessTimezone())
		if err != nil {
			response.Error(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = &parsed
	}

	orders, err := c.queries.ForSupplier(claims.AccountID, day)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, orders)
}

// CustomerOrders handles GET /api/customer/orders.
func (c *OrderController) CustomerOrders(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFromCtx(r.Context())

	orders, err := c.queries.ForCustomer(claims.AccountID)
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, orders)
}
