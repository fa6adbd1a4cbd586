package routes

import (
	"net/http"

	"github.com/quitute/quitute/app/controllers"
	"github.com/quitute/quitute/pkg/auth"
	"github.com/quitute/quitute/pkg/metrics"
	"github.com/quitute/quitute/pkg/middleware"
	"github.com/quitute/quitute/pkg/router"
	"github.com/quitute/quitute/pkg/ws"
	"gorm.io/gorm"
)

func RegisterAPI(r *router.Router, db *gorm.DB, hub *ws.Hub) {
	authController := controllers.NewAuthController(db)
	catalogController := controllers.NewCatalogController(db)
	orderController := controllers.NewOrderController(db)

	api := r.Group("/api")

	api.Post("/auth/supplier/login", "auth.supplier.login", authController.SupplierLogin)
	api.Post("/auth/customer/login", "auth.customer.login", authController.CustomerLogin)

	api.Get("/suppliers/{supplier_id}/dishes", "catalog.dishes", catalogController.SupplierDishes)
	api.Post("/orders", "orders.create", orderController.Create, middleware.OptionalAuth)
	api.Patch("/orders/{order_id}/status", "orders.status", orderController.UpdateStatus, middleware.Auth(auth.RoleSupplier))

	supplier := api.Group("/supplier", middleware.Auth(auth.RoleSupplier))
	supplier.Get("/orders", "supplier.orders", orderController.SupplierOrders)

	customer := api.Group("/customer", middleware.Auth(auth.RoleCustomer))
	customer.Get("/orders", "customer.orders", orderController.CustomerOrders)

	r.Get("/ws/orders", "ws.orders", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, hub)
	}, middleware.Auth(auth.RoleSupplier))

	r.HandleFunc("/metrics", metrics.Handler())
}
