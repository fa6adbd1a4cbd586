package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/quitute/quitute/app/models"
	"github.com/quitute/quitute/app/repositories"
	"github.com/quitute/quitute/pkg/cache"
	"github.com/quitute/quitute/pkg/response"
	"gorm.io/gorm"
)

// catalogTTL bounds how stale a cached catalog may get. This backend has no
// dish mutation surface, so expiry is the only invalidation needed.
const catalogTTL = 30 * time.Second

// CatalogController serves the public dish catalog used by ordering clients.
type CatalogController struct {
	dishes    *repositories.DishRepository
	suppliers *repositories.SupplierRepository
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{
		dishes:    repositories.NewDishRepository(db),
		suppliers: repositories.NewSupplierRepository(db),
	}
}

type catalogPayload struct {
	Supplier struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	} `json:"supplier"`
	Dishes []models.Dish `json:"dishes"`
}

// SupplierDishes handles GET /api/suppliers/{supplier_id}/dishes. Only dishes
// currently marked available are listed to ordering clients. Responses are
// cached briefly in Redis; the read is hot while customers browse.
func (c *CatalogController) SupplierDishes(w http.ResponseWriter, r *http.Request) {
	supplierID, ok := uintParam(r, "supplier_id")
	if !ok {
		response.NotFound(w)
		return
	}

	key := fmt.Sprintf("quitute:catalog:%d", supplierID)
	var payload catalogPayload
	if cache.Get(key, &payload) {
		response.Success(w, payload)
		return
	}

	supplier, err := c.suppliers.FindByID(supplierID)
	if err != nil {
		fail(w, r, err)
		return
	}

	dishes, err := c.dishes.BySupplier(supplierID)
	if err != nil {
		fail(w, r, err)
		return
	}

	payload.Supplier.ID = supplier.ID
	payload.Supplier.Name = supplier.Name
	payload.Dishes = make([]models.Dish, 0, len(dishes))
	for _, d := range dishes {
		if d.Available {
			payload.Dishes = append(payload.Dishes, d)
		}
	}

	cache.Set(key, payload, catalogTTL) //nolint:errcheck
	response.Success(w, payload)
}
