package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quitute/quitute/pkg/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupPrefixes(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	api.Get("/orders", "orders.list", ok)

	supplier := api.Group("/supplier")
	supplier.Patch("/orders/{order_id}/status", "orders.status", ok)

	path, found := r.Path("orders.list")
	require.True(t, found)
	assert.Equal(t, "/api/orders", path)

	path, found = r.Path("orders.status")
	require.True(t, found)
	assert.Equal(t, "/api/supplier/orders/{order_id}/status", path)
}

func TestURLSubstitutesParams(t *testing.T) {
	r := router.New()
	r.Patch("/orders/{order_id}/status", "orders.status", ok)

	url, err := r.URL("orders.status", map[string]string{"order_id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/orders/42/status", url)

	_, err = r.URL("orders.status", nil)
	assert.Error(t, err, "missing params must not produce a half-built URL")

	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestRoutesListsEverything(t *testing.T) {
	r := router.New()
	r.Get("/health", "", ok)
	api := r.Group("/api")
	api.Post("/orders", "orders.create", ok)

	infos := r.Routes()
	require.Len(t, infos, 2)

	byPath := map[string]router.RouteInfo{}
	for _, ri := range infos {
		byPath[ri.Path] = ri
	}
	assert.Equal(t, http.MethodGet, byPath["/health"].Method)
	assert.Equal(t, "orders.create", byPath["/api/orders"].Name)
}

func TestMiddlewareOrder(t *testing.T) {
	var trace []string
	mw := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	api := r.Group("/api", mw("group"))
	api.Get("/ping", "", ok, mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "route"}, trace)
}
