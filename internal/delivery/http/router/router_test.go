package router

import (
	"net/http"
	"testing"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func registeredRoutes(t *testing.T) map[string]struct{} {
	t.Helper()

	e := echo.New()
	r := NewRouter(RouterParams{
		BuyerHandler:   &handler.BuyerHandler{},
		SellerHandler:  &handler.SellerHandler{},
		AuthMiddleware: &middleware.AuthMiddleware{},
	})
	r.RegisterRoutes(e)

	routes := make(map[string]struct{})
	for _, route := range e.Routes() {
		routes[route.Method+" "+route.Path] = struct{}{}
	}

	return routes
}

// Product mutations live directly under the seller prefix, not a nested
// products segment.
func TestRegisterRoutes_SellerProductMutations(t *testing.T) {
	routes := registeredRoutes(t)

	assert.Contains(t, routes, http.MethodPut+" /api/v1/sellers/:id")
	assert.Contains(t, routes, http.MethodDelete+" /api/v1/sellers/:id")
	assert.NotContains(t, routes, http.MethodPut+" /api/v1/sellers/products/:id")
	assert.NotContains(t, routes, http.MethodDelete+" /api/v1/sellers/products/:id")
}

func TestRegisterRoutes_AccountEndpoints(t *testing.T) {
	routes := registeredRoutes(t)

	assert.Contains(t, routes, http.MethodPost+" /api/v1/buyers/signup")
	assert.Contains(t, routes, http.MethodPost+" /api/v1/sellers/signin")
	assert.Contains(t, routes, http.MethodGet+" /api/v1/buyers/logout")
	assert.Contains(t, routes, http.MethodGet+" /health")
}
