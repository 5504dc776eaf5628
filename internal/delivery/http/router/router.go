// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BuyerHandler   *handler.BuyerHandler
	SellerHandler  *handler.SellerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	buyerHandler   *handler.BuyerHandler
	sellerHandler  *handler.SellerHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		buyerHandler:   params.BuyerHandler,
		sellerHandler:  params.SellerHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Buyer routes. Signup, signin and logout never require a session.
	buyerGroup := e.Group("/api/v1/buyers")
	{
		buyerGroup.POST("/signup", r.buyerHandler.Signup)
		buyerGroup.POST("/signin", r.buyerHandler.Signin)
		buyerGroup.GET("/logout", r.buyerHandler.Logout)
	}

	// Catalog browsing is open to any signed-in account, buyer or seller.
	buyerAuthed := buyerGroup.Group("", r.authMiddleware.Authenticate)
	{
		buyerAuthed.GET("/me", r.buyerHandler.Me)
		buyerAuthed.GET("/products", r.buyerHandler.ListProducts)
		buyerAuthed.GET("/products/searchByCategory", r.buyerHandler.SearchByCategory)
		buyerAuthed.GET("/products/searchByName", r.buyerHandler.SearchByName)
		buyerAuthed.GET("/products/getCategories", r.buyerHandler.GetCategories)
	}

	// Seller routes.
	sellerGroup := e.Group("/api/v1/sellers")
	{
		sellerGroup.POST("/signup", r.sellerHandler.Signup)
		sellerGroup.POST("/signin", r.sellerHandler.Signin)
		sellerGroup.GET("/logout", r.sellerHandler.Logout)
		sellerGroup.GET("/me", r.sellerHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog mutations require a seller session.
	sellerAuthed := sellerGroup.Group("", r.authMiddleware.Authenticate, r.authMiddleware.RequireSeller)
	{
		sellerAuthed.POST("/addProduct", r.sellerHandler.AddProduct)
		sellerAuthed.GET("/getMyProducts", r.sellerHandler.GetMyProducts)
		sellerAuthed.PUT("/:id", r.sellerHandler.UpdateProduct)
		sellerAuthed.DELETE("/:id", r.sellerHandler.DeleteProduct)
	}
}
