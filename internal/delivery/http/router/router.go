// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tiffin/internal/delivery/http/middleware"
	"tiffin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler    *handler.AddressHandler
	RestaurantHandler *handler.RestaurantHandler
	ItemHandler       *handler.ItemHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler    *handler.AddressHandler
	restaurantHandler *handler.RestaurantHandler
	itemHandler       *handler.ItemHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler:    params.AddressHandler,
		restaurantHandler: params.RestaurantHandler,
		itemHandler:       params.ItemHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// States are public reference data
	e.GET("/states", r.addressHandler.ListStates)

	// Address routes require an authenticated customer
	addressGroup := e.Group("/address")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.POST("", r.addressHandler.SaveAddress)
		addressGroup.GET("/customer", r.addressHandler.ListAddresses)
		addressGroup.DELETE("/:address_id", r.addressHandler.DeleteAddress)
	}

	// Catalog routes are public
	restaurantGroup := e.Group("/restaurant")
	{
		restaurantGroup.GET("", r.restaurantHandler.Restaurants)
		restaurantGroup.GET("/name/:restaurant_name", r.restaurantHandler.RestaurantsByName)
		restaurantGroup.GET("/:restaurant_id", r.restaurantHandler.RestaurantByID)
	}

	itemGroup := e.Group("/item")
	{
		itemGroup.GET("/restaurant/:restaurant_id", r.itemHandler.PopularItems)
		itemGroup.GET("/restaurant/:restaurant_id/category/:category_id", r.itemHandler.ItemsByCategory)
	}
}
