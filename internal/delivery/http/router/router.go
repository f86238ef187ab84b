// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"heritage/internal/delivery/http/middleware"
	"heritage/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler        *handler.MenuHandler
	ReviewHandler      *handler.ReviewHandler
	ReservationHandler *handler.ReservationHandler
	ProfileHandler     *handler.ProfileHandler
	AdminHandler       *handler.AdminHandler
	SessionHandler     *handler.SessionHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.RequestIDMiddleware.Process)
	e.Use(r.params.LoggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session renewal
	e.POST("/auth/refresh", r.params.SessionHandler.Refresh)

	// Public menu and review reads. OptionalAuthenticate lets logged-in
	// visitors be recognized without blocking anonymous traffic.
	menuGroup := e.Group("/menu", r.params.AuthMiddleware.OptionalAuthenticate)
	{
		menuGroup.GET("/categories", r.params.MenuHandler.Categories)
		menuGroup.GET("/categories/:id/items", r.params.MenuHandler.CategoryItems)
		menuGroup.GET("/items", r.params.MenuHandler.AllItems)
		menuGroup.GET("/specials", r.params.MenuHandler.Specials)
	}

	e.GET("/reviews", r.params.ReviewHandler.List, r.params.AuthMiddleware.OptionalAuthenticate)

	// Reservations are open to anonymous guests.
	reservationGroup := e.Group("/reservations", r.params.AuthMiddleware.OptionalAuthenticate)
	{
		reservationGroup.POST("", r.params.ReservationHandler.Create)
		reservationGroup.GET("/slots", r.params.ReservationHandler.TimeSlots)
		reservationGroup.GET("/:id/qr", r.params.ReservationHandler.ConfirmationQR)
	}

	// Profile routes require authentication.
	profileGroup := e.Group("/profile", r.params.AuthMiddleware.Authenticate)
	{
		profileGroup.GET("", r.params.ProfileHandler.GetProfile)
		profileGroup.PUT("", r.params.ProfileHandler.SaveProfile)
	}

	// Admin routes. The access endpoint only needs an optional identity:
	// the resolved state is its payload even for anonymous callers. The
	// mutation routes are gated on a fully authorized resolution.
	adminGroup := e.Group("/admin")
	{
		adminGroup.GET("/access", r.params.AdminHandler.Access, r.params.AuthMiddleware.OptionalAuthenticate)

		manageGroup := adminGroup.Group("", r.params.AuthMiddleware.Authenticate, r.params.AuthMiddleware.RequireAdmin)
		{
			manageGroup.POST("/categories", r.params.AdminHandler.AddCategory)
			manageGroup.POST("/items", r.params.AdminHandler.AddItem)
			manageGroup.PUT("/items/:id", r.params.AdminHandler.UpdateItem)
			manageGroup.DELETE("/items/:id", r.params.AdminHandler.DeleteItem)
		}
	}
}
