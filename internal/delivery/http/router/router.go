// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medify/config"
	"medify/internal/delivery/http/middleware"
	"medify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	WebsiteSetupHandler *handler.WebsiteSetupHandler
	BusinessInfoHandler *handler.BusinessInfoHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	websiteSetupHandler *handler.WebsiteSetupHandler
	businessInfoHandler *handler.BusinessInfoHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		websiteSetupHandler: params.WebsiteSetupHandler,
		businessInfoHandler: params.BusinessInfoHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Trailing slashes are part of the public path contract; existing clients
// send them.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Discovery endpoint
	e.GET("/api/", handler.APIRoot)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/signup/", r.authHandler.Signup)
		authGroup.POST("/login/", r.authHandler.Login)
		authGroup.POST("/refresh/", r.authHandler.RefreshToken)
		authGroup.POST("/logout/", r.authHandler.Logout)
		authGroup.GET("/me/", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Website setup routes, all scoped to the authenticated account
	setupGroup := e.Group("/api/website-setups")
	setupGroup.Use(r.authMiddleware.Authenticate)
	{
		setupGroup.GET("/", r.websiteSetupHandler.Get)
		setupGroup.PATCH("/", r.websiteSetupHandler.Update)
		setupGroup.PUT("/", r.websiteSetupHandler.Update)
	}

	// Business info routes, all scoped to the authenticated account
	infoGroup := e.Group("/api/business-info")
	infoGroup.Use(r.authMiddleware.Authenticate)
	{
		infoGroup.GET("/", r.businessInfoHandler.Get)
		infoGroup.POST("/", r.businessInfoHandler.Create)
		infoGroup.PATCH("/", r.businessInfoHandler.Update)
		infoGroup.PUT("/", r.businessInfoHandler.Update)
		infoGroup.POST("/publish/", r.businessInfoHandler.Publish)
		infoGroup.POST("/logo/", r.businessInfoHandler.UploadLogo)
		infoGroup.GET("/qrcode/", r.businessInfoHandler.SiteQR)
	}
}
