// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warden/internal/delivery/http/middleware"
	"warden/internal/delivery/http/router/handler"
	"warden/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Rate limit scopes, one bucket family per throttled endpoint.
const (
	scopeLogin              = "login"
	scopeForgotPassword     = "forgot-password"
	scopeResetPassword      = "reset-password"
	scopeResendVerification = "resend-verification"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	FederatedHandler    *handler.FederatedHandler
	AdminHandler        *handler.AdminHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	federatedHandler *handler.FederatedHandler
	adminHandler     *handler.AdminHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimit        *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		federatedHandler: params.FederatedHandler,
		adminHandler:     params.AdminHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
		rateLimit:        params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.GET("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification, r.rateLimit.Limit(scopeResendVerification))
		authGroup.POST("/login", r.authHandler.Login, r.rateLimit.Limit(scopeLogin))
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.OptionalAuthenticate)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword, r.rateLimit.Limit(scopeForgotPassword))
		authGroup.POST("/reset-password", r.authHandler.ResetPassword, r.rateLimit.Limit(scopeResetPassword))

		authGroup.GET("/federated", r.federatedHandler.Providers)
		authGroup.POST("/federated/:provider", r.federatedHandler.Login)
	}

	// Routes that require a valid access token
	authenticated := r.authMiddleware.Authenticate
	{
		authGroup.POST("/logout-all", r.authHandler.LogoutAll, authenticated)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, authenticated)
		authGroup.GET("/me", r.authHandler.Me, authenticated)
		authGroup.GET("/sessions", r.authHandler.ListSessions, authenticated)
		authGroup.DELETE("/sessions/:id", r.authHandler.RevokeSession, authenticated)
		authGroup.GET("/federated/files", r.federatedHandler.ListFiles, authenticated)
	}

	adminGroup := e.Group("/admin", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PATCH("/accounts/:id/status", r.adminHandler.SetAccountStatus)
	}
}
