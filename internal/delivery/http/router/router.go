// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chaincast/internal/delivery/http/middleware"
	"chaincast/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/github", r.authHandler.GithubLogin)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.PATCH("/reset-password/:token", r.authHandler.ResetPassword)
		authGroup.POST("/verify-email", r.authHandler.VerifyEmail)
		authGroup.POST("/resend-otp", r.authHandler.ResendOTP)
	}

	// Routes that require an authenticated session
	meGroup := e.Group("/auth")
	meGroup.Use(r.authMiddleware.Authenticate) // Apply session token middleware
	{
		meGroup.GET("/me", r.authHandler.Me)
	}
}
