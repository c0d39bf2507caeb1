// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	PostHandler    *handler.PostHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	postHandler    *handler.PostHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		postHandler:    params.PostHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Email sign-in flow
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/code", r.authHandler.SendCode)
		authGroup.POST("/verify", r.authHandler.VerifyCode)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Author directory and public author pages
	profileGroup := e.Group("/profiles")
	{
		profileGroup.GET("", r.profileHandler.List)
		profileGroup.POST("", r.profileHandler.Create, r.authMiddleware.Authenticate)
		profileGroup.PATCH("/me", r.profileHandler.UpdateMe, r.authMiddleware.Authenticate)
		profileGroup.PUT("/me/avatar", r.profileHandler.ReplaceAvatar, r.authMiddleware.Authenticate)
		profileGroup.DELETE("/me/avatar", r.profileHandler.RemoveAvatar, r.authMiddleware.Authenticate)
		profileGroup.GET("/:handle", r.profileHandler.GetByHandle)
		profileGroup.GET("/:handle/posts", r.profileHandler.ListPostsByHandle)
	}

	// Posts: reading a single post is public (drafts 404 for non-authors),
	// everything else requires a session.
	postGroup := e.Group("/posts")
	{
		postGroup.POST("", r.postHandler.Create, r.authMiddleware.Authenticate)
		postGroup.GET("", r.postHandler.ListOwn, r.authMiddleware.Authenticate)
		postGroup.GET("/:id", r.postHandler.Get, r.authMiddleware.AuthenticateOptional)
		postGroup.PATCH("/:id", r.postHandler.Update, r.authMiddleware.Authenticate)
		postGroup.DELETE("/:id", r.postHandler.Delete, r.authMiddleware.Authenticate)
	}
}
