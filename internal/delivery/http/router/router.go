// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookswap/internal/delivery/http/middleware"
	"bookswap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PassportHandler   *handler.PassportHandler
	SessionMiddleware *middleware.SessionMiddleware
	WechatMiddleware  *middleware.WechatMiddleware
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	passportHandler   *handler.PassportHandler
	sessionMiddleware *middleware.SessionMiddleware
	wechatMiddleware  *middleware.WechatMiddleware
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		passportHandler:   params.PassportHandler,
		sessionMiddleware: params.SessionMiddleware,
		wechatMiddleware:  params.WechatMiddleware,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	passport := e.Group("/passport")
	passport.Use(r.sessionMiddleware.Handle)
	{
		// Surfaces reachable only while logged out. The wechat middleware
		// runs on the GETs so an OAuth return lands its identity in the
		// session before the surface decides what to do with it.
		passport.GET("/register",
			r.passportHandler.ShowRegister,
			r.authMiddleware.RequireGuest,
			r.wechatMiddleware.Handle,
		)
		passport.POST("/register", r.passportHandler.Register, r.authMiddleware.RequireGuest)
		passport.GET("/login",
			r.passportHandler.ShowLogin,
			r.authMiddleware.RequireGuest,
			r.wechatMiddleware.Handle,
		)
		passport.POST("/login", r.passportHandler.Login, r.authMiddleware.RequireGuest)

		passport.POST("/code", r.passportHandler.RequestCode)

		// Password reset requires a live login.
		passport.GET("/forgot", r.passportHandler.ShowForgot, r.authMiddleware.RequireAuthenticated)
		passport.POST("/forgot", r.passportHandler.ResetPassword, r.authMiddleware.RequireAuthenticated)

		passport.POST("/logout", r.passportHandler.Logout)
	}
}
