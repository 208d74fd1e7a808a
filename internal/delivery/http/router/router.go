// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/andreineculai/shadewalker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ShadeHandler *handler.ShadeHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	shadeHandler *handler.ShadeHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		shadeHandler: params.ShadeHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/shade/analyze", r.shadeHandler.AnalyzeRoute)
	}
}
