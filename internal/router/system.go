package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/handler"
)

// registerSystemRoutes adds the routes that sit outside the versioned API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// openapi.json and any docs assets.
	r.Static("/static", "static")

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
