// Package router builds the echo instance: global middleware in order,
// the error handler, system routes and the versioned API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/handler"
	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/server"
)

// NewRouter returns the configured echo instance.
//
// RequestID runs before tracing and the context enhancer so both can read
// the id. RequestLogger runs after the enhancer so it logs with the
// request-scoped logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerSignupRoutes(v1, h, middlewares)

	return router
}
