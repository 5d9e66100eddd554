package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/handler"
	"github.com/deppfellow/go-signup/internal/middleware"
)

func registerSignupRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	g.POST("/signup", h.Signup.SignUp, m.RateLimit.Signup())
}
