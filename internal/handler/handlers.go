package handler

import (
	"github.com/deppfellow/go-signup/internal/server"
	"github.com/deppfellow/go-signup/internal/service"
	"github.com/deppfellow/go-signup/internal/validation"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Signup  *SignupHandler
}

// NewHandlers wires the handlers to the service layer. Signup gets the
// validator-backed email check and the account service as its creator.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Signup:  NewSignupHandler(s, validation.NewEmailValidator(), services.Account),
	}
}
