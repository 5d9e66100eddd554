package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/go-signup/internal/errs"
	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/model"
	"github.com/deppfellow/go-signup/internal/server"
)

// SignupRequest is the body of POST /api/v1/signup. An absent field and an
// empty string are both treated as missing.
type SignupRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"passwordConfirmation"`
}

// requiredSignupFields is checked in order; the first missing one is reported.
var requiredSignupFields = []string{"name", "email", "password", "passwordConfirmation"}

func (r *SignupRequest) value(field string) string {
	switch field {
	case "name":
		return r.Name
	case "email":
		return r.Email
	case "password":
		return r.Password
	case "passwordConfirmation":
		return r.PasswordConfirmation
	}
	return ""
}

// EmailValidator decides whether an address is well formed. An error means
// the check could not be performed.
type EmailValidator interface {
	IsValid(email string) (bool, error)
}

// AccountCreator persists a new account.
type AccountCreator interface {
	Add(ctx context.Context, input model.AddAccountInput) (*model.Account, error)
}

// SignupHandler validates signup requests and hands valid ones to the
// account creator. Collaborators are fixed at construction, so one handler
// serves concurrent requests.
type SignupHandler struct {
	Handler
	emailValidator EmailValidator
	accountCreator AccountCreator
}

// NewSignupHandler builds a SignupHandler. accountCreator may be nil, in
// which case valid requests succeed without creating anything.
func NewSignupHandler(s *server.Server, emailValidator EmailValidator, accountCreator AccountCreator) *SignupHandler {
	return &SignupHandler{
		Handler:        NewHandler(s),
		emailValidator: emailValidator,
		accountCreator: accountCreator,
	}
}

// Handle runs the signup checks and returns exactly one Response:
//
//   - 400 MISSING_PARAM for the first absent field, name first
//   - 400 INVALID_PARAM for passwordConfirmation when it differs from password
//   - 400 INVALID_PARAM for email when the validator rejects it
//   - 500 when a collaborator fails or panics
//   - 200 with no body otherwise
func (h *SignupHandler) Handle(ctx context.Context, req *SignupRequest) (resp *Response) {
	logger := middleware.LoggerFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("signup collaborator panicked: %v", r)
			logger.Error().Err(err).Msg("signup failed")
			noticeError(ctx, err)
			resp = errorResponse(errs.NewInternalServerError())
		}
	}()

	if req == nil {
		req = &SignupRequest{}
	}

	if req.Name == "" {
		return errorResponse(errs.NewMissingParamError("name"))
	}

	for _, field := range requiredSignupFields {
		if req.value(field) == "" {
			return errorResponse(errs.NewMissingParamError(field))
		}
	}

	if req.Password != req.PasswordConfirmation {
		return errorResponse(errs.NewInvalidParamError("passwordConfirmation"))
	}

	valid, err := h.emailValidator.IsValid(req.Email)
	if err != nil {
		logger.Error().Err(err).Msg("email validation failed")
		noticeError(ctx, err)
		return errorResponse(errs.NewInternalServerError())
	}

	if !valid {
		return errorResponse(errs.NewInvalidParamError("email"))
	}

	if h.accountCreator != nil {
		_, err := h.accountCreator.Add(ctx, model.AddAccountInput{
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
		})
		if err != nil {
			logger.Error().Err(err).Msg("failed to create account")
			noticeError(ctx, err)
			return errorResponse(errs.NewInternalServerError())
		}
	}

	return &Response{StatusCode: http.StatusOK}
}

// SignUp serves POST /api/v1/signup.
func (h *SignupHandler) SignUp(c echo.Context) error {
	return HandleResponse[SignupRequest](h.Handler, h.Handle)(c)
}

func noticeError(ctx context.Context, err error) {
	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.NoticeError(nrpkgerrors.Wrap(err))
	}
}
