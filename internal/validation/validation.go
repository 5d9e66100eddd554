// Package validation binds request bodies and provides the email format
// check used by the signup handler.
//
// Format rules come from go-playground/validator so the service accepts
// exactly what the `email` struct tag accepts elsewhere.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/go-signup/internal/errs"
)

// Bind decodes the request into payload, which must be a pointer.
//
// A decoding failure becomes a 400 HTTPError. The decoder's own message
// is only used when echo produced it; anything else stays generic.
func Bind(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		message := "Invalid request body"

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			if msg, ok := echoErr.Message.(string); ok && msg != "" {
				message = msg
			}
		}

		return errs.NewBadRequestError(message, false, nil, nil, nil)
	}

	return nil
}

// EmailValidator checks address format with the validator `email` rule.
// It is safe for concurrent use.
type EmailValidator struct {
	validate *validator.Validate
}

// NewEmailValidator returns an EmailValidator with its own validator instance.
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{validate: validator.New()}
}

// IsValid reports whether email is a well-formed address. An error means
// the check itself could not run.
func (v *EmailValidator) IsValid(email string) (bool, error) {
	err := v.validate.Var(email, "required,email")
	if err == nil {
		return true, nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return false, nil
	}

	return false, fmt.Errorf("validating email: %w", err)
}
