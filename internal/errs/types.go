package errs

import (
	"fmt"
	"net/http"
)

const (
	// CodeMissingParam marks a required request field that was absent or empty.
	CodeMissingParam = "MISSING_PARAM"

	// CodeInvalidParam marks a request field that was present but rejected.
	CodeInvalidParam = "INVALID_PARAM"
)

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code is optional and defaults to "BAD_REQUEST". errors and action
// may be nil.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewMissingParamError reports a required field that was not supplied.
func NewMissingParamError(field string) *HTTPError {
	code := CodeMissingParam

	return NewBadRequestError(
		fmt.Sprintf("Missing param: %s", field),
		true,
		&code,
		[]FieldError{{Field: field, Error: "is required"}},
		nil,
	)
}

// NewInvalidParamError reports a field whose value was rejected.
func NewInvalidParamError(field string) *HTTPError {
	code := CodeInvalidParam

	return NewBadRequestError(
		fmt.Sprintf("Invalid param: %s", field),
		true,
		&code,
		[]FieldError{{Field: field, Error: "is invalid"}},
		nil,
	)
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewTooManyRequestsError creates a 429 HTTPError for rate limited clients.
func NewTooManyRequestsError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusTooManyRequests)),
		Message:  "Too many requests, please try again later",
		Status:   http.StatusTooManyRequests,
		Override: true,
	}
}

// NewInternalServerError creates the generic 500 HTTPError.
//
// The message is always the status text. The underlying failure is
// logged by the caller and never placed in the response.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}
