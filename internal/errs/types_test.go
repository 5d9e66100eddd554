package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMissingParamError(t *testing.T) {
	err := NewMissingParamError("passwordConfirmation")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeMissingParam, err.Code)
	assert.Equal(t, "Missing param: passwordConfirmation", err.Message)
	assert.True(t, err.Override)
	assert.Equal(t, []FieldError{{Field: "passwordConfirmation", Error: "is required"}}, err.Errors)
}

func TestNewInvalidParamError(t *testing.T) {
	err := NewInvalidParamError("email")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, CodeInvalidParam, err.Code)
	assert.Equal(t, "Invalid param: email", err.Message)
	assert.Equal(t, []FieldError{{Field: "email", Error: "is invalid"}}, err.Errors)
}

func TestNewInternalServerErrorHasNoDetail(t *testing.T) {
	err := NewInternalServerError()

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", err.Code)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Empty(t, err.Errors)
	assert.Nil(t, err.Action)
}

func TestNewBadRequestErrorDefaultCode(t *testing.T) {
	err := NewBadRequestError("bad", false, nil, nil, nil)
	assert.Equal(t, "BAD_REQUEST", err.Code)

	code := "CUSTOM"
	err = NewBadRequestError("bad", false, &code, nil, nil)
	assert.Equal(t, "CUSTOM", err.Code)
}

func TestHTTPErrorIsMatchesType(t *testing.T) {
	wrapped := fmt.Errorf("creating account: %w", NewInvalidParamError("email"))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	var httpErr *HTTPError
	assert.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Invalid param: email", httpErr.Error())
}

func TestWithMessageCopies(t *testing.T) {
	original := NewMissingParamError("name")
	copied := original.WithMessage("Name please")

	assert.Equal(t, "Missing param: name", original.Message)
	assert.Equal(t, "Name please", copied.Message)
	assert.Equal(t, original.Code, copied.Code)
	assert.Equal(t, original.Errors, copied.Errors)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}
