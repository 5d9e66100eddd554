package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-signup/internal/config"
	"github.com/deppfellow/go-signup/internal/errs"
	"github.com/deppfellow/go-signup/internal/middleware"
	"github.com/deppfellow/go-signup/internal/model"
	"github.com/deppfellow/go-signup/internal/server"
)

type mockEmailValidator struct {
	mock.Mock
}

func (m *mockEmailValidator) IsValid(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

type mockAccountCreator struct {
	mock.Mock
}

func (m *mockAccountCreator) Add(ctx context.Context, input model.AddAccountInput) (*model.Account, error) {
	args := m.Called(ctx, input)
	if account, ok := args.Get(0).(*model.Account); ok {
		return account, args.Error(1)
	}
	return nil, args.Error(1)
}

type panickingValidator struct{}

func (panickingValidator) IsValid(string) (bool, error) {
	panic("validator exploded")
}

func newTestServer() *server.Server {
	logger := zerolog.Nop()

	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Signup:        config.DefaultSignupConfig(),
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func validRequest() *SignupRequest {
	return &SignupRequest{
		Name:                 "any_name",
		Email:                "any_email@mail.com",
		Password:             "any_password",
		PasswordConfirmation: "any_password",
	}
}

func newSUT() (*SignupHandler, *mockEmailValidator, *mockAccountCreator) {
	validator := &mockEmailValidator{}
	validator.On("IsValid", mock.Anything).Return(true, nil).Maybe()

	creator := &mockAccountCreator{}
	creator.On("Add", mock.Anything, mock.Anything).Return(&model.Account{ID: uuid.New()}, nil).Maybe()

	return NewSignupHandler(newTestServer(), validator, creator), validator, creator
}

func assertErrorBody(t *testing.T, resp *Response, status int, expected *errs.HTTPError) {
	t.Helper()

	require.NotNil(t, resp)
	assert.Equal(t, status, resp.StatusCode)
	assert.Equal(t, expected, resp.Body)
}

func TestSignupMissingFields(t *testing.T) {
	tests := []struct {
		name  string
		clear func(r *SignupRequest)
		field string
	}{
		{"no name", func(r *SignupRequest) { r.Name = "" }, "name"},
		{"no email", func(r *SignupRequest) { r.Email = "" }, "email"},
		{"no password", func(r *SignupRequest) { r.Password = "" }, "password"},
		{"no password confirmation", func(r *SignupRequest) { r.PasswordConfirmation = "" }, "passwordConfirmation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sut, validator, creator := newSUT()
			req := validRequest()
			tt.clear(req)

			resp := sut.Handle(context.Background(), req)

			assertErrorBody(t, resp, http.StatusBadRequest, errs.NewMissingParamError(tt.field))
			validator.AssertNotCalled(t, "IsValid", mock.Anything)
			creator.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestSignupReportsFirstMissingField(t *testing.T) {
	sut, _, _ := newSUT()

	resp := sut.Handle(context.Background(), &SignupRequest{})
	assertErrorBody(t, resp, http.StatusBadRequest, errs.NewMissingParamError("name"))

	resp = sut.Handle(context.Background(), &SignupRequest{Name: "any_name"})
	assertErrorBody(t, resp, http.StatusBadRequest, errs.NewMissingParamError("email"))

	resp = sut.Handle(context.Background(), nil)
	assertErrorBody(t, resp, http.StatusBadRequest, errs.NewMissingParamError("name"))
}

func TestSignupPasswordConfirmationMismatch(t *testing.T) {
	sut, validator, _ := newSUT()
	req := validRequest()
	req.Password = "a"
	req.PasswordConfirmation = "b"

	resp := sut.Handle(context.Background(), req)

	assertErrorBody(t, resp, http.StatusBadRequest, errs.NewInvalidParamError("passwordConfirmation"))
	validator.AssertNotCalled(t, "IsValid", mock.Anything)
}

func TestSignupInvalidEmail(t *testing.T) {
	validator := &mockEmailValidator{}
	validator.On("IsValid", "invalid_email@mail.com").Return(false, nil).Once()
	creator := &mockAccountCreator{}
	sut := NewSignupHandler(newTestServer(), validator, creator)

	req := validRequest()
	req.Email = "invalid_email@mail.com"

	resp := sut.Handle(context.Background(), req)

	assertErrorBody(t, resp, http.StatusBadRequest, errs.NewInvalidParamError("email"))
	validator.AssertExpectations(t)
	creator.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSignupCallsEmailValidatorWithRequestEmail(t *testing.T) {
	sut, validator, _ := newSUT()

	sut.Handle(context.Background(), validRequest())

	validator.AssertCalled(t, "IsValid", "any_email@mail.com")
	validator.AssertNumberOfCalls(t, "IsValid", 1)
}

func TestSignupEmailValidatorError(t *testing.T) {
	validator := &mockEmailValidator{}
	validator.On("IsValid", mock.Anything).Return(false, errors.New("validator unavailable"))
	creator := &mockAccountCreator{}
	sut := NewSignupHandler(newTestServer(), validator, creator)

	resp := sut.Handle(context.Background(), validRequest())

	assertErrorBody(t, resp, http.StatusInternalServerError, errs.NewInternalServerError())
	creator.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSignupEmailValidatorPanic(t *testing.T) {
	sut := NewSignupHandler(newTestServer(), panickingValidator{}, nil)

	var resp *Response
	require.NotPanics(t, func() {
		resp = sut.Handle(context.Background(), validRequest())
	})

	assertErrorBody(t, resp, http.StatusInternalServerError, errs.NewInternalServerError())
}

func TestSignupCallsAccountCreatorWithInput(t *testing.T) {
	sut, _, creator := newSUT()

	sut.Handle(context.Background(), validRequest())

	creator.AssertCalled(t, "Add", mock.Anything, model.AddAccountInput{
		Email:    "any_email@mail.com",
		Password: "any_password",
		Name:     "any_name",
	})
}

func TestSignupAccountCreatorError(t *testing.T) {
	validator := &mockEmailValidator{}
	validator.On("IsValid", mock.Anything).Return(true, nil)
	creator := &mockAccountCreator{}
	creator.On("Add", mock.Anything, mock.Anything).Return(nil, errors.New("insert failed"))
	sut := NewSignupHandler(newTestServer(), validator, creator)

	resp := sut.Handle(context.Background(), validRequest())

	assertErrorBody(t, resp, http.StatusInternalServerError, errs.NewInternalServerError())
}

func TestSignupSuccess(t *testing.T) {
	sut, _, _ := newSUT()

	resp := sut.Handle(context.Background(), validRequest())

	require.NotNil(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, resp.Body)
}

func TestSignupWithoutAccountCreator(t *testing.T) {
	validator := &mockEmailValidator{}
	validator.On("IsValid", mock.Anything).Return(true, nil)
	sut := NewSignupHandler(newTestServer(), validator, nil)

	resp := sut.Handle(context.Background(), validRequest())

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, resp.Body)
}

func TestSignupIsDeterministic(t *testing.T) {
	sut, _, _ := newSUT()
	req := validRequest()
	req.PasswordConfirmation = "other"

	first := sut.Handle(context.Background(), req)
	second := sut.Handle(context.Background(), req)

	assert.Equal(t, first, second)
}

func newSignupEcho(sut *SignupHandler) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(newTestServer()).GlobalErrorHandler
	e.POST("/api/v1/signup", sut.SignUp)
	return e
}

func postSignup(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSignUpEndpointSuccess(t *testing.T) {
	sut, _, creator := newSUT()
	e := newSignupEcho(sut)

	rec := postSignup(e, `{"name":"any_name","email":"any_email@mail.com","password":"any_password","passwordConfirmation":"any_password"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	creator.AssertNumberOfCalls(t, "Add", 1)
}

func TestSignUpEndpointMissingParam(t *testing.T) {
	sut, _, _ := newSUT()
	e := newSignupEcho(sut)

	rec := postSignup(e, `{"name":"any_name","password":"any_password","passwordConfirmation":"any_password"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, errs.CodeMissingParam, body.Code)
	assert.Equal(t, "Missing param: email", body.Message)
	assert.Equal(t, []errs.FieldError{{Field: "email", Error: "is required"}}, body.Errors)
}

func TestSignUpEndpointServerErrorHidesCause(t *testing.T) {
	validator := &mockEmailValidator{}
	validator.On("IsValid", mock.Anything).Return(true, nil)
	creator := &mockAccountCreator{}
	creator.On("Add", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key value violates unique constraint"))
	e := newSignupEcho(NewSignupHandler(newTestServer(), validator, creator))

	rec := postSignup(e, `{"name":"any_name","email":"any_email@mail.com","password":"any_password","passwordConfirmation":"any_password"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "duplicate")

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
}

func TestSignUpEndpointMalformedBody(t *testing.T) {
	sut, validator, _ := newSUT()
	e := newSignupEcho(sut)

	rec := postSignup(e, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body.Code)
	validator.AssertNotCalled(t, "IsValid", mock.Anything)
}
