package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-signup/internal/errs"
)

func TestEmailValidatorIsValid(t *testing.T) {
	v := NewEmailValidator()

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "plain address", email: "any_email@test.com", want: true},
		{name: "subdomain and plus", email: "jane+signup@mail.example.org", want: true},
		{name: "missing at", email: "any_email.test.com", want: false},
		{name: "missing domain", email: "any_email@", want: false},
		{name: "spaces", email: "any email@test.com", want: false},
		{name: "empty", email: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.IsValid(tt.email)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type bindTarget struct {
	Name string `json:"name"`
}

func TestBind(t *testing.T) {
	e := echo.New()

	t.Run("valid json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"any_name"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		var target bindTarget
		require.NoError(t, Bind(c, &target))
		assert.Equal(t, "any_name", target.Name)
	})

	t.Run("malformed json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		c := e.NewContext(req, httptest.NewRecorder())

		var target bindTarget
		err := Bind(c, &target)
		require.Error(t, err)

		httpErr, ok := err.(*errs.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.NotEmpty(t, httpErr.Message)
	})
}
