package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	html, err := Render(TemplateWelcome, map[string]string{
		"UserName":  "any_name",
		"UserEmail": "any_email@test.com",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "Welcome, any_name!")
	assert.Contains(t, html, "any_email@test.com")
}

func TestRenderEscapesInput(t *testing.T) {
	html, err := Render(TemplateWelcome, map[string]string{
		"UserName": "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.Error(t, err)
}
