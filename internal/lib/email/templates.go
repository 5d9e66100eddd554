package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

// Template names an HTML file under templates/.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

//go:embed templates/*.html
var templateFS embed.FS

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	tmpl, err := template.ParseFS(templateFS, fmt.Sprintf("templates/%s.html", name))
	if err != nil {
		return "", fmt.Errorf("parsing email template %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("executing email template %s: %w", name, err)
	}

	return body.String(), nil
}
