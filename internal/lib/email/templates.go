package email

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/pkg/errors"
)

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateNewFlat corresponds to templates/new-flat.html
	TemplateNewFlat Template = "new-flat"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer turns a named template and its data into an HTML body.
type Renderer interface {
	Render(name Template, data any) (string, error)
}

// TemplateRenderer renders the embedded html/template files.
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every embedded template.
func NewTemplateRenderer() (*TemplateRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

func (r *TemplateRenderer) Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := r.templates.ExecuteTemplate(&body, string(name)+".html", data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}
