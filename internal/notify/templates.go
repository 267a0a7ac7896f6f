package notify

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// renderer executes the embedded templates. It is safe for concurrent use.
type renderer struct {
	templates *template.Template
}

func newRenderer() (*renderer, error) {
	templates, err := template.New("mail").Option("missingkey=error").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("error parsing mail templates: %w", err)
	}
	return &renderer{templates: templates}, nil
}

// render executes the template called name (without the .html suffix).
func (r *renderer) render(name string, data map[string]any) (string, error) {
	tmpl := r.templates.Lookup(name + ".html")
	if tmpl == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}

	if data == nil {
		data = map[string]any{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrRenderingTemplate, name, err)
	}

	return buf.String(), nil
}
