package email

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
)

type TemplateData struct {
	UserName     string
	Subject      string
	ActionURL    string
	ActionText   string
	Body         string
	SupportEmail string
	SiteName     string
}

// TemplateManager renders HTML email bodies. Templates are loaded from
// the configured directory when present; otherwise a built-in layout is
// used so the service works out of the box.
type TemplateManager struct {
	dir      string
	fallback *template.Template
}

const fallbackLayout = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; color: #333;">
  <h2>{{.Subject}}</h2>
  {{if .UserName}}<p>Hola {{.UserName}},</p>{{end}}
  <p>{{.Body}}</p>
  {{if .ActionURL}}<p><a href="{{.ActionURL}}">{{.ActionText}}</a></p>{{end}}
  <p>— {{.SiteName}}</p>
</body>
</html>`

func NewTemplateManager(dir string) (*TemplateManager, error) {
	fallback, err := template.New("fallback").Parse(fallbackLayout)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fallback template: %w", err)
	}
	return &TemplateManager{dir: dir, fallback: fallback}, nil
}

func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	var buf bytes.Buffer

	if tm.dir != "" {
		path := filepath.Join(tm.dir, name+".html")
		if _, err := os.Stat(path); err == nil {
			tmpl, err := template.ParseFiles(path)
			if err != nil {
				return "", fmt.Errorf("failed to parse template %s: %w", name, err)
			}
			if err := tmpl.Execute(&buf, data); err != nil {
				return "", fmt.Errorf("failed to render template %s: %w", name, err)
			}
			return buf.String(), nil
		}
	}

	if err := tm.fallback.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render fallback template: %w", err)
	}
	return buf.String(), nil
}
