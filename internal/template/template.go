// Package template renders the generated alias declarations. The templates
// are embedded so the binary is self-contained; RenderTo executes one named
// template into the caller's buffer.
package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"text/template"
)

//go:embed alias.tpl
var aliasTemplate string

// Manager holds the parsed template set.
type Manager struct {
	templates *template.Template
}

// NewManager parses the embedded templates.
func NewManager() *Manager {
	return &Manager{
		templates: template.Must(template.New("alias").Parse(aliasTemplate)),
	}
}

// RenderTo executes the named template with data into w.
func (m *Manager) RenderTo(w io.Writer, name string, data any) error {
	if m.templates.Lookup(name) == nil {
		return fmt.Errorf("unknown template %q", name)
	}
	return m.templates.ExecuteTemplate(w, name, data)
}

// Render executes the named template and returns the output.
func (m *Manager) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.RenderTo(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
