// Package view renders the embedded HTML templates through echo's Renderer
// interface. Each page is parsed together with the shared layout into its
// own template set, so pages can define their own title and content blocks
// without clashing.
package view

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"onboardo/web"
)

var pages = []string{
	"repositories/index.html",
	"repositories/show.html",
	"repositories/create.html",
	"repositories/edit.html",
	"auth/login.html",
	"auth/register.html",
	"favorites/index.html",
	"error.html",
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses all pages against the shared layout.
func New() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.ParseFS(web.Templates, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render executes the named page inside the layout.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
