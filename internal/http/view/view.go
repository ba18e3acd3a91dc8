// Package view renders the HTML pages of the web surface.
package view

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"opms/internal/core"
	"opms/internal/http/cookie"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	LoginPage    = "login"
	RegisterPage = "register"
	HomePage     = "home"
	IndexPage    = "index"
)

var titles = map[string]string{
	LoginPage:    "Log in",
	RegisterPage: "Register",
	HomePage:     "Home",
	IndexPage:    "Dashboard",
}

// Page is the data every template receives.
type Page struct {
	Title   string
	Flash   *cookie.Flash
	Account *core.Account
}

type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page against the shared layout.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template, len(titles))
	for name := range titles {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

// Component returns the page as a templ component.
func (r *Renderer) Component(name string, page Page) (templ.Component, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	if page.Title == "" {
		page.Title = titles[name]
	}
	return templ.FromGoHTML(t, page), nil
}

// Render writes the page with the given status. Output is buffered so a
// template failure never leaves a half written response.
func (r *Renderer) Render(ctx context.Context, w http.ResponseWriter, status int, name string, page Page) error {
	component, err := r.Component(name, page)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = component.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = io.Copy(w, &buf)
	return err
}
