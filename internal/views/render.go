package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/yaiechnyk-oleh/recipe-finder/internal/config"
	"github.com/yaiechnyk-oleh/recipe-finder/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	SearchTemplate  = "search.html"
	ResultsTemplate = "results.html"
	DetailTemplate  = "detail.html"
	ErrorTemplate   = "error.html"
	cardsTemplate   = "cards"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"selected": func(a, b string) bool {
		return strings.EqualFold(a, b)
	},
}

// SearchPage is the data of the search form page.
type SearchPage struct {
	Title   string
	Form    service.SearchForm
	Options *config.SearchOptions
	Error   string
}

// ResultsPage is the data of the results page.
type ResultsPage struct {
	Title   string
	Results ResultsView
}

// DetailPage is the data of the recipe detail page.
type DetailPage struct {
	Title  string
	Recipe DetailView
}

// ErrorPage is the data of the full-page error view.
type ErrorPage struct {
	Title     string
	Message   string
	BackURL   string
	BackLabel string
}

// Renderer owns the parsed template set.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Templates returns the template set for gin's HTML renderer.
func (r *Renderer) Templates() *template.Template {
	return r.tmpl
}

// Cards renders the result card fragment appended by "load more".
func (r *Renderer) Cards(cards []Card) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, cardsTemplate, cards); err != nil {
		return "", fmt.Errorf("failed to render cards: %w", err)
	}
	return buf.String(), nil
}

// StaticFS serves the embedded static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}
	return http.FS(sub)
}
