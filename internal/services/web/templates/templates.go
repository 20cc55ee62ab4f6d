// Package templates renders the RecipeAI HTML pages from embedded files and
// exposes HTMX fragments as templ components.
package templates

import (
	"embed"
	"html/template"
	"io"
	"time"
)

//go:embed pages/*.html
var pagesFS embed.FS

var funcs = template.FuncMap{
	"datetime": func(value time.Time) string {
		return value.Format("Jan 2, 2006 15:04")
	},
}

var (
	indexPage = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(pagesFS,
		"pages/layout.html", "pages/recipe_list.html", "pages/index.html"))
	viewPage = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(pagesFS,
		"pages/layout.html", "pages/view.html"))
	errorPage = template.Must(template.New("layout.html").Funcs(funcs).ParseFS(pagesFS,
		"pages/layout.html", "pages/error.html"))
	listFragment = template.Must(template.New("recipe_list.html").Funcs(funcs).ParseFS(pagesFS,
		"pages/recipe_list.html"))
)

// RecipeView is the template-facing shape of one recipe.
type RecipeView struct {
	ID        string
	Name      string
	Options   string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IndexData feeds the home page.
type IndexData struct {
	Title   string
	Recipes []RecipeView

	ProteinOptions []string
	RegionOptions  []string
}

// ViewData feeds the recipe detail page.
type ViewData struct {
	Title  string
	Recipe RecipeView
}

// ErrorData feeds the shared error page.
type ErrorData struct {
	Title      string
	StatusCode int
	Heading    string
	Message    string
}

// RenderIndex writes the full home page.
func RenderIndex(w io.Writer, data IndexData) error {
	return indexPage.ExecuteTemplate(w, "layout", data)
}

// RenderView writes the full recipe detail page.
func RenderView(w io.Writer, data ViewData) error {
	return viewPage.ExecuteTemplate(w, "layout", data)
}

// RenderError writes the full error page.
func RenderError(w io.Writer, data ErrorData) error {
	return errorPage.ExecuteTemplate(w, "layout", data)
}
