package web

import (
	"embed"
	"io/fs"
	"net/http"

	recipesapp "github.com/rachel-higgins/RecipeAI/internal/services/recipes/app"
	"github.com/rachel-higgins/RecipeAI/internal/services/web/templates"
)

//go:embed static
var staticFS embed.FS

// Form option lists shown in the creation selects.
var (
	proteinOptions = []string{"chicken", "beef", "pork", "fish", "shrimp", "tofu", "mushrooms"}
	regionOptions  = []string{"Italian", "French", "Mexican", "Thai", "Japanese", "Indian", "Moroccan", "Korean"}
)

// Handler serves the RecipeAI web routes.
type Handler struct {
	service *recipesapp.Service
	loc     templates.Localizer
}

// NewHandler wires the recipe routes onto a mux.
func NewHandler(service *recipesapp.Service) http.Handler {
	h := &Handler{
		service: service,
		loc:     templates.DefaultLocalizer(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.home)
	mux.HandleFunc("POST /{$}", h.generate)
	mux.HandleFunc("GET /view/{id}", h.view)
	mux.HandleFunc("POST /view/{id}", h.update)
	mux.HandleFunc("POST /delete/{id}", h.delete)

	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The static directory is embedded at build time; a missing tree is
		// a programmer error.
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(staticRoot)))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		h.renderError(w, r, http.StatusNotFound, templates.T(h.loc, "Page not found"))
	})

	return mux
}
