package web

import (
	"log"
	"net/http"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
	recipesapp "github.com/rachel-higgins/RecipeAI/internal/services/recipes/app"
	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/recipe"
	"github.com/rachel-higgins/RecipeAI/internal/services/web/templates"
)

// home lists previously generated recipes and the creation form. HTMX
// requests receive only the recipe-list fragment.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("list recipes: %v", err)
		h.renderError(w, r, apperrors.HTTPStatus(err), templates.T(h.loc, "There was an issue loading your recipes"))
		return
	}

	views := toViews(recipes)
	if isHTMXRequest(r) {
		if err := writeComponent(w, r, http.StatusOK, templates.RecipeList(views)); err != nil {
			log.Printf("render recipe list fragment: %v", err)
		}
		return
	}

	data := templates.IndexData{
		Title:          templates.T(h.loc, "RecipeAI"),
		Recipes:        views,
		ProteinOptions: proteinOptions,
		RegionOptions:  regionOptions,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderIndex(w, data); err != nil {
		log.Printf("render index: %v", err)
	}
}

// generate creates a new recipe from the form criteria and redirects home.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, templates.T(h.loc, "The submitted form could not be read"))
		return
	}

	req := recipesapp.GenerateRequest{
		Criteria: recipe.Criteria{
			Protein:           r.PostFormValue("protein_option"),
			SpecialIngredient: r.PostFormValue("special_ingredient"),
			RegionOne:         r.PostFormValue("region_one"),
			RegionTwo:         r.PostFormValue("region_two"),
		},
		Name: r.PostFormValue("name"),
	}

	if _, err := h.service.Generate(r.Context(), req); err != nil {
		log.Printf("generate recipe: %v", err)
		message := templates.T(h.loc, "There was an issue generating your recipe")
		if apperrors.IsCode(err, apperrors.CodeStorageFailure) {
			message = templates.T(h.loc, "There was an issue creating your recipe")
		}
		h.renderError(w, r, apperrors.HTTPStatus(err), message)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func toViews(recipes []recipe.Recipe) []templates.RecipeView {
	views := make([]templates.RecipeView, 0, len(recipes))
	for _, value := range recipes {
		views = append(views, templates.RecipeView{
			ID:        value.ID,
			Name:      value.Name,
			Options:   value.Options,
			Content:   value.Content,
			CreatedAt: value.CreatedAt,
			UpdatedAt: value.UpdatedAt,
		})
	}
	return views
}
