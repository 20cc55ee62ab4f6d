package web

import (
	"log"
	"net/http"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
	"github.com/rachel-higgins/RecipeAI/internal/services/web/templates"
)

// delete removes a recipe and redirects home.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	recipeID := r.PathValue("id")
	if err := h.service.Delete(r.Context(), recipeID); err != nil {
		log.Printf("delete recipe %s: %v", recipeID, err)
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			h.renderError(w, r, http.StatusNotFound, h.notFoundMessage(err))
			return
		}
		h.renderError(w, r, apperrors.HTTPStatus(err), templates.T(h.loc, "There was a problem deleting your recipe"))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
