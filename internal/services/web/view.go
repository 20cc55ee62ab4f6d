package web

import (
	"log"
	"net/http"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
	"github.com/rachel-higgins/RecipeAI/internal/services/web/templates"
)

// view shows a recipe's details and its edit form.
func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	recipeID := r.PathValue("id")
	value, err := h.service.Get(r.Context(), recipeID)
	if err != nil {
		log.Printf("get recipe %s: %v", recipeID, err)
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			h.renderError(w, r, http.StatusNotFound, h.notFoundMessage(err))
			return
		}
		h.renderError(w, r, apperrors.HTTPStatus(err), templates.T(h.loc, "There was an issue displaying your recipe"))
		return
	}

	data := templates.ViewData{
		Title: value.Name,
		Recipe: templates.RecipeView{
			ID:        value.ID,
			Name:      value.Name,
			Options:   value.Options,
			Content:   value.Content,
			CreatedAt: value.CreatedAt,
			UpdatedAt: value.UpdatedAt,
		},
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.RenderView(w, data); err != nil {
		log.Printf("render view: %v", err)
	}
}

// update replaces a recipe's content and redirects home.
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderError(w, r, http.StatusBadRequest, templates.T(h.loc, "The submitted form could not be read"))
		return
	}

	recipeID := r.PathValue("id")
	if _, err := h.service.UpdateContent(r.Context(), recipeID, r.PostFormValue("content")); err != nil {
		log.Printf("update recipe %s: %v", recipeID, err)
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			h.renderError(w, r, http.StatusNotFound, h.notFoundMessage(err))
			return
		}
		h.renderError(w, r, apperrors.HTTPStatus(err), templates.T(h.loc, "There was an issue updating your recipe"))
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
