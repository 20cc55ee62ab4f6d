package web

import (
	"log"
	"net/http"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
	"github.com/rachel-higgins/RecipeAI/internal/services/web/templates"
)

// notFoundMessage names the missing recipe when the error carries its ID.
func (h *Handler) notFoundMessage(err error) string {
	if id := apperrors.GetMetadata(err)["ID"]; id != "" {
		return templates.T(h.loc, "No recipe with ID %s was found", id)
	}
	return templates.T(h.loc, "Page not found")
}

// renderError writes the shared error page with a user-facing message.
func (h *Handler) renderError(w http.ResponseWriter, _ *http.Request, statusCode int, message string) {
	heading := templates.T(h.loc, "Something went wrong")
	if statusCode == http.StatusNotFound {
		heading = templates.T(h.loc, "Not found")
	}

	data := templates.ErrorData{
		Title:      heading,
		StatusCode: statusCode,
		Heading:    heading,
		Message:    message,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := templates.RenderError(w, data); err != nil {
		log.Printf("render error page: %v", err)
	}
}
