package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// RecipeList returns the recipe-list fragment as a templ component so HTMX
// swaps reuse the same markup as the full page.
func RecipeList(recipes []RecipeView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return listFragment.ExecuteTemplate(w, "recipe-list", IndexData{Recipes: recipes})
	})
}
