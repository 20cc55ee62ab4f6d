// Package recipe models generated recipes and the criteria that shape them.
//
// Criteria records are intentionally form-shaped: handlers collect them from
// the creation form and the service resolves names and prompt text from them
// at generation time.
package recipe

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/rachel-higgins/RecipeAI/internal/errors"
)

// NoSecondRegion is the form sentinel meaning no second cuisine was chosen.
const NoSecondRegion = "None"

// DefaultName is used when no name can be resolved from the criteria.
const DefaultName = "Anonymous"

// Recipe is a generated recipe stored for listing, viewing, and editing.
type Recipe struct {
	ID        string
	Options   string
	Name      string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Criteria captures the creation-form inputs that drive generation.
type Criteria struct {
	Protein           string
	SpecialIngredient string
	RegionOne         string
	RegionTwo         string
}

// Validate checks that the criteria can produce a prompt.
func (c Criteria) Validate() error {
	if strings.TrimSpace(c.Protein) == "" {
		return apperrors.New(apperrors.CodeRecipeEmptyProtein, "protein option is required")
	}
	if strings.TrimSpace(c.SpecialIngredient) == "" {
		return apperrors.New(apperrors.CodeRecipeEmptySpecialIngredient, "special ingredient is required")
	}
	if strings.TrimSpace(c.RegionOne) == "" {
		return apperrors.New(apperrors.CodeRecipeEmptyRegion, "first cuisine region is required")
	}
	return nil
}

// Options renders the stored options string exactly as submitted, including
// a literal "None" second region.
func (c Criteria) Options() string {
	return fmt.Sprintf("%s, %s, %s, %s", c.Protein, c.SpecialIngredient, c.RegionOne, c.RegionTwo)
}

// EffectiveRegionTwo returns the second region with the "None" sentinel
// blanked out.
func (c Criteria) EffectiveRegionTwo() string {
	if c.RegionTwo == NoSecondRegion {
		return ""
	}
	return c.RegionTwo
}

// ResolveName returns the submitted name, or an autogenerated
// "{region1}-{region2} {special} {protein}" name when it is blank. The
// autogenerated form keeps its separator even when the second region is
// absent, so a single-region dish reads "Italian- garlic chicken".
func (c Criteria) ResolveName(submitted string) string {
	if strings.TrimSpace(submitted) != "" {
		return submitted
	}
	name := fmt.Sprintf("%s-%s %s %s", c.RegionOne, c.EffectiveRegionTwo(), c.SpecialIngredient, c.Protein)
	if strings.TrimSpace(strings.Trim(name, "-")) == "" {
		return DefaultName
	}
	return name
}
