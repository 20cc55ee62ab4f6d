// Package seed populates a local development database with fixture recipes
// so the web UI has content without spending provider tokens.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/rachel-higgins/RecipeAI/internal/platform/id"
	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/recipe"
	"github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage"
)

// Fixture describes one seeded recipe.
type Fixture struct {
	Criteria recipe.Criteria
	Name     string
	Content  string
}

// Config controls a seeding run.
type Config struct {
	Verbose bool
	// Now anchors fixture timestamps; zero means time.Now.
	Now time.Time
}

// Fixtures returns the built-in demo recipes.
func Fixtures() []Fixture {
	return []Fixture{
		{
			Criteria: recipe.Criteria{
				Protein:           "chicken",
				SpecialIngredient: "garlic",
				RegionOne:         "Italian",
				RegionTwo:         "Thai",
			},
			Content: "Ingredients:\n" +
				"- 2 chicken breasts\n" +
				"- 4 cloves garlic, minced\n" +
				"- 1 stalk lemongrass\n" +
				"- 200g spaghetti\n" +
				"- 1 tbsp fish sauce\n" +
				"- Fresh basil and salt\n\n" +
				"Instructions:\n" +
				"1. Slice the chicken and brown it with garlic in olive oil.\n" +
				"2. Add lemongrass and fish sauce, then simmer.\n" +
				"3. Toss with cooked spaghetti and basil before serving.\n",
		},
		{
			Criteria: recipe.Criteria{
				Protein:           "tofu",
				SpecialIngredient: "miso",
				RegionOne:         "Japanese",
				RegionTwo:         recipe.NoSecondRegion,
			},
			Content: "Ingredients:\n" +
				"- 400g firm tofu\n" +
				"- 2 tbsp white miso\n" +
				"- 1 tbsp mirin\n" +
				"- 2 spring onions\n" +
				"- Salt to taste\n\n" +
				"Instructions:\n" +
				"1. Press and cube the tofu.\n" +
				"2. Whisk miso and mirin into a glaze.\n" +
				"3. Broil the tofu with the glaze and top with spring onion.\n",
		},
		{
			Criteria: recipe.Criteria{
				Protein:           "beef",
				SpecialIngredient: "cumin",
				RegionOne:         "Mexican",
				RegionTwo:         "Korean",
			},
			Name: "Seoul-style barbacoa tacos",
			Content: "Ingredients:\n" +
				"- 500g beef chuck\n" +
				"- 1 tbsp ground cumin\n" +
				"- 2 tbsp gochujang\n" +
				"- Corn tortillas\n" +
				"- Pickled onion and salt\n\n" +
				"Instructions:\n" +
				"1. Rub the beef with cumin and salt, then braise until tender.\n" +
				"2. Shred and glaze with gochujang.\n" +
				"3. Serve on tortillas with pickled onion.\n",
		},
	}
}

// Run inserts the fixtures into the store, spacing creation timestamps so
// list ordering is stable.
func Run(ctx context.Context, store storage.RecipeStore, cfg Config) error {
	now := cfg.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	fixtures := Fixtures()
	for i, fixture := range fixtures {
		recipeID, err := id.NewID()
		if err != nil {
			return fmt.Errorf("allocate fixture id: %w", err)
		}
		createdAt := now.Add(time.Duration(i-len(fixtures)) * time.Minute)
		record := storage.RecipeRecord{
			ID:        recipeID,
			Options:   fixture.Criteria.Options(),
			Name:      fixture.Criteria.ResolveName(fixture.Name),
			Content:   fixture.Content,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		}
		if err := store.PutRecipe(ctx, record); err != nil {
			return fmt.Errorf("seed recipe %q: %w", record.Name, err)
		}
		if cfg.Verbose {
			log.Printf("seeded recipe %s (%s)", record.Name, record.ID)
		}
	}
	return nil
}
