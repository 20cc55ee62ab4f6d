package seed

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/rachel-higgins/RecipeAI/internal/seed"
	recipesqlite "github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage/sqlite"
)

func TestParseConfigFlagOverrides(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-db-path", "/tmp/other.db", "-verbose=false"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
}

func TestRunSeedsDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "recipes.db")

	if err := Run(context.Background(), Config{DBPath: dbPath}); err != nil {
		t.Fatalf("Run: %v", err)
	}

	store, err := recipesqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	records, err := store.ListRecipes(context.Background())
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	if want := len(seed.Fixtures()); len(records) != want {
		t.Fatalf("got %d records, want %d", len(records), want)
	}
}
