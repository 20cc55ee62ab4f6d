// Package seed wires configuration and storage for the fixture seeding
// command.
package seed

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	platformcmd "github.com/rachel-higgins/RecipeAI/internal/platform/cmd"
	"github.com/rachel-higgins/RecipeAI/internal/seed"
	recipesqlite "github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage/sqlite"
)

// Config holds the seed command configuration.
type Config struct {
	DBPath  string `env:"RECIPEAI_DB_PATH" envDefault:"data/recipes.db"`
	Verbose bool   `env:"RECIPEAI_SEED_VERBOSE" envDefault:"true"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log each seeded recipe")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run seeds the database with fixture recipes.
func Run(ctx context.Context, cfg Config) error {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := recipesqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open recipes sqlite store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	if err := seed.Run(ctx, store, seed.Config{Verbose: cfg.Verbose}); err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	return nil
}
