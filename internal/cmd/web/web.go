// Package web wires configuration, storage, generation, and the HTTP server
// for the browser-facing RecipeAI service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	platformcmd "github.com/rachel-higgins/RecipeAI/internal/platform/cmd"
	"github.com/rachel-higgins/RecipeAI/internal/services/ai"
	recipesapp "github.com/rachel-higgins/RecipeAI/internal/services/recipes/app"
	recipesqlite "github.com/rachel-higgins/RecipeAI/internal/services/recipes/storage/sqlite"
	"github.com/rachel-higgins/RecipeAI/internal/services/web"
	"github.com/rachel-higgins/RecipeAI/internal/telemetry"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"RECIPEAI_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath        string `env:"RECIPEAI_DB_PATH" envDefault:"data/recipes.db"`
	OpenAIAPIKey  string `env:"RECIPEAI_OPENAI_API_KEY"`
	OpenAIModel   string `env:"RECIPEAI_OPENAI_MODEL"`
	OpenAIBaseURL string `env:"RECIPEAI_OPENAI_BASE_URL"`
}

// ParseConfig loads env defaults and then parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.OpenAIModel, "openai-model", cfg.OpenAIModel, "OpenAI model name")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	store, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = store.Close()
	}()

	generator, err := ai.NewOpenAIClient(ai.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
	})
	if err != nil {
		return fmt.Errorf("init openai client: %w", err)
	}

	service := recipesapp.NewService(store, generator, telemetry.NewEmitter(store))
	server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr}, web.NewHandler(service))
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

func openStore(path string) (*recipesqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := recipesqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open recipes sqlite store: %w", err)
	}
	return store, nil
}
