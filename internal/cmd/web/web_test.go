package web

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("http addr = %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "data/recipes.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("RECIPEAI_WEB_HTTP_ADDR", "0.0.0.0:9090")
	t.Setenv("RECIPEAI_OPENAI_MODEL", "gpt-4o-mini")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-db-path", "/tmp/override.db"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9090" {
		t.Fatalf("expected env addr, got %q", cfg.HTTPAddr)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("expected env model, got %q", cfg.OpenAIModel)
	}
	if cfg.DBPath != "/tmp/override.db" {
		t.Fatalf("expected flag override, got %q", cfg.DBPath)
	}
}
