// Package main seeds the local RecipeAI database with fixture recipes.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	seedcmd "github.com/rachel-higgins/RecipeAI/internal/cmd/seed"
	platformcmd "github.com/rachel-higgins/RecipeAI/internal/platform/cmd"
	"github.com/rachel-higgins/RecipeAI/internal/platform/config"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[SEED] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSeed, func(ctx context.Context) error {
		return seedcmd.Run(ctx, cfg)
	})
	if err != nil {
		config.Exitf("seed recipes: %v", err)
	}
}
