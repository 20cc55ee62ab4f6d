// Package main starts the browser-facing RecipeAI web service.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/rachel-higgins/RecipeAI/internal/cmd/web"
	platformcmd "github.com/rachel-higgins/RecipeAI/internal/platform/cmd"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[WEB] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		return webcmd.Run(ctx, cfg)
	})
	if err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
