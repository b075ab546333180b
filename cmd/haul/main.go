// Package main is the entry point for the haul dependency fetcher.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/joho/godotenv"
	"go.trai.ch/haul/cmd/haul/commands"
	"go.trai.ch/haul/internal/adapters/telemetry"
	"go.trai.ch/haul/internal/app"
	"go.trai.ch/haul/internal/build"
	"go.trai.ch/haul/internal/core/domain"
	_ "go.trai.ch/haul/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Optional .env for repository credentials (HAUL_S3_* and friends).
	_ = godotenv.Load()

	shutdown := telemetry.Setup("haul", build.Version)
	defer func() { _ = shutdown(context.Background()) }()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrFetchFailed) {
			// Per-artifact failures are already in the printed report.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
