// Package main provides the entry point for the TeamFlow API server.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/teamflow/pms/internal/config"
	"github.com/teamflow/pms/internal/seed"
	"github.com/teamflow/pms/internal/server"
	"github.com/teamflow/pms/internal/store"
)

var Version = "dev"

func main() {
	settingsPath := flag.String("settings", "settings.json", "path to the settings file")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	if cfg.TokenSecret == "" {
		cfg.TokenSecret = "dev-only-secret"
		log.Warn().Msg("PMS_TOKEN_SECRET not set, using development secret")
	}

	log.Info().
		Str("version", Version).
		Int("port", cfg.Port).
		Msg("Starting TeamFlow API server")

	st, err := store.New(seed.Default)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load seed data")
	}

	svc := server.NewService(Version, cfg, st)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(svc.Start)
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return svc.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server exited with error")
	}
	log.Info().Msg("Server shutdown complete")
}
