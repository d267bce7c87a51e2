// ShelterScout - Emergency Shelter Recommendation Service
// Copyright 2026 The ShelterScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command server runs the shelter recommendation HTTP service.
//
// Startup order: configuration, logging, shelter registry, feature
// provider (optionally behind a circuit breaker), ranking pipeline,
// HTTP router. The server drains in-flight requests on SIGINT/SIGTERM
// before exiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelterscout/internal/api"
	"shelterscout/internal/config"
	"shelterscout/internal/logging"
	"shelterscout/internal/rank"
	"shelterscout/internal/shelter"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	registry := shelter.NewFileStore(cfg.Shelter.CSVPath, logger)

	var features rank.FeatureProvider = rank.NewRandomFeatureProvider(cfg.Ranking.FeatureSeed)
	if cfg.Ranking.BreakerEnabled {
		features = rank.NewBreakerFeatureProvider(features, rank.BreakerConfig{
			MaxFailures: cfg.Ranking.BreakerMaxFailures,
			Timeout:     cfg.Ranking.BreakerTimeout,
		})
	}

	pipeline := rank.NewPipeline(registry, features, nil, cfg.Ranking.NearestK, logger)
	router := api.NewRouter(api.NewHandler(pipeline, registry), cfg.Security)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", server.Addr).
			Str("csv_path", cfg.Shelter.CSVPath).
			Int("nearest_k", cfg.Ranking.NearestK).
			Msg("Server listening")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logging.Info().Msg("Server stopped")
	return nil
}
