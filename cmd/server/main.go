// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Command server runs the Catalograph HTTP API.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/catalograph/catalograph/internal/api"
	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/graph"
	"github.com/catalograph/catalograph/internal/logging"
	"github.com/catalograph/catalograph/internal/recommend"
	"github.com/catalograph/catalograph/internal/supervisor"
	"github.com/catalograph/catalograph/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Msg("Starting Catalograph")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := graph.New(ctx, graph.Config{
		URI:                cfg.Graph.URI,
		Username:           cfg.Graph.Username,
		Password:           cfg.Graph.Password,
		Database:           cfg.Graph.Database,
		ConnectTimeout:     cfg.Graph.ConnectTimeout,
		QueryTimeout:       cfg.Graph.QueryTimeout,
		BreakerMaxFailures: cfg.Graph.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.Graph.BreakerOpenTimeout,
	}, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to graph store")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logging.Error().Err(err).Msg("Failed to close graph store")
		}
	}()

	if cfg.Graph.EnsureSchema {
		if err := store.EnsureSchema(ctx); err != nil {
			logging.Fatal().Err(err).Msg("Failed to provision schema")
		}
	}

	store.SetSimilarityWeights(graph.SimilarityWeights{
		Genre:    cfg.Recommend.GenreWeight,
		Actor:    cfg.Recommend.ActorWeight,
		Director: cfg.Recommend.DirectorWeight,
	})

	scorer, err := recommend.NewScorer(&recommend.Config{
		Weights: recommend.Weights{
			Genre:    cfg.Recommend.GenreWeight,
			Actor:    cfg.Recommend.ActorWeight,
			Director: cfg.Recommend.DirectorWeight,
		},
		Limits: recommend.Limits{
			DefaultK:      cfg.Recommend.DefaultLimit,
			MaxK:          cfg.Recommend.MaxLimit,
			MaxCandidates: cfg.Recommend.MaxCandidates,
		},
	}, store, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation scorer")
	}

	handler := api.NewHandler(store, scorer, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	// Bridge zerolog to slog for supervisor event logging.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddGraphService(services.NewGraphWatchdog(store, 30*time.Second, logging.Logger()))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))

	logging.Info().Str("addr", server.Addr).Msg("HTTP server starting")

	if err := tree.Serve(ctx); err != nil && ctx.Err() == nil {
		logging.Fatal().Err(err).Msg("Supervisor tree failed")
	}

	logging.Info().Msg("Shutdown complete")
}
