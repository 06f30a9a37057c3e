// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Pinger verifies connectivity to the catalog database.
// Satisfied by *graph.Store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// GraphWatchdog periodically pings the graph store and logs transitions
// between reachable and unreachable. It never fails the supervisor on a
// lost connection; the circuit breaker handles request-path behavior,
// the watchdog only gives operators a clear signal in the logs.
type GraphWatchdog struct {
	store    Pinger
	interval time.Duration
	logger   zerolog.Logger
}

// NewGraphWatchdog creates a watchdog pinging at the given interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGraphWatchdog(store Pinger, interval time.Duration, logger zerolog.Logger) *GraphWatchdog {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &GraphWatchdog{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("component", "graph-watchdog").Logger(),
	}
}

// Serve implements suture.Service.
func (g *GraphWatchdog) Serve(ctx context.Context) error {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := g.store.Ping(ctx)
			switch {
			case err != nil && healthy:
				healthy = false
				g.logger.Error().Err(err).Msg("Graph store unreachable")
			case err == nil && !healthy:
				healthy = true
				g.logger.Info().Msg("Graph store reachable again")
			}
		}
	}
}

func (g *GraphWatchdog) String() string {
	return "graph-watchdog"
}
