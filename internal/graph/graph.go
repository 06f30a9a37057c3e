// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/catalograph/catalograph/internal/metrics"
	"github.com/catalograph/catalograph/internal/models"
)

// ErrUnavailable wraps failures caused by the circuit breaker rejecting
// a query while the database is considered down.
var ErrUnavailable = errors.New("graph store unavailable")

// Config holds connection settings for the graph store.
type Config struct {
	URI      string
	Username string
	Password string

	// Database selects the target database. Empty uses the server default.
	Database string

	ConnectTimeout time.Duration
	QueryTimeout   time.Duration

	// BreakerMaxFailures consecutive failures open the circuit;
	// BreakerOpenTimeout is how long it stays open before probing.
	BreakerMaxFailures uint32
	BreakerOpenTimeout time.Duration
}

// Store is the Neo4j-backed catalog store. It is safe for concurrent use;
// each operation runs in its own short-lived session.
type Store struct {
	driver  neo4j.DriverWithContext
	cfg     Config
	logger  zerolog.Logger
	breaker *gobreaker.CircuitBreaker[[]*neo4j.Record]

	similarityWeights SimilarityWeights
}

// New connects to Neo4j, verifies connectivity and returns a ready Store.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Store, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("graph URI is required")
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 15 * time.Second
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}

	driver, err := neo4j.NewDriverWithContext(
		cfg.URI,
		neo4j.BasicAuth(cfg.Username, cfg.Password, ""),
	)
	if err != nil {
		return nil, fmt.Errorf("creating neo4j driver: %w", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := driver.VerifyConnectivity(connectCtx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("connecting to neo4j at %s: %w", cfg.URI, err)
	}

	log := logger.With().Str("component", "graph").Logger()

	s := &Store{
		driver: driver,
		cfg:    cfg,
		logger: log,
	}
	s.breaker = newBreaker(cfg, log)

	log.Info().Str("uri", cfg.URI).Str("database", cfg.Database).Msg("Connected to graph store")
	return s, nil
}

// newBreaker builds the circuit breaker protecting query execution.
// The breaker trips on consecutive failures rather than a failure ratio:
// catalog traffic is low enough that ratio-based tripping would need an
// impractically long measurement window.
func newBreaker(cfg Config, log zerolog.Logger) *gobreaker.CircuitBreaker[[]*neo4j.Record] {
	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	openTimeout := cfg.BreakerOpenTimeout
	if openTimeout <= 0 {
		openTimeout = 30 * time.Second
	}

	const name = "neo4j"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[[]*neo4j.Record](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			log.Warn().Str("from", fromStr).Str("to", toStr).Msg("Graph circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})
}

func stateToString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// Close releases the underlying driver.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// Ping verifies connectivity to the database.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ConnectTimeout)
	defer cancel()
	return s.driver.VerifyConnectivity(ctx)
}

// IsUnavailable reports whether err came from a rejected breaker call
// rather than a failed query.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests)
}

// session opens a short-lived session bound to the configured database.
func (s *Store) session(ctx context.Context, mode neo4j.AccessMode) neo4j.SessionWithContext {
	return s.driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: s.cfg.Database,
	})
}

// readRecords runs a read transaction and collects the full result set.
// The operation name labels metrics and log lines.
func (s *Store) readRecords(ctx context.Context, operation, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	return s.runRecords(ctx, operation, cypher, params, neo4j.AccessModeRead)
}

// writeRecords runs a write transaction and collects the full result set.
func (s *Store) writeRecords(ctx context.Context, operation, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	return s.runRecords(ctx, operation, cypher, params, neo4j.AccessModeWrite)
}

func (s *Store) runRecords(ctx context.Context, operation, cypher string, params map[string]any, mode neo4j.AccessMode) ([]*neo4j.Record, error) {
	start := time.Now()

	records, err := s.breaker.Execute(func() ([]*neo4j.Record, error) {
		queryCtx, cancel := context.WithTimeout(ctx, s.cfg.QueryTimeout)
		defer cancel()

		session := s.session(queryCtx, mode)
		defer session.Close(queryCtx)

		work := func(tx neo4j.ManagedTransaction) (any, error) {
			result, err := tx.Run(queryCtx, cypher, params)
			if err != nil {
				return nil, err
			}
			return result.Collect(queryCtx)
		}

		var raw any
		var err error
		if mode == neo4j.AccessModeRead {
			raw, err = session.ExecuteRead(queryCtx, work)
		} else {
			raw, err = session.ExecuteWrite(queryCtx, work)
		}
		if err != nil {
			return nil, err
		}
		return raw.([]*neo4j.Record), nil
	})

	metrics.RecordGraphQuery(operation, time.Since(start), err)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			s.logger.Warn().Str("operation", operation).Msg("Query rejected, circuit open")
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, operation)
		}
		s.logger.Error().Err(err).Str("operation", operation).Msg("Query failed")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	return records, nil
}

// labelForType maps the human-facing item type to its node label.
// Labels cannot be parameterized in Cypher, so the label is validated
// here and interpolated by the callers.
func labelForType(itemType string) (string, error) {
	switch itemType {
	case models.TypeMovie:
		return "Movie", nil
	case models.TypeTVShow:
		return "TVShow", nil
	default:
		return "", fmt.Errorf("unknown item type %q", itemType)
	}
}

// typeForLabels derives the item type from a node's labels.
func typeForLabels(labels []string) string {
	for _, l := range labels {
		if l == "TVShow" {
			return models.TypeTVShow
		}
	}
	return models.TypeMovie
}
