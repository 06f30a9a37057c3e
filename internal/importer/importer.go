// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/catalograph/catalograph/internal/metrics"
	"github.com/catalograph/catalograph/internal/models"
)

// TitleWriter persists one cleaned record. Implemented by the graph store.
type TitleWriter interface {
	UpsertTitle(ctx context.Context, rec *models.AddTitleRequest) error
}

// Config holds import pipeline settings.
type Config struct {
	// ProgressInterval is how often a progress line is logged.
	ProgressInterval time.Duration

	// MaxErrors aborts the run once this many records have failed.
	// Zero means individual failures are logged and skipped without limit.
	MaxErrors int
}

// Stats summarizes an import run.
type Stats struct {
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Importer drives the one-shot import of cleaned records into the graph.
type Importer struct {
	writer TitleWriter
	cfg    Config
	logger zerolog.Logger
}

// New creates an importer writing through the given TitleWriter.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(writer TitleWriter, cfg Config, logger zerolog.Logger) (*Importer, error) {
	if writer == nil {
		return nil, fmt.Errorf("title writer is required")
	}
	if cfg.ProgressInterval <= 0 {
		cfg.ProgressInterval = 5 * time.Second
	}

	return &Importer{
		writer: writer,
		cfg:    cfg,
		logger: logger.With().Str("component", "importer").Logger(),
	}, nil
}

// Run upserts every record in order, merging by show_id. Individual
// record failures are logged and counted; the run continues unless
// MaxErrors is exceeded or the context is canceled.
func (imp *Importer) Run(ctx context.Context, records []*models.AddTitleRequest) (Stats, error) {
	start := time.Now()
	stats := Stats{}
	lastProgress := start

	imp.logger.Info().Int("records", len(records)).Msg("Import started")

	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			stats.Elapsed = time.Since(start)
			return stats, fmt.Errorf("import canceled after %d records: %w", stats.Processed, err)
		}

		if err := imp.writer.UpsertTitle(ctx, rec); err != nil {
			stats.Failed++
			metrics.ImportErrors.Inc()
			imp.logger.Error().Err(err).
				Str("show_id", rec.ShowID).
				Str("title", rec.Title).
				Msg("Record failed")

			if imp.cfg.MaxErrors > 0 && stats.Failed >= imp.cfg.MaxErrors {
				stats.Elapsed = time.Since(start)
				return stats, fmt.Errorf("aborting after %d failed records", stats.Failed)
			}
			continue
		}

		stats.Processed++
		metrics.ImportRecordsProcessed.Inc()

		if time.Since(lastProgress) >= imp.cfg.ProgressInterval {
			imp.logger.Info().
				Int("done", i+1).
				Int("total", len(records)).
				Int("failed", stats.Failed).
				Msg("Import progress")
			lastProgress = time.Now()
		}
	}

	stats.Elapsed = time.Since(start)
	imp.logger.Info().
		Int("processed", stats.Processed).
		Int("failed", stats.Failed).
		Dur("elapsed", stats.Elapsed).
		Msg("Import finished")

	return stats, nil
}
