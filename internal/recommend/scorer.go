// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package recommend

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"
)

// Scorer ranks catalog items by weighted feature overlap with a selected
// title. It is stateless apart from its configuration and safe for
// concurrent use.
type Scorer struct {
	config *Config
	logger zerolog.Logger
	source GraphSource
}

// NewScorer creates a similarity scorer backed by the given graph source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(cfg *Config, source GraphSource, logger zerolog.Logger) (*Scorer, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("graph source is required")
	}

	return &Scorer{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
		source: source,
	}, nil
}

// Recommend returns up to k titles similar to the named title, ordered by
// similarity score descending with ties broken on title ascending.
//
// k <= 0 selects the configured default; k above the configured maximum is
// clamped to it. A title absent from the catalog (or one with no genre
// assignments) yields an empty slice, not an error. Errors are returned
// only for candidate retrieval failures.
func (s *Scorer) Recommend(ctx context.Context, title string, k int) ([]Recommendation, error) {
	k = s.clampK(k)

	candidates, err := s.source.SimilarCandidates(ctx, title, s.config.Limits.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("fetching candidates for %q: %w", title, err)
	}

	recs := s.score(title, candidates)

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Title < recs[j].Title
	})

	if len(recs) > k {
		recs = recs[:k]
	}

	s.logger.Debug().
		Str("title", title).
		Int("candidates", len(candidates)).
		Int("returned", len(recs)).
		Msg("Scored recommendations")

	return recs, nil
}

// clampK resolves the requested result count against the configured limits.
func (s *Scorer) clampK(k int) int {
	limits := s.config.Limits
	if k <= 0 {
		return limits.DefaultK
	}
	if k > limits.MaxK {
		return limits.MaxK
	}
	return k
}

// score converts candidates to scored recommendations. The selected title
// is skipped if the source ever returns it as its own candidate, as is
// any candidate without a shared genre: the genre join is the candidate
// generator, so shared people alone never qualify an item.
func (s *Scorer) score(selected string, candidates []Candidate) []Recommendation {
	w := s.config.Weights
	recs := make([]Recommendation, 0, len(candidates))

	for _, c := range candidates {
		if c.Title == selected {
			continue
		}
		if c.GenreOverlap < 1 {
			continue
		}

		score := float64(c.GenreOverlap)*w.Genre +
			float64(c.ActorOverlap)*w.Actor +
			float64(c.DirectorOverlap)*w.Director

		recs = append(recs, Recommendation{
			Title:    c.Title,
			Year:     c.Year,
			Rating:   c.Rating,
			Duration: c.Duration,
			Score:    score,
		})
	}

	return recs
}
