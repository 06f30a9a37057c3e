// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package recommend

import "fmt"

// Weights defines the relative contribution of each feature overlap to the
// similarity score. Weights are absolute multipliers, not normalized.
type Weights struct {
	// Genre is the multiplier for shared genres.
	Genre float64 `json:"genre"`

	// Actor is the multiplier for shared cast members.
	Actor float64 `json:"actor"`

	// Director is the multiplier for shared directors.
	Director float64 `json:"director"`
}

// Limits contains operational limits for the scorer.
type Limits struct {
	// DefaultK is the number of recommendations returned when the caller
	// does not specify one.
	DefaultK int `json:"default_k"`

	// MaxK caps the number of recommendations a caller may request.
	MaxK int `json:"max_k"`

	// MaxCandidates caps how many candidates are fetched from the graph
	// before scoring. Must be at least MaxK.
	MaxCandidates int `json:"max_candidates"`
}

// Config contains all configuration for the similarity scorer.
type Config struct {
	Weights Weights `json:"weights"`
	Limits  Limits  `json:"limits"`
}

// DefaultConfig returns the established catalog ranking: shared genres
// count double, shared cast and crew count one and a half, ten results.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Genre:    2.0,
			Actor:    1.5,
			Director: 1.5,
		},
		Limits: Limits{
			DefaultK:      10,
			MaxK:          50,
			MaxCandidates: 500,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	w := c.Weights
	if w.Genre < 0 || w.Actor < 0 || w.Director < 0 {
		return fmt.Errorf("weights must be non-negative, got genre=%v actor=%v director=%v",
			w.Genre, w.Actor, w.Director)
	}
	if w.Genre == 0 && w.Actor == 0 && w.Director == 0 {
		return fmt.Errorf("at least one weight must be positive")
	}

	l := c.Limits
	if l.DefaultK < 1 {
		return fmt.Errorf("default_k must be positive, got %d", l.DefaultK)
	}
	if l.MaxK < l.DefaultK {
		return fmt.Errorf("max_k (%d) must be >= default_k (%d)", l.MaxK, l.DefaultK)
	}
	if l.MaxCandidates < l.MaxK {
		return fmt.Errorf("max_candidates (%d) must be >= max_k (%d)", l.MaxCandidates, l.MaxK)
	}

	return nil
}
