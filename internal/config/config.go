// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Package config provides layered configuration for Catalograph using
// Koanf v2: built-in defaults, an optional YAML file, and environment
// variables (highest priority). The loaded configuration is validated
// before use; no package reads ambient environment state after startup.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration for the server and the catalogctl tool.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Graph     GraphConfig     `koanf:"graph"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Import    ImportConfig    `koanf:"import"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// GraphConfig holds Neo4j connection settings. Credentials are injected
// here at startup; no package-level connection state exists anywhere.
type GraphConfig struct {
	// URI is the bolt/neo4j connection URI, e.g. neo4j://localhost:7687
	// or neo4j+s://xxxx.databases.neo4j.io for Aura.
	URI      string `koanf:"uri"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	// Database is the target database name. Empty selects the driver default.
	Database string `koanf:"database"`

	ConnectTimeout time.Duration `koanf:"connect_timeout"`
	QueryTimeout   time.Duration `koanf:"query_timeout"`

	// EnsureSchema provisions uniqueness constraints and indexes on startup.
	EnsureSchema bool `koanf:"ensure_schema"`

	// Breaker settings for the circuit breaker wrapping query execution.
	BreakerMaxFailures uint32        `koanf:"breaker_max_failures"`
	BreakerOpenTimeout time.Duration `koanf:"breaker_open_timeout"`
}

// APIConfig holds API behavior settings.
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// RecommendConfig holds the similarity scoring weights and result limits.
// The default weights reproduce the catalog's established ranking:
// shared genres count double, shared cast and crew count one and a half.
type RecommendConfig struct {
	GenreWeight    float64 `koanf:"genre_weight"`
	ActorWeight    float64 `koanf:"actor_weight"`
	DirectorWeight float64 `koanf:"director_weight"`

	DefaultLimit  int `koanf:"default_limit"`
	MaxLimit      int `koanf:"max_limit"`
	MaxCandidates int `koanf:"max_candidates"`
}

// ImportConfig holds settings for the one-shot CSV import pipeline.
type ImportConfig struct {
	ProgressInterval time.Duration `koanf:"progress_interval"`

	// MaxErrors aborts an import run once this many records have failed.
	// Zero disables the limit.
	MaxErrors int `koanf:"max_errors"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Server.Environment, "development")
}

// Validate checks the configuration for invalid or inconsistent values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %v", c.Server.Timeout)
	}

	if c.Graph.URI == "" {
		return fmt.Errorf("graph.uri is required (set GRAPH_URI or NEO4J_URI)")
	}
	if c.Graph.QueryTimeout <= 0 {
		return fmt.Errorf("graph.query_timeout must be positive, got %v", c.Graph.QueryTimeout)
	}
	if c.Graph.ConnectTimeout <= 0 {
		return fmt.Errorf("graph.connect_timeout must be positive, got %v", c.Graph.ConnectTimeout)
	}

	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be positive, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if c.Import.ProgressInterval <= 0 {
		return fmt.Errorf("import.progress_interval must be positive, got %v", c.Import.ProgressInterval)
	}
	if c.Import.MaxErrors < 0 {
		return fmt.Errorf("import.max_errors must be non-negative, got %d", c.Import.MaxErrors)
	}

	return nil
}

func (c *Config) validateRecommend() error {
	r := &c.Recommend
	if r.GenreWeight < 0 || r.ActorWeight < 0 || r.DirectorWeight < 0 {
		return fmt.Errorf("recommend weights must be non-negative")
	}
	if r.GenreWeight == 0 && r.ActorWeight == 0 && r.DirectorWeight == 0 {
		return fmt.Errorf("at least one recommend weight must be positive")
	}
	if r.DefaultLimit < 1 {
		return fmt.Errorf("recommend.default_limit must be positive, got %d", r.DefaultLimit)
	}
	if r.MaxLimit < r.DefaultLimit {
		return fmt.Errorf("recommend.max_limit (%d) must be >= recommend.default_limit (%d)",
			r.MaxLimit, r.DefaultLimit)
	}
	if r.MaxCandidates < r.MaxLimit {
		return fmt.Errorf("recommend.max_candidates (%d) must be >= recommend.max_limit (%d)",
			r.MaxCandidates, r.MaxLimit)
	}
	return nil
}
