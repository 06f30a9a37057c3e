// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)

	assert.Equal(t, 2.0, cfg.Recommend.GenreWeight)
	assert.Equal(t, 1.5, cfg.Recommend.ActorWeight)
	assert.Equal(t, 1.5, cfg.Recommend.DirectorWeight)
	assert.Equal(t, 10, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 50, cfg.Recommend.MaxLimit)

	assert.Equal(t, "neo4j", cfg.Graph.Username)
	assert.Equal(t, 15*time.Second, cfg.Graph.QueryTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://graph.internal:7687")
	t.Setenv("NEO4J_PASSWORD", "s3cret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_GENRE_WEIGHT", "3.0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "neo4j://graph.internal:7687", cfg.Graph.URI)
	assert.Equal(t, "s3cret", cfg.Graph.Password)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 3.0, cfg.Recommend.GenreWeight)

	// Untouched settings keep their defaults.
	assert.Equal(t, 10, cfg.Recommend.DefaultLimit)
	assert.Equal(t, 1.5, cfg.Recommend.ActorWeight)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9999
graph:
  uri: neo4j://file-configured:7687
  password: from-file
recommend:
  default_limit: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "neo4j://file-configured:7687", cfg.Graph.URI)
	assert.Equal(t, 5, cfg.Recommend.DefaultLimit)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
graph:
  uri: neo4j://from-file:7687
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("GRAPH_URI", "neo4j://from-env:7687")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "neo4j://from-env:7687", cfg.Graph.URI)
}

func TestLoad_CORSOriginsFromEnv(t *testing.T) {
	t.Setenv("NEO4J_URI", "neo4j://localhost:7687")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		cfg.Security.CORSOrigins)
}

func TestLoad_MissingGraphURI(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "graph.uri")
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"NEO4J_URI", "graph.uri"},
		{"NEO4J_USER", "graph.username"},
		{"GRAPH_PASSWORD", "graph.password"},
		{"HTTP_PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"RECOMMEND_MAX_LIMIT", "recommend.max_limit"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			assert.Equal(t, tt.want, envTransformFunc(tt.env))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaultConfig()
		cfg.Graph.URI = "neo4j://localhost:7687"
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		cfg := valid()
		cfg.Server.Port = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative weight", func(t *testing.T) {
		cfg := valid()
		cfg.Recommend.ActorWeight = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("all weights zero", func(t *testing.T) {
		cfg := valid()
		cfg.Recommend.GenreWeight = 0
		cfg.Recommend.ActorWeight = 0
		cfg.Recommend.DirectorWeight = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("max limit below default", func(t *testing.T) {
		cfg := valid()
		cfg.Recommend.MaxLimit = 5
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero progress interval", func(t *testing.T) {
		cfg := valid()
		cfg.Import.ProgressInterval = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative max errors", func(t *testing.T) {
		cfg := valid()
		cfg.Import.MaxErrors = -1
		assert.Error(t, cfg.Validate())
	})
}

func TestIsDevelopment(t *testing.T) {
	cfg := defaultConfig()
	assert.True(t, cfg.IsDevelopment())
	cfg.Server.Environment = "production"
	assert.False(t, cfg.IsDevelopment())
}
