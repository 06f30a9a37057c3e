// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// schemaConstraints enforce name/title uniqueness per label. People,
// genres and countries are merged by name during import, so uniqueness
// is load-bearing, not just hygiene.
var schemaConstraints = []string{
	"CREATE CONSTRAINT movie_title_unique IF NOT EXISTS FOR (m:Movie) REQUIRE m.title IS UNIQUE",
	"CREATE CONSTRAINT tvshow_title_unique IF NOT EXISTS FOR (t:TVShow) REQUIRE t.title IS UNIQUE",
	"CREATE CONSTRAINT actor_name_unique IF NOT EXISTS FOR (a:Actor) REQUIRE a.name IS UNIQUE",
	"CREATE CONSTRAINT director_name_unique IF NOT EXISTS FOR (d:Director) REQUIRE d.name IS UNIQUE",
	"CREATE CONSTRAINT genre_name_unique IF NOT EXISTS FOR (g:Genre) REQUIRE g.name IS UNIQUE",
	"CREATE CONSTRAINT country_name_unique IF NOT EXISTS FOR (c:Country) REQUIRE c.name IS UNIQUE",
}

// schemaIndexes speed up the analytics filters on item properties.
var schemaIndexes = []string{
	"CREATE INDEX movie_release_year IF NOT EXISTS FOR (m:Movie) ON (m.release_year)",
	"CREATE INDEX movie_rating IF NOT EXISTS FOR (m:Movie) ON (m.rating)",
	"CREATE INDEX movie_duration IF NOT EXISTS FOR (m:Movie) ON (m.duration)",
	"CREATE INDEX tvshow_release_year IF NOT EXISTS FOR (t:TVShow) ON (t.release_year)",
	"CREATE INDEX tvshow_rating IF NOT EXISTS FOR (t:TVShow) ON (t.rating)",
	"CREATE INDEX tvshow_duration IF NOT EXISTS FOR (t:TVShow) ON (t.duration)",
}

// EnsureSchema provisions uniqueness constraints and property indexes.
// All statements are idempotent, so running it on every startup is safe.
func (s *Store) EnsureSchema(ctx context.Context) error {
	session := s.session(ctx, neo4j.AccessModeWrite)
	defer session.Close(ctx)

	statements := make([]string, 0, len(schemaConstraints)+len(schemaIndexes))
	statements = append(statements, schemaConstraints...)
	statements = append(statements, schemaIndexes...)

	for _, stmt := range statements {
		// Schema statements need their own implicit transactions; they
		// cannot be batched into one managed transaction.
		if _, err := session.Run(ctx, stmt, nil); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}

	s.logger.Info().
		Int("constraints", len(schemaConstraints)).
		Int("indexes", len(schemaIndexes)).
		Msg("Schema provisioned")
	return nil
}
