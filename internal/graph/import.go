// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"context"
	"fmt"

	"github.com/catalograph/catalograph/internal/models"
)

// upsertTitleCypherTemplate merges the item by show_id so re-running an
// import never duplicates nodes; properties are refreshed on every run.
const upsertTitleCypherTemplate = `
MERGE (n:%s {show_id: $show_id})
SET n.title = $title,
    n.release_year = $release_year,
    n.rating = $rating,
    n.duration = $duration
WITH n
FOREACH (genre IN $genres |
  MERGE (g:Genre {name: genre})
  MERGE (n)-[:BELONGS_TO_GENRE]->(g))
FOREACH (actor IN $actors |
  MERGE (a:Actor {name: actor})
  MERGE (a)-[:ACTED_IN]->(n))
FOREACH (director IN $directors |
  MERGE (d:Director {name: director})
  MERGE (d)-[:DIRECTED]->(n))
FOREACH (country IN $countries |
  MERGE (c:Country {name: country})
  MERGE (n)-[:RELEASED_IN]->(c))
RETURN n.show_id AS show_id`

// UpsertTitle merges a catalog item and its relationships by show_id.
// Used by the CSV import pipeline; unlike AddTitle it is idempotent.
func (s *Store) UpsertTitle(ctx context.Context, rec *models.AddTitleRequest) error {
	if rec.ShowID == "" {
		return fmt.Errorf("upsert requires a show_id (title %q)", rec.Title)
	}

	label, err := labelForType(rec.Type)
	if err != nil {
		return err
	}

	cypher := fmt.Sprintf(upsertTitleCypherTemplate, label)
	_, err = s.writeRecords(ctx, "upsert_title", cypher, map[string]any{
		"show_id":      rec.ShowID,
		"title":        rec.Title,
		"release_year": rec.ReleaseYear,
		"rating":       rec.Rating,
		"duration":     rec.Duration,
		"genres":       emptyIfNil(rec.Genres),
		"actors":       emptyIfNil(rec.Actors),
		"directors":    emptyIfNil(rec.Directors),
		"countries":    emptyIfNil(rec.Countries),
	})
	return err
}
