// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/catalograph/catalograph/internal/models"
)

// ErrNotFound is returned when a named title is not in the catalog.
var ErrNotFound = errors.New("title not found")

// ErrAlreadyExists is returned when adding a title that is already present.
var ErrAlreadyExists = errors.New("title already exists")

const searchTitlesCypher = `
MATCH (n)
WHERE (n:Movie OR n:TVShow)
  AND ($q = '' OR toLower(n.title) CONTAINS toLower($q))
RETURN n.show_id AS show_id,
       n.title AS title,
       labels(n) AS labels,
       n.release_year AS release_year,
       n.rating AS rating,
       n.duration AS duration
ORDER BY n.title ASC
LIMIT $limit`

// SearchTitles returns catalog items whose title contains the query,
// case-insensitively. An empty query lists the catalog alphabetically.
func (s *Store) SearchTitles(ctx context.Context, query string, limit int) ([]models.Title, error) {
	records, err := s.readRecords(ctx, "search_titles", searchTitlesCypher, map[string]any{
		"q":     query,
		"limit": limit,
	})
	if err != nil {
		return nil, err
	}

	titles := make([]models.Title, 0, len(records))
	for _, rec := range records {
		title, err := decodeTitle(rec)
		if err != nil {
			return nil, fmt.Errorf("decoding title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, nil
}

const titleDetailCypher = `
MATCH (n {title: $title})
WHERE n:Movie OR n:TVShow
OPTIONAL MATCH (n)-[:BELONGS_TO_GENRE]->(g:Genre)
OPTIONAL MATCH (a:Actor)-[:ACTED_IN]->(n)
OPTIONAL MATCH (d:Director)-[:DIRECTED]->(n)
OPTIONAL MATCH (n)-[:RELEASED_IN]->(c:Country)
RETURN n.show_id AS show_id,
       n.title AS title,
       labels(n) AS labels,
       n.release_year AS release_year,
       n.rating AS rating,
       n.duration AS duration,
       collect(DISTINCT g.name) AS genres,
       collect(DISTINCT a.name) AS actors,
       collect(DISTINCT d.name) AS directors,
       collect(DISTINCT c.name) AS countries`

// GetTitleDetail returns a title with its relationships. Returns
// ErrNotFound if the title is not in the catalog.
func (s *Store) GetTitleDetail(ctx context.Context, title string) (*models.TitleDetail, error) {
	records, err := s.readRecords(ctx, "title_detail", titleDetailCypher, map[string]any{
		"title": title,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, title)
	}

	rec := records[0]
	base, err := decodeTitle(rec)
	if err != nil {
		return nil, fmt.Errorf("decoding title detail: %w", err)
	}

	detail := &models.TitleDetail{Title: base}
	for _, f := range []struct {
		key  string
		dest *[]string
	}{
		{"genres", &detail.Genres},
		{"actors", &detail.Actors},
		{"directors", &detail.Directors},
		{"countries", &detail.Countries},
	} {
		vals, err := stringSliceField(rec, f.key)
		if err != nil {
			return nil, fmt.Errorf("decoding title detail: %w", err)
		}
		*f.dest = vals
	}

	return detail, nil
}

const addTitleCypherTemplate = `
CREATE (n:%s {title: $title})
SET n.show_id = $show_id,
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
RETURN n.title AS title`

const titleExistsCypher = `
MATCH (n {title: $title})
WHERE n:Movie OR n:TVShow
RETURN n.title AS title
LIMIT 1`

// AddTitle creates a new catalog item with its relationships. People,
// genres and countries are merged by name, so referencing an existing
// actor attaches the new item to the existing node. Returns
// ErrAlreadyExists when a movie or show with the same title is present.
func (s *Store) AddTitle(ctx context.Context, req *models.AddTitleRequest) error {
	label, err := labelForType(req.Type)
	if err != nil {
		return err
	}

	existing, err := s.readRecords(ctx, "title_exists", titleExistsCypher, map[string]any{
		"title": req.Title,
	})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, req.Title)
	}

	cypher := fmt.Sprintf(addTitleCypherTemplate, label)
	_, err = s.writeRecords(ctx, "add_title", cypher, map[string]any{
		"title":        req.Title,
		"show_id":      req.ShowID,
		"release_year": req.ReleaseYear,
		"rating":       req.Rating,
		"duration":     req.Duration,
		"genres":       emptyIfNil(req.Genres),
		"actors":       emptyIfNil(req.Actors),
		"directors":    emptyIfNil(req.Directors),
		"countries":    emptyIfNil(req.Countries),
	})
	if err != nil {
		// The uniqueness constraint closes the check-then-create race.
		if neo4j.IsNeo4jError(err) && isConstraintViolation(err) {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, req.Title)
		}
		return err
	}

	s.logger.Info().Str("title", req.Title).Str("type", req.Type).Msg("Title added")
	return nil
}

// decodeTitle extracts the shared item fields from a record.
func decodeTitle(rec *neo4j.Record) (models.Title, error) {
	var t models.Title
	var err error

	if t.ShowID, err = stringField(rec, "show_id"); err != nil {
		return t, err
	}
	if t.Title, err = stringField(rec, "title"); err != nil {
		return t, err
	}
	if t.ReleaseYear, err = intField(rec, "release_year"); err != nil {
		return t, err
	}
	if t.Rating, err = stringField(rec, "rating"); err != nil {
		return t, err
	}
	if t.Duration, err = intField(rec, "duration"); err != nil {
		return t, err
	}

	labels, err := labelsField(rec, "labels")
	if err != nil {
		return t, err
	}
	t.Type = typeForLabels(labels)

	return t, nil
}

func emptyIfNil(vals []string) []string {
	if vals == nil {
		return []string{}
	}
	return vals
}

func isConstraintViolation(err error) bool {
	var neoErr *neo4j.Neo4jError
	if !errors.As(err, &neoErr) {
		return false
	}
	return neoErr.Code == "Neo.ClientError.Schema.ConstraintValidationFailed"
}
