// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/catalograph/catalograph/internal/recommend"
)

// Similarity weights used for DB-side candidate pre-ranking. Set once
// from the recommendation config so the candidate cut and the final
// scoring agree on what "most similar" means.
type SimilarityWeights struct {
	Genre    float64
	Actor    float64
	Director float64
}

// SetSimilarityWeights configures the weights applied when pre-ranking
// candidates inside the database. Call before serving traffic.
func (s *Store) SetSimilarityWeights(w SimilarityWeights) {
	s.similarityWeights = w
}

// similarCandidatesCypher walks the genre projection first: only items
// sharing at least one genre with the selected title are candidates.
// Actor and director overlaps come from optional pattern matches, so a
// candidate without shared people still scores on genres alone. The
// ORDER BY mirrors the weighted score so the LIMIT keeps the strongest
// candidates when the genre neighborhood is larger than the cap.
const similarCandidatesCypher = `
MATCH (s {title: $title})-[:BELONGS_TO_GENRE]->(g:Genre)<-[:BELONGS_TO_GENRE]-(o)
WHERE (s:Movie OR s:TVShow)
  AND (o:Movie OR o:TVShow)
  AND o.title <> $title
WITH s, o, count(DISTINCT g) AS genre_overlap
OPTIONAL MATCH (a:Actor)-[:ACTED_IN]->(s)
WHERE (a)-[:ACTED_IN]->(o)
WITH s, o, genre_overlap, count(DISTINCT a) AS actor_overlap
OPTIONAL MATCH (d:Director)-[:DIRECTED]->(s)
WHERE (d)-[:DIRECTED]->(o)
WITH o, genre_overlap, actor_overlap, count(DISTINCT d) AS director_overlap
RETURN o.title AS title,
       o.release_year AS release_year,
       o.rating AS rating,
       o.duration AS duration,
       genre_overlap,
       actor_overlap,
       director_overlap
ORDER BY genre_overlap * $genre_weight
       + actor_overlap * $actor_weight
       + director_overlap * $director_weight DESC,
       title ASC
LIMIT $max_candidates`

// SimilarCandidates implements recommend.GraphSource. A title absent
// from the catalog, or present without genre assignments, matches no
// pattern and yields an empty slice.
func (s *Store) SimilarCandidates(ctx context.Context, title string, max int) ([]recommend.Candidate, error) {
	w := s.similarityWeights

	records, err := s.readRecords(ctx, "similar_candidates", similarCandidatesCypher, map[string]any{
		"title":           title,
		"genre_weight":    w.Genre,
		"actor_weight":    w.Actor,
		"director_weight": w.Director,
		"max_candidates":  max,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]recommend.Candidate, 0, len(records))
	for _, rec := range records {
		c, err := decodeCandidate(rec)
		if err != nil {
			return nil, fmt.Errorf("decoding candidate: %w", err)
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

// decodeCandidate extracts one overlap row from the candidate traversal.
func decodeCandidate(rec *neo4j.Record) (recommend.Candidate, error) {
	var c recommend.Candidate
	var err error

	if c.Title, err = stringField(rec, "title"); err != nil {
		return c, err
	}
	if c.Year, err = intField(rec, "release_year"); err != nil {
		return c, err
	}
	if c.Rating, err = stringField(rec, "rating"); err != nil {
		return c, err
	}
	if c.Duration, err = intField(rec, "duration"); err != nil {
		return c, err
	}
	if c.GenreOverlap, err = intField(rec, "genre_overlap"); err != nil {
		return c, err
	}
	if c.ActorOverlap, err = intField(rec, "actor_overlap"); err != nil {
		return c, err
	}
	if c.DirectorOverlap, err = intField(rec, "director_overlap"); err != nil {
		return c, err
	}

	return c, nil
}
