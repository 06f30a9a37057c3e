// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/catalograph/catalograph/internal/models"
)

// Analytics queries backing the dashboard pages. All of them aggregate
// over the whole catalog; the property indexes keep them interactive on
// catalogs of a few tens of thousands of items.

const topActorsCypher = `
MATCH (a:Actor)-[:ACTED_IN]->(n)
RETURN a.name AS name, count(n) AS title_count
ORDER BY title_count DESC, name ASC
LIMIT $limit`

// TopActors returns actors ranked by the number of titles they appear in.
func (s *Store) TopActors(ctx context.Context, limit int) ([]models.PersonTitleCount, error) {
	records, err := s.readRecords(ctx, "top_actors", topActorsCypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return decodePersonCounts(records)
}

const topDirectorsCypher = `
MATCH (d:Director)-[:DIRECTED]->(n)
RETURN d.name AS name, count(n) AS title_count
ORDER BY title_count DESC, name ASC
LIMIT $limit`

// TopDirectors returns directors ranked by the number of titles they directed.
func (s *Store) TopDirectors(ctx context.Context, limit int) ([]models.PersonTitleCount, error) {
	records, err := s.readRecords(ctx, "top_directors", topDirectorsCypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return decodePersonCounts(records)
}

const actorCollaborationsCypher = `
MATCH (a1:Actor)-[:ACTED_IN]->(n)<-[:ACTED_IN]-(a2:Actor)
WHERE a1.name < a2.name
RETURN a1.name AS actor, a2.name AS co_actor, count(n) AS title_count
ORDER BY title_count DESC, actor ASC, co_actor ASC
LIMIT $limit`

// ActorCollaborations returns actor pairs ranked by shared titles.
// Each pair appears once; the name ordering predicate halves the match.
func (s *Store) ActorCollaborations(ctx context.Context, limit int) ([]models.ActorCollaboration, error) {
	records, err := s.readRecords(ctx, "actor_collaborations", actorCollaborationsCypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}

	out := make([]models.ActorCollaboration, 0, len(records))
	for _, rec := range records {
		var c models.ActorCollaboration
		var err error
		if c.Actor, err = stringField(rec, "actor"); err != nil {
			return nil, err
		}
		if c.CoActor, err = stringField(rec, "co_actor"); err != nil {
			return nil, err
		}
		if c.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

const directorActorCollaborationsCypher = `
MATCH (d:Director)-[:DIRECTED]->(n)<-[:ACTED_IN]-(a:Actor)
RETURN d.name AS director, a.name AS actor, count(n) AS title_count
ORDER BY title_count DESC, director ASC, actor ASC
LIMIT $limit`

// DirectorActorCollaborations returns director/actor pairs ranked by
// titles made together.
func (s *Store) DirectorActorCollaborations(ctx context.Context, limit int) ([]models.DirectorActorCollaboration, error) {
	records, err := s.readRecords(ctx, "director_actor_collaborations", directorActorCollaborationsCypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}

	out := make([]models.DirectorActorCollaboration, 0, len(records))
	for _, rec := range records {
		var c models.DirectorActorCollaboration
		var err error
		if c.Director, err = stringField(rec, "director"); err != nil {
			return nil, err
		}
		if c.Actor, err = stringField(rec, "actor"); err != nil {
			return nil, err
		}
		if c.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

const titlesByDirectorCypher = `
MATCH (d:Director {name: $name})-[:DIRECTED]->(n)
RETURN n.show_id AS show_id,
       n.title AS title,
       labels(n) AS labels,
       n.release_year AS release_year,
       n.rating AS rating,
       n.duration AS duration
ORDER BY n.release_year DESC, n.title ASC`

// TitlesByDirector returns all titles directed by the named director,
// newest first. An unknown director yields an empty slice.
func (s *Store) TitlesByDirector(ctx context.Context, name string) ([]models.Title, error) {
	records, err := s.readRecords(ctx, "titles_by_director", titlesByDirectorCypher, map[string]any{"name": name})
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

const genreDistributionCypher = `
MATCH (n)-[:BELONGS_TO_GENRE]->(g:Genre)
RETURN g.name AS genre, count(n) AS title_count
ORDER BY title_count DESC, genre ASC`

// GenreDistribution returns every genre with its catalog item count.
func (s *Store) GenreDistribution(ctx context.Context) ([]models.GenreCount, error) {
	records, err := s.readRecords(ctx, "genre_distribution", genreDistributionCypher, nil)
	if err != nil {
		return nil, err
	}

	out := make([]models.GenreCount, 0, len(records))
	for _, rec := range records {
		var g models.GenreCount
		var err error
		if g.Genre, err = stringField(rec, "genre"); err != nil {
			return nil, err
		}
		if g.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

const genreCombinationsCypher = `
MATCH (g1:Genre)<-[:BELONGS_TO_GENRE]-(n)-[:BELONGS_TO_GENRE]->(g2:Genre)
WHERE g1.name < g2.name
RETURN g1.name AS genre, g2.name AS co_genre, count(n) AS title_count
ORDER BY title_count DESC, genre ASC, co_genre ASC
LIMIT $limit`

// GenreCombinations returns genre pairs ranked by co-occurrence on titles.
func (s *Store) GenreCombinations(ctx context.Context, limit int) ([]models.GenreCombination, error) {
	records, err := s.readRecords(ctx, "genre_combinations", genreCombinationsCypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}

	out := make([]models.GenreCombination, 0, len(records))
	for _, rec := range records {
		var g models.GenreCombination
		var err error
		if g.Genre, err = stringField(rec, "genre"); err != nil {
			return nil, err
		}
		if g.CoGenre, err = stringField(rec, "co_genre"); err != nil {
			return nil, err
		}
		if g.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

const genreByCountryCypher = `
MATCH (c:Country)<-[:RELEASED_IN]-(n)-[:BELONGS_TO_GENRE]->(g:Genre)
RETURN c.name AS country, g.name AS genre, count(n) AS title_count
ORDER BY title_count DESC, country ASC, genre ASC
LIMIT $limit`

// GenreByCountry returns country/genre pairs ranked by title count.
func (s *Store) GenreByCountry(ctx context.Context, limit int) ([]models.CountryGenreCount, error) {
	records, err := s.readRecords(ctx, "genre_by_country", genreByCountryCypher, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}

	out := make([]models.CountryGenreCount, 0, len(records))
	for _, rec := range records {
		var g models.CountryGenreCount
		var err error
		if g.Country, err = stringField(rec, "country"); err != nil {
			return nil, err
		}
		if g.Genre, err = stringField(rec, "genre"); err != nil {
			return nil, err
		}
		if g.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, nil
}

const genreTrendsCypher = `
MATCH (n)-[:BELONGS_TO_GENRE]->(g:Genre)
WHERE n.release_year >= $since AND n.release_year > 0
RETURN g.name AS genre, n.release_year AS release_year, count(n) AS title_count
ORDER BY g.name ASC, n.release_year ASC`

// GenreTrends returns per-year title counts for every genre from the
// given release year onward. Items without a known release year are
// excluded.
func (s *Store) GenreTrends(ctx context.Context, sinceYear int64) ([]models.GenreTrendPoint, error) {
	records, err := s.readRecords(ctx, "genre_trends", genreTrendsCypher, map[string]any{"since": sinceYear})
	if err != nil {
		return nil, err
	}

	out := make([]models.GenreTrendPoint, 0, len(records))
	for _, rec := range records {
		var p models.GenreTrendPoint
		var err error
		if p.Genre, err = stringField(rec, "genre"); err != nil {
			return nil, err
		}
		if p.ReleaseYear, err = intField(rec, "release_year"); err != nil {
			return nil, err
		}
		if p.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

const overviewNodesCypher = `
MATCH (n)
UNWIND labels(n) AS label
RETURN label, count(*) AS node_count`

const overviewRelationshipsCypher = `
MATCH ()-[r]->()
RETURN type(r) AS rel_type, count(*) AS rel_count`

// Overview returns node counts per label and relationship counts per type.
func (s *Store) Overview(ctx context.Context) (*models.Overview, error) {
	nodeRecords, err := s.readRecords(ctx, "overview_nodes", overviewNodesCypher, nil)
	if err != nil {
		return nil, err
	}
	relRecords, err := s.readRecords(ctx, "overview_relationships", overviewRelationshipsCypher, nil)
	if err != nil {
		return nil, err
	}

	overview := &models.Overview{Relationships: make(map[string]int64)}
	for _, rec := range nodeRecords {
		label, err := stringField(rec, "label")
		if err != nil {
			return nil, err
		}
		count, err := intField(rec, "node_count")
		if err != nil {
			return nil, err
		}

		switch label {
		case "Movie":
			overview.Movies = count
		case "TVShow":
			overview.TVShows = count
		case "Actor":
			overview.Actors = count
		case "Director":
			overview.Directors = count
		case "Genre":
			overview.Genres = count
		case "Country":
			overview.Countries = count
		}
	}

	for _, rec := range relRecords {
		relType, err := stringField(rec, "rel_type")
		if err != nil {
			return nil, err
		}
		count, err := intField(rec, "rel_count")
		if err != nil {
			return nil, err
		}
		overview.Relationships[relType] = count
	}

	return overview, nil
}

func decodePersonCounts(records []*neo4j.Record) ([]models.PersonTitleCount, error) {
	out := make([]models.PersonTitleCount, 0, len(records))
	for _, rec := range records {
		var p models.PersonTitleCount
		var err error
		if p.Name, err = stringField(rec, "name"); err != nil {
			return nil, err
		}
		if p.TitleCount, err = intField(rec, "title_count"); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
