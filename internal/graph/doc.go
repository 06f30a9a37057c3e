// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package graph implements the Neo4j-backed catalog store.

The catalog is a property graph:

	(Movie|TVShow) -[:BELONGS_TO_GENRE]-> (Genre)
	(Actor)        -[:ACTED_IN]->         (Movie|TVShow)
	(Director)     -[:DIRECTED]->         (Movie|TVShow)
	(Movie|TVShow) -[:RELEASED_IN]->      (Country)

Item nodes carry show_id, title, release_year, rating and duration
properties; duration holds minutes for movies and seasons for TV shows.
People, genres and countries are deduplicated by name and shared across
items.

The Store opens one driver at startup and a short-lived session per
operation. All query execution flows through a circuit breaker so a
down database fails fast instead of piling up blocked requests, and
every operation observes the configured query timeout via context.

The Store implements recommend.GraphSource, keeping the scoring logic
free of any database dependency.
*/
package graph
