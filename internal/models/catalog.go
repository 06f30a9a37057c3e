// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package models

// Title type labels as stored in the graph. Every catalog item is either
// a Movie node or a TVShow node; the Type field carries the human-facing name.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// Title represents a single catalog item (movie or TV show) in list views.
//
// Duration semantics depend on Type:
//   - Movie: runtime in minutes
//   - TV Show: number of seasons
type Title struct {
	ShowID      string `json:"show_id,omitempty"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	ReleaseYear int64  `json:"release_year"`
	Rating      string `json:"rating,omitempty"`
	Duration    int64  `json:"duration"`
}

// TitleDetail is a Title enriched with its graph relationships.
type TitleDetail struct {
	Title
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
	Countries []string `json:"countries"`
}

// AddTitleRequest is the request body for creating a catalog item.
// Listed people, genres and countries are merged into the graph by name,
// so adding a title never duplicates existing nodes.
type AddTitleRequest struct {
	ShowID      string   `json:"show_id" validate:"omitempty,max=32"`
	Title       string   `json:"title" validate:"required,min=1,max=500"`
	Type        string   `json:"type" validate:"required,oneof=Movie 'TV Show'"`
	ReleaseYear int64    `json:"release_year" validate:"omitempty,gte=1888,lte=2100"`
	Rating      string   `json:"rating" validate:"omitempty,max=16"`
	Duration    int64    `json:"duration" validate:"omitempty,gte=0"`
	Genres      []string `json:"genres" validate:"omitempty,dive,min=1,max=100"`
	Actors      []string `json:"actors" validate:"omitempty,dive,min=1,max=200"`
	Directors   []string `json:"directors" validate:"omitempty,dive,min=1,max=200"`
	Countries   []string `json:"countries" validate:"omitempty,dive,min=1,max=100"`
}

// PersonTitleCount pairs a person's name with the number of titles they
// appear in. Used by the top-actors and top-directors analytics.
type PersonTitleCount struct {
	Name       string `json:"name"`
	TitleCount int64  `json:"title_count"`
}

// ActorCollaboration counts titles two actors share.
type ActorCollaboration struct {
	Actor      string `json:"actor"`
	CoActor    string `json:"co_actor"`
	TitleCount int64  `json:"title_count"`
}

// DirectorActorCollaboration counts titles a director and an actor made together.
type DirectorActorCollaboration struct {
	Director   string `json:"director"`
	Actor      string `json:"actor"`
	TitleCount int64  `json:"title_count"`
}

// GenreCount pairs a genre with its catalog item count.
type GenreCount struct {
	Genre      string `json:"genre"`
	TitleCount int64  `json:"title_count"`
}

// GenreCombination counts titles tagged with both genres of a pair.
type GenreCombination struct {
	Genre      string `json:"genre"`
	CoGenre    string `json:"co_genre"`
	TitleCount int64  `json:"title_count"`
}

// CountryGenreCount counts titles per country and genre.
type CountryGenreCount struct {
	Country    string `json:"country"`
	Genre      string `json:"genre"`
	TitleCount int64  `json:"title_count"`
}

// GenreTrendPoint counts titles for a genre in a single release year.
type GenreTrendPoint struct {
	Genre       string `json:"genre"`
	ReleaseYear int64  `json:"release_year"`
	TitleCount  int64  `json:"title_count"`
}

// Overview summarizes the catalog graph: node counts per label and
// relationship counts per type. Powers the dashboard landing page.
type Overview struct {
	Movies        int64            `json:"movies"`
	TVShows       int64            `json:"tv_shows"`
	Actors        int64            `json:"actors"`
	Directors     int64            `json:"directors"`
	Genres        int64            `json:"genres"`
	Countries     int64            `json:"countries"`
	Relationships map[string]int64 `json:"relationships"`
}
