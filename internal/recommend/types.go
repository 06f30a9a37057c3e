// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package recommend

import "context"

// Candidate is a catalog item that shares at least one genre with the
// selected title, along with its raw feature overlap counts.
type Candidate struct {
	Title    string
	Year     int64
	Rating   string
	Duration int64

	// Overlap counts with the selected title. GenreOverlap is always
	// at least 1: items without a shared genre are not candidates.
	GenreOverlap    int64
	ActorOverlap    int64
	DirectorOverlap int64
}

// Recommendation is a scored candidate as returned to callers.
type Recommendation struct {
	Title    string  `json:"title"`
	Year     int64   `json:"release_year"`
	Rating   string  `json:"rating,omitempty"`
	Duration int64   `json:"duration"`
	Score    float64 `json:"similarity_score"`
}

// GraphSource supplies similarity candidates for a selected title.
// Implemented by the graph store.
type GraphSource interface {
	// SimilarCandidates returns up to max candidates sharing at least one
	// genre with the named title, with overlap counts filled in. A title
	// not present in the catalog yields an empty slice and no error.
	SimilarCandidates(ctx context.Context, title string, max int) ([]Candidate, error)
}
