// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package recommend implements content-based similarity scoring for catalog items.

Given a selected title, the scorer ranks other catalog items by weighted
feature overlap:

	score = genre_overlap*W_genre + actor_overlap*W_actor + director_overlap*W_director

with default weights 2.0 / 1.5 / 1.5. Candidates must share at least one
genre with the selected title; overlap counts come from the graph store
through the GraphSource interface. The selected title itself is never a
candidate, and a title absent from the catalog yields an empty result
rather than an error.

Results are ordered by score descending; ties break on title ascending so
repeated requests return identical rankings.

This package has no dependencies on other internal packages. The
GraphSource interface allows integration with the graph package without
creating circular imports.
*/
package recommend
