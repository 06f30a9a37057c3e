// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package models defines data structures for the Catalograph application.

This package contains the data models shared across the graph store, the
recommendation scorer and the HTTP API. It serves as the single source of
truth for data structure definitions.

Model Categories:

1. Catalog Models:
  - Title: a catalog item (movie or TV show) as listed
  - TitleDetail: a Title with its genres, cast, directors and countries
  - Overview: node and relationship counts for the dashboard landing page

2. Analytics Models:
  - PersonTitleCount, ActorCollaboration, DirectorActorCollaboration
  - GenreCount, GenreCombination, CountryGenreCount, GenreTrendPoint

3. API Request/Response Models:
  - APIResponse: standard response wrapper
  - APIError: error details
  - Metadata: response metadata (timestamp, query time)
  - AddTitleRequest: body for creating a catalog item

Design Principles:

  - JSON tags on every exported field; snake_case wire names
  - Duration carries minutes for movies and seasons for TV shows,
    matching how the source data encodes it
  - No behavior beyond plain data; queries live in internal/graph
*/
package models
