// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/graph"
	"github.com/catalograph/catalograph/internal/models"
	"github.com/catalograph/catalograph/internal/recommend"
)

// GraphStore is the catalog surface the handlers need. Implemented by
// *graph.Store; tests substitute an in-memory fake.
type GraphStore interface {
	Ping(ctx context.Context) error
	Overview(ctx context.Context) (*models.Overview, error)

	SearchTitles(ctx context.Context, query string, limit int) ([]models.Title, error)
	GetTitleDetail(ctx context.Context, title string) (*models.TitleDetail, error)
	AddTitle(ctx context.Context, req *models.AddTitleRequest) error

	TopActors(ctx context.Context, limit int) ([]models.PersonTitleCount, error)
	ActorCollaborations(ctx context.Context, limit int) ([]models.ActorCollaboration, error)
	TopDirectors(ctx context.Context, limit int) ([]models.PersonTitleCount, error)
	TitlesByDirector(ctx context.Context, name string) ([]models.Title, error)
	DirectorActorCollaborations(ctx context.Context, limit int) ([]models.DirectorActorCollaboration, error)
	GenreDistribution(ctx context.Context) ([]models.GenreCount, error)
	GenreCombinations(ctx context.Context, limit int) ([]models.GenreCombination, error)
	GenreByCountry(ctx context.Context, limit int) ([]models.CountryGenreCount, error)
	GenreTrends(ctx context.Context, sinceYear int64) ([]models.GenreTrendPoint, error)
}

// Recommender scores similar titles. Implemented by *recommend.Scorer.
type Recommender interface {
	Recommend(ctx context.Context, title string, k int) ([]recommend.Recommendation, error)
}

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	store       GraphStore
	recommender Recommender
	cfg         *config.Config
}

// NewHandler creates the API handler set.
func NewHandler(store GraphStore, recommender Recommender, cfg *config.Config) *Handler {
	return &Handler{
		store:       store,
		recommender: recommender,
		cfg:         cfg,
	}
}

// respondStoreError maps a graph error to the right HTTP response.
func respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, graph.ErrNotFound):
		respondError(w, http.StatusNotFound, "NOT_FOUND", "title not found", nil)
	case errors.Is(err, graph.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "CONFLICT", "title already exists", nil)
	case graph.IsUnavailable(err):
		respondError(w, http.StatusServiceUnavailable, "GRAPH_UNAVAILABLE", "catalog database unavailable", err)
	default:
		respondError(w, http.StatusInternalServerError, "QUERY_ERROR", "query failed", err)
	}
}

// Health reports liveness and graph connectivity.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	status := "healthy"
	graphStatus := "connected"
	httpStatus := http.StatusOK

	if err := h.store.Ping(r.Context()); err != nil {
		status = "degraded"
		graphStatus = "disconnected"
		httpStatus = http.StatusServiceUnavailable
	}

	respondSuccess(w, httpStatus, map[string]string{
		"status": status,
		"graph":  graphStatus,
	}, time.Since(start))
}

// Overview returns node counts per label and relationship counts per type.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	overview, err := h.store.Overview(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, overview, time.Since(start))
}
