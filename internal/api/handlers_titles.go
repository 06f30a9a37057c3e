// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/catalograph/catalograph/internal/logging"
	"github.com/catalograph/catalograph/internal/models"
)

// Titles searches the catalog by title substring. An empty q lists the
// catalog alphabetically up to the limit.
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	query := r.URL.Query().Get("q")
	limit := clampLimit(
		getIntParam(r, "limit", h.cfg.API.DefaultPageSize),
		h.cfg.API.DefaultPageSize,
		h.cfg.API.MaxPageSize,
	)

	titles, err := h.store.SearchTitles(r.Context(), query, limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"titles": titles,
		"count":  len(titles),
	}, time.Since(start))
}

// TitleDetail returns one title with its genres, cast, directors and
// countries. Unknown titles get a 404.
func (h *Handler) TitleDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := chi.URLParam(r, "title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "title is required", nil)
		return
	}

	detail, err := h.store.GetTitleDetail(r.Context(), title)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, detail, time.Since(start))
}

// AddTitle creates a catalog item. People, genres and countries named in
// the request merge with existing nodes by name.
func (h *Handler) AddTitle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.AddTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid JSON body", nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.store.AddTitle(r.Context(), &req); err != nil {
		respondStoreError(w, err)
		return
	}

	logger := logging.Ctx(r.Context())
	logger.Info().
		Str("title", sanitizeLogValue(req.Title)).
		Str("type", req.Type).
		Msg("Title created")

	respondSuccess(w, http.StatusCreated, map[string]string{
		"title": req.Title,
		"type":  req.Type,
	}, time.Since(start))
}
