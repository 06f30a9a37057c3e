// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/catalograph/catalograph/internal/metrics"
)

// Recommendations returns titles similar to the named title, scored by
// weighted genre, cast and director overlap. A title not in the catalog
// yields an empty list, matching how the dashboard treats a cleared
// selection. limit defaults to the configured result count and is
// clamped to its maximum.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	title := chi.URLParam(r, "title")
	if title == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "title is required", nil)
		return
	}

	limit := getIntParam(r, "limit", 0)
	if limit < 0 || limit > h.cfg.Recommend.MaxLimit {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"limit must be between 1 and "+strconv.Itoa(h.cfg.Recommend.MaxLimit), nil)
		return
	}

	recs, err := h.recommender.Recommend(r.Context(), title, limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}

	metrics.RecordRecommendation(time.Since(start), len(recs))

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"title":           title,
		"recommendations": recs,
		"count":           len(recs),
	}, time.Since(start))
}
