// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Analytics handlers backing the dashboard pages. They share a common
// shape: clamp the limit, run one aggregate query, wrap the rows.

const defaultAnalyticsLimit = 10

// TopActors returns actors ranked by title count.
func (h *Handler) TopActors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := clampLimit(getIntParam(r, "limit", defaultAnalyticsLimit), defaultAnalyticsLimit, h.cfg.API.MaxPageSize)

	actors, err := h.store.TopActors(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"actors": actors}, time.Since(start))
}

// ActorCollaborations returns actor pairs ranked by shared titles.
func (h *Handler) ActorCollaborations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := clampLimit(getIntParam(r, "limit", defaultAnalyticsLimit), defaultAnalyticsLimit, h.cfg.API.MaxPageSize)

	pairs, err := h.store.ActorCollaborations(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"collaborations": pairs}, time.Since(start))
}

// TopDirectors returns directors ranked by title count.
func (h *Handler) TopDirectors(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := clampLimit(getIntParam(r, "limit", defaultAnalyticsLimit), defaultAnalyticsLimit, h.cfg.API.MaxPageSize)

	directors, err := h.store.TopDirectors(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"directors": directors}, time.Since(start))
}

// DirectorTitles returns everything the named director directed. An
// unknown director yields an empty list rather than a 404; the dashboard
// treats it the same as a director with no catalog entries.
func (h *Handler) DirectorTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	name := chi.URLParam(r, "name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "director name is required", nil)
		return
	}

	titles, err := h.store.TitlesByDirector(r.Context(), name)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"director": name,
		"titles":   titles,
		"count":    len(titles),
	}, time.Since(start))
}

// DirectorCollaborations returns director/actor pairs ranked by titles
// made together.
func (h *Handler) DirectorCollaborations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := clampLimit(getIntParam(r, "limit", defaultAnalyticsLimit), defaultAnalyticsLimit, h.cfg.API.MaxPageSize)

	pairs, err := h.store.DirectorActorCollaborations(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"collaborations": pairs}, time.Since(start))
}

// GenreDistribution returns every genre with its title count.
func (h *Handler) GenreDistribution(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	genres, err := h.store.GenreDistribution(r.Context())
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"genres": genres}, time.Since(start))
}

// GenreCombinations returns genre pairs ranked by co-occurrence.
func (h *Handler) GenreCombinations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := clampLimit(getIntParam(r, "limit", defaultAnalyticsLimit), defaultAnalyticsLimit, h.cfg.API.MaxPageSize)

	pairs, err := h.store.GenreCombinations(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"combinations": pairs}, time.Since(start))
}

// GenreByCountry returns country/genre pairs ranked by title count.
func (h *Handler) GenreByCountry(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	limit := clampLimit(getIntParam(r, "limit", defaultAnalyticsLimit), defaultAnalyticsLimit, h.cfg.API.MaxPageSize)

	rows, err := h.store.GenreByCountry(r.Context(), limit)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{"countries": rows}, time.Since(start))
}

// GenreTrends returns per-year title counts per genre from the given
// release year onward. since defaults to twenty years back.
func (h *Handler) GenreTrends(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	defaultSince := time.Now().Year() - 20
	since := getIntParam(r, "since", defaultSince)
	if since < 1888 || since > time.Now().Year() {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "since must be a plausible release year", nil)
		return
	}

	points, err := h.store.GenreTrends(r.Context(), int64(since))
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"since":  since,
		"trends": points,
	}, time.Since(start))
}
