// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/middleware"
)

// Router wires the handler set into a Chi mux.
type Router struct {
	handler *Handler
	cfg     *config.Config
}

// NewRouter creates the router for the given handler set.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup builds the full route tree.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to every route in order.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.Security.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		if !router.cfg.Security.RateLimitDisabled {
			r.Use(httprate.LimitByIP(
				router.cfg.Security.RateLimitReqs,
				router.cfg.Security.RateLimitWindow,
			))
		}
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", router.handler.Health)
		r.Get("/overview", router.handler.Overview)

		r.Route("/titles", func(r chi.Router) {
			r.Get("/", router.handler.Titles)
			r.Post("/", router.handler.AddTitle)
			r.Get("/{title}", router.handler.TitleDetail)
		})

		r.Get("/recommendations/{title}", router.handler.Recommendations)

		r.Route("/analytics", func(r chi.Router) {
			r.Route("/actors", func(r chi.Router) {
				r.Get("/top", router.handler.TopActors)
				r.Get("/collaborations", router.handler.ActorCollaborations)
			})
			r.Route("/directors", func(r chi.Router) {
				r.Get("/top", router.handler.TopDirectors)
				r.Get("/collaborations", router.handler.DirectorCollaborations)
				r.Get("/{name}/titles", router.handler.DirectorTitles)
			})
			r.Route("/genres", func(r chi.Router) {
				r.Get("/distribution", router.handler.GenreDistribution)
				r.Get("/combinations", router.handler.GenreCombinations)
				r.Get("/by-country", router.handler.GenreByCountry)
				r.Get("/trends", router.handler.GenreTrends)
			})
		})
	})

	// Prometheus scrape endpoint, outside the API prefix and rate limits.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
