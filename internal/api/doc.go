// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

/*
Package api provides the HTTP layer: Chi routing, request validation and
JSON responses in the standard APIResponse envelope.

Endpoints (all under /api/v1):

	GET  /health                              liveness and graph connectivity
	GET  /overview                            node and relationship counts
	GET  /titles?q=&limit=                    title search
	GET  /titles/{title}                      title detail with relationships
	POST /titles                              add a catalog item
	GET  /recommendations/{title}?limit=      similar titles, scored
	GET  /analytics/actors/top?limit=
	GET  /analytics/actors/collaborations?limit=
	GET  /analytics/directors/top?limit=
	GET  /analytics/directors/{name}/titles
	GET  /analytics/directors/collaborations?limit=
	GET  /analytics/genres/distribution
	GET  /analytics/genres/combinations?limit=
	GET  /analytics/genres/by-country?limit=
	GET  /analytics/genres/trends?since=

Prometheus metrics are exposed on /metrics outside the API prefix.

Handlers depend on narrow interfaces (GraphStore, Recommender) rather
than concrete types, so tests run against in-memory fakes.
*/
package api
