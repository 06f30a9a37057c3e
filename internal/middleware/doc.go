// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Package middleware provides chi-compatible HTTP middleware: request ID
// propagation wired into the logging context, and Prometheus request
// instrumentation. CORS and rate limiting come from go-chi/cors and
// go-chi/httprate and are wired directly in the router.
package middleware
