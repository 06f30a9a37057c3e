// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/graph"
	"github.com/catalograph/catalograph/internal/models"
	"github.com/catalograph/catalograph/internal/recommend"
)

// fakeStore is an in-memory GraphStore.
type fakeStore struct {
	titles    map[string]*models.TitleDetail
	pingErr   error
	queryErr  error
	topActors []models.PersonTitleCount
}

func newFakeStore() *fakeStore {
	return &fakeStore{titles: make(map[string]*models.TitleDetail)}
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) Overview(context.Context) (*models.Overview, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &models.Overview{
		Movies:        int64(len(f.titles)),
		Relationships: map[string]int64{"BELONGS_TO_GENRE": 3},
	}, nil
}

func (f *fakeStore) SearchTitles(_ context.Context, query string, limit int) ([]models.Title, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []models.Title
	for _, d := range f.titles {
		out = append(out, d.Title)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) GetTitleDetail(_ context.Context, title string) (*models.TitleDetail, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	d, ok := f.titles[title]
	if !ok {
		return nil, fmt.Errorf("%w: %s", graph.ErrNotFound, title)
	}
	return d, nil
}

func (f *fakeStore) AddTitle(_ context.Context, req *models.AddTitleRequest) error {
	if f.queryErr != nil {
		return f.queryErr
	}
	if _, exists := f.titles[req.Title]; exists {
		return fmt.Errorf("%w: %s", graph.ErrAlreadyExists, req.Title)
	}
	f.titles[req.Title] = &models.TitleDetail{
		Title:  models.Title{Title: req.Title, Type: req.Type},
		Genres: req.Genres,
	}
	return nil
}

func (f *fakeStore) TopActors(context.Context, int) ([]models.PersonTitleCount, error) {
	return f.topActors, f.queryErr
}

func (f *fakeStore) ActorCollaborations(context.Context, int) ([]models.ActorCollaboration, error) {
	return []models.ActorCollaboration{}, f.queryErr
}

func (f *fakeStore) TopDirectors(context.Context, int) ([]models.PersonTitleCount, error) {
	return []models.PersonTitleCount{}, f.queryErr
}

func (f *fakeStore) TitlesByDirector(context.Context, string) ([]models.Title, error) {
	return []models.Title{}, f.queryErr
}

func (f *fakeStore) DirectorActorCollaborations(context.Context, int) ([]models.DirectorActorCollaboration, error) {
	return []models.DirectorActorCollaboration{}, f.queryErr
}

func (f *fakeStore) GenreDistribution(context.Context) ([]models.GenreCount, error) {
	return []models.GenreCount{{Genre: "Dramas", TitleCount: 5}}, f.queryErr
}

func (f *fakeStore) GenreCombinations(context.Context, int) ([]models.GenreCombination, error) {
	return []models.GenreCombination{}, f.queryErr
}

func (f *fakeStore) GenreByCountry(context.Context, int) ([]models.CountryGenreCount, error) {
	return []models.CountryGenreCount{}, f.queryErr
}

func (f *fakeStore) GenreTrends(context.Context, int64) ([]models.GenreTrendPoint, error) {
	return []models.GenreTrendPoint{}, f.queryErr
}

// fakeRecommender returns canned recommendations per title.
type fakeRecommender struct {
	recs map[string][]recommend.Recommendation
	err  error
}

func (f *fakeRecommender) Recommend(_ context.Context, title string, _ int) ([]recommend.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	recs := f.recs[title]
	if recs == nil {
		recs = []recommend.Recommendation{}
	}
	return recs, nil
}

func testConfig() *config.Config {
	return &config.Config{
		API: config.APIConfig{DefaultPageSize: 20, MaxPageSize: 100},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: true,
		},
		Recommend: config.RecommendConfig{
			GenreWeight: 2.0, ActorWeight: 1.5, DirectorWeight: 1.5,
			DefaultLimit: 10, MaxLimit: 50, MaxCandidates: 500,
		},
	}
}

func newTestServer(store GraphStore, rec Recommender) http.Handler {
	cfg := testConfig()
	return NewRouter(NewHandler(store, rec, cfg), cfg).Setup()
}

func doRequest(t *testing.T, h http.Handler, method, path string, body []byte) (*httptest.ResponseRecorder, *models.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var envelope models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope),
		"response should be a valid APIResponse envelope: %s", rec.Body.String())
	return rec, &envelope
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		srv := newTestServer(newFakeStore(), &fakeRecommender{})
		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", envelope.Status)
	})

	t.Run("graph down", func(t *testing.T) {
		store := newFakeStore()
		store.pingErr = errors.New("refused")
		srv := newTestServer(store, &fakeRecommender{})
		rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/health", nil)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestTitleDetail(t *testing.T) {
	store := newFakeStore()
	store.titles["Dark"] = &models.TitleDetail{
		Title:  models.Title{Title: "Dark", Type: models.TypeTVShow, ReleaseYear: 2017},
		Genres: []string{"TV Dramas"},
	}
	srv := newTestServer(store, &fakeRecommender{})

	t.Run("found", func(t *testing.T) {
		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/titles/Dark", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", envelope.Status)
	})

	t.Run("not found", func(t *testing.T) {
		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/titles/Missing", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "NOT_FOUND", envelope.Error.Code)
	})
}

func TestAddTitle(t *testing.T) {
	store := newFakeStore()
	srv := newTestServer(store, &fakeRecommender{})

	valid := models.AddTitleRequest{
		Title: "Okja", Type: models.TypeMovie, ReleaseYear: 2017,
		Genres: []string{"Dramas"},
	}
	body, _ := json.Marshal(valid)

	t.Run("created", func(t *testing.T) {
		rec, envelope := doRequest(t, srv, http.MethodPost, "/api/v1/titles", body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "success", envelope.Status)
		assert.Contains(t, store.titles, "Okja")
	})

	t.Run("duplicate conflicts", func(t *testing.T) {
		rec, envelope := doRequest(t, srv, http.MethodPost, "/api/v1/titles", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "CONFLICT", envelope.Error.Code)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		bad, _ := json.Marshal(models.AddTitleRequest{Title: "X", Type: "Documentary"})
		rec, envelope := doRequest(t, srv, http.MethodPost, "/api/v1/titles", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		bad, _ := json.Marshal(models.AddTitleRequest{Type: models.TypeMovie})
		rec, _ := doRequest(t, srv, http.MethodPost, "/api/v1/titles", bad)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		rec, _ := doRequest(t, srv, http.MethodPost, "/api/v1/titles", []byte("{not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRecommendations(t *testing.T) {
	recommender := &fakeRecommender{recs: map[string][]recommend.Recommendation{
		"Heat": {
			{Title: "Collateral", Year: 2004, Score: 5.0},
			{Title: "Ronin", Year: 1998, Score: 2.0},
		},
	}}
	srv := newTestServer(newFakeStore(), recommender)

	t.Run("scored results", func(t *testing.T) {
		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/Heat", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data := envelope.Data.(map[string]interface{})
		assert.Equal(t, float64(2), data["count"])
		assert.Equal(t, "Heat", data["title"])
	})

	t.Run("unknown title yields empty success", func(t *testing.T) {
		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/Unknown", nil)
		require.Equal(t, http.StatusOK, rec.Code, "absent titles are empty results, not errors")

		data := envelope.Data.(map[string]interface{})
		assert.Equal(t, float64(0), data["count"])
	})

	t.Run("limit above maximum rejected", func(t *testing.T) {
		rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/Heat?limit=999", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("breaker open maps to 503", func(t *testing.T) {
		down := &fakeRecommender{err: fmt.Errorf("fetching candidates: %w", graph.ErrUnavailable)}
		srv := newTestServer(newFakeStore(), down)

		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/Heat", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "GRAPH_UNAVAILABLE", envelope.Error.Code)
	})

	t.Run("query failure maps to 500", func(t *testing.T) {
		down := &fakeRecommender{err: errors.New("syntax error")}
		srv := newTestServer(newFakeStore(), down)

		rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/recommendations/Heat", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "QUERY_ERROR", envelope.Error.Code)
	})
}

func TestAnalyticsEndpoints(t *testing.T) {
	store := newFakeStore()
	store.topActors = []models.PersonTitleCount{{Name: "Anupam Kher", TitleCount: 39}}
	srv := newTestServer(store, &fakeRecommender{})

	paths := []string{
		"/api/v1/analytics/actors/top",
		"/api/v1/analytics/actors/collaborations",
		"/api/v1/analytics/directors/top",
		"/api/v1/analytics/directors/collaborations",
		"/api/v1/analytics/directors/Michael%20Mann/titles",
		"/api/v1/analytics/genres/distribution",
		"/api/v1/analytics/genres/combinations",
		"/api/v1/analytics/genres/by-country",
		"/api/v1/analytics/genres/trends",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec, envelope := doRequest(t, srv, http.MethodGet, path, nil)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "success", envelope.Status)
		})
	}
}

func TestGenreTrends_InvalidSince(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeRecommender{})
	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/analytics/genres/trends?since=1200", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOverview(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeRecommender{})
	rec, envelope := doRequest(t, srv, http.MethodGet, "/api/v1/overview", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", envelope.Status)
}

func TestResponseEnvelope_HasRequestIDHeader(t *testing.T) {
	srv := newTestServer(newFakeStore(), &fakeRecommender{})
	rec, _ := doRequest(t, srv, http.MethodGet, "/api/v1/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHelpers(t *testing.T) {
	t.Run("sanitizeLogValue", func(t *testing.T) {
		assert.Equal(t, `evil\x0aentry`, sanitizeLogValue("evil\nentry"))
		assert.Equal(t, "clean", sanitizeLogValue("clean"))
	})

	t.Run("clampLimit", func(t *testing.T) {
		assert.Equal(t, 20, clampLimit(0, 20, 100))
		assert.Equal(t, 100, clampLimit(500, 20, 100))
		assert.Equal(t, 7, clampLimit(7, 20, 100))
	})

	t.Run("generateETag deterministic", func(t *testing.T) {
		assert.Equal(t, generateETag([]byte("abc")), generateETag([]byte("abc")))
		assert.NotEqual(t, generateETag([]byte("abc")), generateETag([]byte("abd")))
	})
}
