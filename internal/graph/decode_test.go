// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package graph

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalograph/catalograph/internal/models"
)

func record(keys []string, values []any) *neo4j.Record {
	return &neo4j.Record{Keys: keys, Values: values}
}

func TestStringField(t *testing.T) {
	rec := record([]string{"title", "rating"}, []any{"Okja", nil})

	v, err := stringField(rec, "title")
	require.NoError(t, err)
	assert.Equal(t, "Okja", v)

	v, err = stringField(rec, "rating")
	require.NoError(t, err)
	assert.Equal(t, "", v, "null property decodes to zero value")

	_, err = stringField(rec, "missing")
	assert.Error(t, err)

	rec = record([]string{"title"}, []any{int64(7)})
	_, err = stringField(rec, "title")
	assert.Error(t, err, "wrong type is an error, not a silent zero")
}

func TestIntField(t *testing.T) {
	rec := record([]string{"year", "duration"}, []any{int64(2019), nil})

	v, err := intField(rec, "year")
	require.NoError(t, err)
	assert.Equal(t, int64(2019), v)

	v, err = intField(rec, "duration")
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	rec = record([]string{"year"}, []any{2019.0})
	_, err = intField(rec, "year")
	assert.Error(t, err, "floats do not silently truncate")
}

func TestFloatField(t *testing.T) {
	rec := record([]string{"score", "count"}, []any{5.5, int64(3)})

	v, err := floatField(rec, "score")
	require.NoError(t, err)
	assert.Equal(t, 5.5, v)

	v, err = floatField(rec, "count")
	require.NoError(t, err)
	assert.Equal(t, 3.0, v, "integer results widen to float")
}

func TestStringSliceField(t *testing.T) {
	rec := record(
		[]string{"genres", "empty", "with_null"},
		[]any{
			[]any{"Dramas", "Thrillers"},
			nil,
			[]any{nil, "Comedies"},
		},
	)

	v, err := stringSliceField(rec, "genres")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dramas", "Thrillers"}, v)

	v, err = stringSliceField(rec, "empty")
	require.NoError(t, err)
	assert.Equal(t, []string{}, v, "null list decodes to empty, not nil")

	v, err = stringSliceField(rec, "with_null")
	require.NoError(t, err)
	assert.Equal(t, []string{"Comedies"}, v, "null elements from optional matches are dropped")
}

func TestDecodeTitle(t *testing.T) {
	rec := record(
		[]string{"show_id", "title", "labels", "release_year", "rating", "duration"},
		[]any{"s1", "Dark", []any{"TVShow"}, int64(2017), "TV-MA", int64(3)},
	)

	title, err := decodeTitle(rec)
	require.NoError(t, err)
	assert.Equal(t, models.Title{
		ShowID:      "s1",
		Title:       "Dark",
		Type:        models.TypeTVShow,
		ReleaseYear: 2017,
		Rating:      "TV-MA",
		Duration:    3,
	}, title)
}

func TestLabelForType(t *testing.T) {
	label, err := labelForType(models.TypeMovie)
	require.NoError(t, err)
	assert.Equal(t, "Movie", label)

	label, err = labelForType(models.TypeTVShow)
	require.NoError(t, err)
	assert.Equal(t, "TVShow", label)

	_, err = labelForType("Documentary")
	assert.Error(t, err)
}

func TestTypeForLabels(t *testing.T) {
	assert.Equal(t, models.TypeTVShow, typeForLabels([]string{"TVShow"}))
	assert.Equal(t, models.TypeMovie, typeForLabels([]string{"Movie"}))
}
