// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalograph/catalograph/internal/models"
)

const rawHeader = "show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description"

func cleanOne(t *testing.T, row string) *models.AddTitleRequest {
	t.Helper()
	var out bytes.Buffer
	stats, err := Clean(strings.NewReader(rawHeader+"\n"+row+"\n"), &out)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Rows)

	records, err := ReadCleaned(&out)
	require.NoError(t, err)
	require.Len(t, records, 1)
	return records[0]
}

func TestClean_MovieRow(t *testing.T) {
	rec := cleanOne(t,
		`s1,Movie,Okja,Bong Joon Ho,"Tilda Swinton, Paul Dano","South Korea, United States","June 28, 2017",2017,TV-MA,120 min,"Dramas, Sci-Fi",A girl and her pig.`)

	assert.Equal(t, "s1", rec.ShowID)
	assert.Equal(t, models.TypeMovie, rec.Type)
	assert.Equal(t, "Okja", rec.Title)
	assert.Equal(t, []string{"Bong Joon Ho"}, rec.Directors)
	assert.Equal(t, []string{"Tilda Swinton", "Paul Dano"}, rec.Actors)
	assert.Equal(t, []string{"South Korea", "United States"}, rec.Countries)
	assert.Equal(t, []string{"Dramas", "Sci-Fi"}, rec.Genres)
	assert.Equal(t, int64(2017), rec.ReleaseYear)
	assert.Equal(t, "TV-MA", rec.Rating)
	assert.Equal(t, int64(120), rec.Duration, "movie duration is minutes")
}

func TestClean_TVShowSeasons(t *testing.T) {
	rec := cleanOne(t,
		`s2,TV Show,Dark,,"Louis Hofmann",Germany,,2017,TV-MA,3 Seasons,"TV Dramas",Time travel.`)

	assert.Equal(t, models.TypeTVShow, rec.Type)
	assert.Equal(t, int64(3), rec.Duration, "show duration is seasons")
	assert.Equal(t, []string{}, rec.Directors, "missing director becomes empty list")
}

func TestClean_SingleSeason(t *testing.T) {
	rec := cleanOne(t,
		`s3,TV Show,Maid,,,,,2021,TV-MA,1 Season,"TV Dramas",x`)
	assert.Equal(t, int64(1), rec.Duration)
}

func TestClean_MissingRatingSentinel(t *testing.T) {
	rec := cleanOne(t,
		`s4,Movie,Untitled,,,,,2020,,90 min,Dramas,x`)
	assert.Equal(t, RatingMissing, rec.Rating)
}

func TestClean_UnparseableDuration(t *testing.T) {
	rec := cleanOne(t,
		`s5,Movie,Broken,,,,,2020,PG,unknown,Dramas,x`)
	assert.Equal(t, int64(0), rec.Duration)
}

func TestClean_SkipsInvalidRows(t *testing.T) {
	input := rawHeader + "\n" +
		`,Movie,No ID,,,,,2020,PG,90 min,Dramas,x` + "\n" +
		`s6,Documentary,Wrong Type,,,,,2020,PG,90 min,Dramas,x` + "\n" +
		`s7,Movie,Kept,,,,,2020,PG,90 min,Dramas,x` + "\n"

	var out bytes.Buffer
	stats, err := Clean(strings.NewReader(input), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Rows)
	assert.Equal(t, 2, stats.Skipped)
}

func TestClean_MissingColumn(t *testing.T) {
	input := "show_id,type,title\ns1,Movie,X\n"
	_, err := Clean(strings.NewReader(input), &bytes.Buffer{})
	require.Error(t, err)
}

func TestClean_DropsDescriptionAndDateAdded(t *testing.T) {
	var out bytes.Buffer
	_, err := Clean(strings.NewReader(
		rawHeader+"\n"+`s1,Movie,Okja,,,,,2017,PG,90 min,Dramas,Secret plot line.`+"\n"), &out)
	require.NoError(t, err)

	cleaned := out.String()
	assert.NotContains(t, cleaned, "Secret plot line")
	assert.NotContains(t, strings.Split(cleaned, "\n")[0], "date_added")
}

func TestReadCleaned_RoundTrip(t *testing.T) {
	raw := rawHeader + "\n" +
		`s1,Movie,Heat,Michael Mann,"Al Pacino, Robert De Niro",United States,,1995,R,170 min,"Crime, Dramas",x` + "\n"

	var out bytes.Buffer
	_, err := Clean(strings.NewReader(raw), &out)
	require.NoError(t, err)

	records, err := ReadCleaned(&out)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, []string{"Al Pacino", "Robert De Niro"}, rec.Actors)
	assert.Equal(t, []string{"Crime", "Dramas"}, rec.Genres)
	assert.Equal(t, int64(170), rec.Duration)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw      string
		itemType string
		want     int64
	}{
		{"90 min", models.TypeMovie, 90},
		{"90min", models.TypeMovie, 90},
		{"2 Seasons", models.TypeTVShow, 2},
		{"1 Season", models.TypeTVShow, 1},
		{"2 Seasons", models.TypeMovie, 0},
		{"90 min", models.TypeTVShow, 0},
		{"", models.TypeMovie, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseDuration(tt.raw, tt.itemType),
			"parseDuration(%q, %s)", tt.raw, tt.itemType)
	}
}
