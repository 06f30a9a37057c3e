// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/catalograph/catalograph/internal/models"
)

// RatingMissing is the sentinel stored when the source row has no rating.
const RatingMissing = "No rating listed"

// listSeparator joins list columns in the cleaned CSV. Names in the
// source data contain commas, so the cleaned format needs a different
// delimiter.
const listSeparator = "|"

var (
	minutesRe = regexp.MustCompile(`(?i)(\d+)\s*min`)
	seasonsRe = regexp.MustCompile(`(?i)(\d+)\s*Season`)
)

// rawColumns is the expected header of the raw catalog export.
var rawColumns = []string{
	"show_id", "type", "title", "director", "cast", "country",
	"date_added", "release_year", "rating", "duration", "listed_in",
	"description",
}

// cleanedColumns is the header of the cleaned CSV. description and
// date_added are dropped; the graph never uses them.
var cleanedColumns = []string{
	"show_id", "type", "title", "director", "cast", "country",
	"release_year", "rating", "duration", "listed_in",
}

// CleanStats summarizes a cleaning run.
type CleanStats struct {
	Rows    int
	Skipped int
}

// Clean reads the raw catalog CSV and writes the cleaned CSV. Rows with
// a missing show_id, title or type are skipped rather than failing the
// run; everything else is normalized per the package rules.
func Clean(in io.Reader, out io.Writer) (CleanStats, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = len(rawColumns)

	header, err := reader.Read()
	if err != nil {
		return CleanStats{}, fmt.Errorf("reading header: %w", err)
	}
	cols, err := columnIndex(header, rawColumns)
	if err != nil {
		return CleanStats{}, err
	}

	writer := csv.NewWriter(out)
	if err := writer.Write(cleanedColumns); err != nil {
		return CleanStats{}, fmt.Errorf("writing header: %w", err)
	}

	var stats CleanStats
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading row %d: %w", stats.Rows+stats.Skipped+2, err)
		}

		rec := cleanRow(row, cols)
		if rec == nil {
			stats.Skipped++
			continue
		}

		if err := writer.Write(recordToRow(rec)); err != nil {
			return stats, fmt.Errorf("writing row: %w", err)
		}
		stats.Rows++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("flushing output: %w", err)
	}
	return stats, nil
}

// cleanRow normalizes one raw row. Returns nil for rows that cannot form
// a valid catalog item.
func cleanRow(row []string, cols map[string]int) *models.AddTitleRequest {
	get := func(name string) string {
		return strings.TrimSpace(row[cols[name]])
	}

	showID := get("show_id")
	title := get("title")
	itemType := get("type")
	if showID == "" || title == "" {
		return nil
	}
	if itemType != models.TypeMovie && itemType != models.TypeTVShow {
		return nil
	}

	rating := get("rating")
	if rating == "" {
		rating = RatingMissing
	}

	return &models.AddTitleRequest{
		ShowID:      showID,
		Title:       title,
		Type:        itemType,
		ReleaseYear: parseInt64(get("release_year")),
		Rating:      rating,
		Duration:    parseDuration(get("duration"), itemType),
		Directors:   splitList(get("director")),
		Actors:      splitList(get("cast")),
		Countries:   splitList(get("country")),
		Genres:      splitList(get("listed_in")),
	}
}

// splitList converts a comma-separated source value to a trimmed list.
// Missing values become empty lists, never nil.
func splitList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDuration extracts the integer duration: minutes for movies
// ("90 min"), seasons for TV shows ("2 Seasons"). Unparseable values
// yield 0.
func parseDuration(raw, itemType string) int64 {
	re := minutesRe
	if itemType == models.TypeTVShow {
		re = seasonsRe
	}
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt64(raw string) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("input missing column %q", name)
		}
	}
	return idx, nil
}

// recordToRow serializes a cleaned record for the cleaned CSV.
func recordToRow(rec *models.AddTitleRequest) []string {
	return []string{
		rec.ShowID,
		rec.Type,
		rec.Title,
		strings.Join(rec.Directors, listSeparator),
		strings.Join(rec.Actors, listSeparator),
		strings.Join(rec.Countries, listSeparator),
		strconv.FormatInt(rec.ReleaseYear, 10),
		rec.Rating,
		strconv.FormatInt(rec.Duration, 10),
		strings.Join(rec.Genres, listSeparator),
	}
}

// ReadCleaned parses a cleaned CSV back into import records.
func ReadCleaned(in io.Reader) ([]*models.AddTitleRequest, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = len(cleanedColumns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	cols, err := columnIndex(header, cleanedColumns)
	if err != nil {
		return nil, err
	}

	var records []*models.AddTitleRequest
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(records)+2, err)
		}

		get := func(name string) string {
			return strings.TrimSpace(row[cols[name]])
		}

		records = append(records, &models.AddTitleRequest{
			ShowID:      get("show_id"),
			Type:        get("type"),
			Title:       get("title"),
			Directors:   splitCleanedList(get("director")),
			Actors:      splitCleanedList(get("cast")),
			Countries:   splitCleanedList(get("country")),
			ReleaseYear: parseInt64(get("release_year")),
			Rating:      get("rating"),
			Duration:    parseInt64(get("duration")),
			Genres:      splitCleanedList(get("listed_in")),
		})
	}
	return records, nil
}

func splitCleanedList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return strings.Split(raw, listSeparator)
}
