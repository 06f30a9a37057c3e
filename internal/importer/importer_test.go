// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package importer

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalograph/catalograph/internal/logging"
	"github.com/catalograph/catalograph/internal/models"
)

// fakeWriter records upserts and fails on selected show IDs.
type fakeWriter struct {
	upserted []string
	failOn   map[string]error
}

func (f *fakeWriter) UpsertTitle(_ context.Context, rec *models.AddTitleRequest) error {
	if err, ok := f.failOn[rec.ShowID]; ok {
		return err
	}
	f.upserted = append(f.upserted, rec.ShowID)
	return nil
}

func testRecords(n int) []*models.AddTitleRequest {
	records := make([]*models.AddTitleRequest, n)
	for i := range records {
		records[i] = &models.AddTitleRequest{
			ShowID: fmt.Sprintf("s%d", i+1),
			Title:  fmt.Sprintf("Title %d", i+1),
			Type:   models.TypeMovie,
		}
	}
	return records
}

func TestRun_AllRecordsUpserted(t *testing.T) {
	writer := &fakeWriter{}
	imp, err := New(writer, Config{}, logging.NewTestLogger())
	require.NoError(t, err)

	stats, err := imp.Run(context.Background(), testRecords(5))
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Processed)
	assert.Equal(t, 0, stats.Failed)
	assert.Equal(t, []string{"s1", "s2", "s3", "s4", "s5"}, writer.upserted)
}

func TestRun_FailuresAreSkipped(t *testing.T) {
	writer := &fakeWriter{failOn: map[string]error{
		"s2": errors.New("constraint violation"),
	}}
	imp, err := New(writer, Config{}, logging.NewTestLogger())
	require.NoError(t, err)

	stats, err := imp.Run(context.Background(), testRecords(3))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, []string{"s1", "s3"}, writer.upserted)
}

func TestRun_MaxErrorsAborts(t *testing.T) {
	writer := &fakeWriter{failOn: map[string]error{
		"s1": errors.New("down"),
		"s2": errors.New("down"),
	}}
	imp, err := New(writer, Config{MaxErrors: 2}, logging.NewTestLogger())
	require.NoError(t, err)

	stats, err := imp.Run(context.Background(), testRecords(5))
	require.Error(t, err)
	assert.Equal(t, 2, stats.Failed)
	assert.Empty(t, writer.upserted)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	imp, err := New(&fakeWriter{}, Config{}, logging.NewTestLogger())
	require.NoError(t, err)

	_, err = imp.Run(ctx, testRecords(3))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_NilWriter(t *testing.T) {
	_, err := New(nil, Config{}, logging.NewTestLogger())
	assert.Error(t, err)
}
