// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalograph/catalograph/internal/logging"
)

// mockServer simulates http.Server lifecycle.
type mockServer struct {
	listenErr   error
	shutdownErr error
	shutdown    atomic.Bool
	done        chan struct{}
}

func newMockServer() *mockServer {
	return &mockServer{done: make(chan struct{})}
}

func (m *mockServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.done
	return http.ErrServerClosed
}

func (m *mockServer) Shutdown(context.Context) error {
	m.shutdown.Store(true)
	close(m.done)
	return m.shutdownErr
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	server := newMockServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
		assert.True(t, server.shutdown.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop")
	}
}

func TestHTTPServerService_StartupFailure(t *testing.T) {
	server := newMockServer()
	server.listenErr = errors.New("address in use")
	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address in use")
}

func TestGraphWatchdog_Cancellation(t *testing.T) {
	svc := NewGraphWatchdog(pingFunc(func(context.Context) error { return nil }),
		10*time.Millisecond, logging.NewTestLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := svc.Serve(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }
