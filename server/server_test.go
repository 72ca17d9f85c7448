package server

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"personal-notes/config"
	"personal-notes/metrics"
	"personal-notes/repository"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		Env:             "test",
		AllowedOrigins:  []string{"*"},
		IdentityHeader:  "X-User-Id",
		AnonymousUser:   "anonymous",
		MetricsEnabled:  true,
		ShutdownTimeout: time.Second,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRouterWithMetrics(t *testing.T) {
	router := NewRouter(Deps{
		Config:  testConfig(),
		Logger:  testLogger(),
		Repo:    repository.NewMemoryRepository(),
		Metrics: metrics.New(),
	})

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":"t","content":"c"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "notes_stored 1")
	assert.Contains(t, rr.Body.String(), `notes_operations_total{operation="create",outcome="ok"} 1`)
}

func TestNewRouterWithoutMetrics(t *testing.T) {
	router := NewRouter(Deps{
		Config: testConfig(),
		Logger: testLogger(),
		Repo:   repository.NewMemoryRepository(),
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCustomIdentityHeader(t *testing.T) {
	cfg := testConfig()
	cfg.IdentityHeader = "X-Owner"
	cfg.AnonymousUser = "guest"

	router := NewRouter(Deps{Config: cfg, Logger: testLogger(), Repo: repository.NewMemoryRepository()})

	req := httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":"t","content":"c"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"owner_id":"guest"`)

	req = httptest.NewRequest(http.MethodPost, "/notes", strings.NewReader(`{"title":"t","content":"c"}`))
	req.Header.Set("X-Owner", "erin")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Contains(t, rr.Body.String(), `"owner_id":"erin"`)
}

func TestCORSPreflight(t *testing.T) {
	router := NewRouter(Deps{Config: testConfig(), Logger: testLogger(), Repo: repository.NewMemoryRepository()})

	req := httptest.NewRequest(http.MethodOptions, "/notes/1", nil)
	req.Header.Set("Origin", "https://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, testConfig(), testLogger(), http.NotFoundHandler())
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
