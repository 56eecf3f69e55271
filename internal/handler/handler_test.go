package handler_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/sakif/portfolio-api/internal/repository/sqlite"
)

// testEnv bundles an in-memory store with the repos the handler tests
// need. Handlers get exercised against the real service and repository
// layers; only the HTTP server around them is absent.
type testEnv struct {
	db     *sqlite.DB
	logger *slog.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("sqlite.New(\":memory:\"): %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	return &testEnv{db: db, logger: logger}
}
