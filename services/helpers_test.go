package services

import (
	"guild-warden/repositories"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// day1 is a simulated "today"; day2 is the next calendar day in UTC.
var (
	day1 = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)
	day2 = time.Date(2026, 10, 16, 0, 0, 1, 0, time.UTC)
)

func testLogger() *slog.Logger {
	return logs.GetLoggerFromLevel(slog.LevelDebug)
}

func newRecordStore(t *testing.T) *repositories.RecordStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repositories.NewRecordStore(db, slog.Default())
}
