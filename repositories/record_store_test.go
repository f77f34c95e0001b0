package repositories

import (
	stderrors "errors"
	"guild-warden/domain"
	"guild-warden/errors"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T, dir string) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	return db
}

func TestRecordStore_Stats_RoundTrip(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	store := NewRecordStore(db, slog.Default())

	// Given a stored stats record
	stats := domain.TenantStats{TenantID: "g1", TodayMessageCount: 12, TodayJoinCount: 3, LastResetDate: "2026-10-15"}
	req.NoError(store.PutStats(stats))

	// When it is read back
	fetched, ok := store.GetStats("g1")

	// Then every field survives
	req.True(ok)
	req.Equal(stats, fetched)
}

func TestRecordStore_Config_RoundTrip(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	store := NewRecordStore(db, slog.Default())

	config := domain.TenantConfig{TenantID: "g1", AuditChannelID: "c-42"}
	req.NoError(store.PutConfig(config))

	fetched, ok := store.GetConfig("g1")
	req.True(ok)
	req.Equal(config, fetched)
}

func TestRecordStore_TablesAreIndependent(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	store := NewRecordStore(db, slog.Default())

	// Given a tenant with stats only
	req.NoError(store.PutStats(domain.NewTenantStats("g1", "2026-10-15")))

	// Then it has no config record
	_, ok := store.GetConfig("g1")
	req.False(ok)
}

func TestRecordStore_MissingRecordIsAbsent(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	store := NewRecordStore(db, slog.Default())

	_, ok := store.GetStats("unknown")
	req.False(ok)
	_, ok = store.GetConfig("unknown")
	req.False(ok)
}

func TestRecordStore_CorruptRecordIsAbsent(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	store := NewRecordStore(db, slog.Default())

	// Given bytes that are not a CBOR record
	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(StatsTable, "g1"), []byte{0xff})
	})
	req.NoError(err)

	// Then the record is reported as absent, not as an error
	_, ok := store.GetStats("g1")
	req.False(ok)

	// And a later write overwrites it
	req.NoError(store.PutStats(domain.NewTenantStats("g1", "2026-10-15")))
	fetched, ok := store.GetStats("g1")
	req.True(ok)
	req.Equal(domain.Day("2026-10-15"), fetched.LastResetDate)
}

func TestRecordStore_SurvivesRestart(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	// Given records written by a first process
	db := openDB(t, dir)
	store := NewRecordStore(db, slog.Default())
	req.NoError(store.PutStats(domain.TenantStats{TenantID: "g1", TodayMessageCount: 7, LastResetDate: "2026-10-15"}))
	req.NoError(store.PutConfig(domain.TenantConfig{TenantID: "g1", AuditChannelID: "c-1"}))
	req.NoError(db.Close())

	// When the store is reopened
	db = openDB(t, dir)
	defer db.Close()
	store = NewRecordStore(db, slog.Default())

	// Then the records are still there
	stats, ok := store.GetStats("g1")
	req.True(ok)
	req.Equal(uint64(7), stats.TodayMessageCount)
	config, ok := store.GetConfig("g1")
	req.True(ok)
	req.Equal("c-1", config.AuditChannelID)
}

func TestRecordStore_WriteFailureIsPropagated(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	store := NewRecordStore(db, slog.Default())

	// Given an unavailable storage
	req.NoError(db.Close())

	// When writing
	err := store.PutStats(domain.NewTenantStats("g1", "2026-10-15"))

	// Then the caller receives a storage error
	req.Error(err)
	req.True(stderrors.Is(err, errors.ErrStorageUnavailable))
	req.True(stderrors.Is(err, badger.ErrDBClosed))

	// And reads degrade to absence
	_, ok := store.GetStats("g1")
	req.False(ok)
}

func TestRecordStore_List(t *testing.T) {
	req := require.New(t)
	db := openDB(t, t.TempDir())
	defer db.Close()
	store := NewRecordStore(db, slog.Default())

	req.NoError(store.PutStats(domain.NewTenantStats("g1", "2026-10-15")))
	req.NoError(store.PutStats(domain.NewTenantStats("g2", "2026-10-15")))
	req.NoError(store.PutConfig(domain.TenantConfig{TenantID: "g1", AuditChannelID: "c-1"}))

	stats, err := store.ListStats()
	req.NoError(err)
	req.Len(stats, 2)
	req.Equal(domain.TenantID("g1"), stats[0].TenantID)
	req.Equal(domain.TenantID("g2"), stats[1].TenantID)

	configs, err := store.ListConfigs()
	req.NoError(err)
	req.Equal([]domain.TenantConfig{{TenantID: "g1", AuditChannelID: "c-1"}}, configs)
}
