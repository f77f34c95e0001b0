//go:generate go run go.uber.org/mock/mockgen -source=record_store.go -destination=../mocks/mock_record_store.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"guild-warden/domain"
	"guild-warden/errors"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

type Table string

const (
	StatsTable  Table = "stats"
	ConfigTable Table = "config"
)

// IRecordStore is the whole-record contract over the two tenant tables.
// A missing record and an unreadable one are both reported as absent.
type IRecordStore interface {
	GetStats(tenantID domain.TenantID) (domain.TenantStats, bool)
	PutStats(stats domain.TenantStats) error
	GetConfig(tenantID domain.TenantID) (domain.TenantConfig, bool)
	PutConfig(config domain.TenantConfig) error
	ListStats() ([]domain.TenantStats, error)
	ListConfigs() ([]domain.TenantConfig, error)
}

type RecordStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewRecordStore(db *badger.DB, log *slog.Logger) *RecordStore {
	return &RecordStore{db: db, log: log}
}

// diskStats and diskConfig are the persisted layouts. They carry exactly the
// record fields; the tenant id is repeated in the key.
type diskStats struct {
	TenantID          string `cbor:"tenant_id"`
	TodayMessageCount uint64 `cbor:"today_message_count"`
	TodayJoinCount    uint64 `cbor:"today_join_count"`
	LastResetDate     string `cbor:"last_reset_date"`
}

type diskConfig struct {
	TenantID       string `cbor:"tenant_id"`
	AuditChannelID string `cbor:"audit_channel_id,omitempty"`
}

// Key is formatted as "{table}:{tenant_id}" so that a prefix scan walks one table.
func Key(table Table, tenantID domain.TenantID) []byte {
	return []byte(fmt.Sprintf("%s:%s", table, tenantID))
}

func (r RecordStore) GetStats(tenantID domain.TenantID) (domain.TenantStats, bool) {
	var d diskStats
	if !r.get(StatsTable, tenantID, &d) {
		return domain.TenantStats{}, false
	}
	return toTenantStats(d), true
}

func (r RecordStore) PutStats(stats domain.TenantStats) error {
	return r.put(StatsTable, stats.TenantID, fromTenantStats(stats))
}

func (r RecordStore) GetConfig(tenantID domain.TenantID) (domain.TenantConfig, bool) {
	var d diskConfig
	if !r.get(ConfigTable, tenantID, &d) {
		return domain.TenantConfig{}, false
	}
	return toTenantConfig(d), true
}

func (r RecordStore) PutConfig(config domain.TenantConfig) error {
	return r.put(ConfigTable, config.TenantID, fromTenantConfig(config))
}

// ListStats walks the stats table. Undecodable entries are skipped.
func (r RecordStore) ListStats() ([]domain.TenantStats, error) {
	var all []domain.TenantStats
	err := r.scan(StatsTable, func(key string, value []byte) {
		var d diskStats
		if err := cbor.Unmarshal(value, &d); err != nil {
			r.log.Warn("skipping corrupt stats record", "key", key, "error", err)
			return
		}
		all = append(all, toTenantStats(d))
	})
	return all, err
}

func (r RecordStore) ListConfigs() ([]domain.TenantConfig, error) {
	var all []domain.TenantConfig
	err := r.scan(ConfigTable, func(key string, value []byte) {
		var d diskConfig
		if err := cbor.Unmarshal(value, &d); err != nil {
			r.log.Warn("skipping corrupt config record", "key", key, "error", err)
			return
		}
		all = append(all, toTenantConfig(d))
	})
	return all, err
}

func (r RecordStore) get(table Table, tenantID domain.TenantID, out any) bool {
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(Key(table, tenantID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, out)
		})
	})
	switch {
	case err == nil:
		return true
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return false
	default:
		r.log.Warn("record unreadable, treated as absent",
			"table", table, "tenant_id", tenantID, "error", err)
		return false
	}
}

func (r RecordStore) put(table Table, tenantID domain.TenantID, record any) error {
	bytes, err := cbor.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", table, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(Key(table, tenantID), bytes)
	})
	if err != nil {
		return fmt.Errorf("%w: write %s/%s: %w", errors.ErrStorageUnavailable, table, tenantID, err)
	}
	return nil
}

func (r RecordStore) scan(table Table, fn func(key string, value []byte)) error {
	prefix := []byte(string(table) + ":")
	return r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(val []byte) error {
				fn(key, val)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func fromTenantStats(s domain.TenantStats) diskStats {
	return diskStats{
		TenantID:          string(s.TenantID),
		TodayMessageCount: s.TodayMessageCount,
		TodayJoinCount:    s.TodayJoinCount,
		LastResetDate:     string(s.LastResetDate),
	}
}

func toTenantStats(d diskStats) domain.TenantStats {
	return domain.TenantStats{
		TenantID:          domain.TenantID(d.TenantID),
		TodayMessageCount: d.TodayMessageCount,
		TodayJoinCount:    d.TodayJoinCount,
		LastResetDate:     domain.Day(d.LastResetDate),
	}
}

func fromTenantConfig(c domain.TenantConfig) diskConfig {
	return diskConfig{TenantID: string(c.TenantID), AuditChannelID: c.AuditChannelID}
}

func toTenantConfig(d diskConfig) domain.TenantConfig {
	return domain.TenantConfig{TenantID: domain.TenantID(d.TenantID), AuditChannelID: d.AuditChannelID}
}
