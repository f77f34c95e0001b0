//go:generate go run go.uber.org/mock/mockgen -source=stats_tracker.go -destination=../mocks/mock_stats_tracker.go -package=mocks
package services

import (
	"guild-warden/domain"
	"guild-warden/observability"
	"guild-warden/repositories"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type IStatsTracker interface {
	IncrementMessage(tenantID domain.TenantID) error
	IncrementJoin(tenantID domain.TenantID) error
	Snapshot(tenantID domain.TenantID) (domain.DailyCounts, error)
}

// StatsTracker keeps the daily activity counters of every tenant.
// There is no background timer: the day boundary is observed on access,
// and every access persists the record so that the stored day is always
// the last one observed.
type StatsTracker struct {
	mu       sync.Mutex
	log      *slog.Logger
	store    repositories.IRecordStore
	clock    clockwork.Clock
	location *time.Location
	metrics  *observability.Metrics
}

func NewStatsTracker(log *slog.Logger, store repositories.IRecordStore, clk clockwork.Clock,
	location *time.Location, metrics *observability.Metrics) *StatsTracker {
	return &StatsTracker{log: log, store: store, clock: clk, location: location, metrics: metrics}
}

func (s *StatsTracker) IncrementMessage(tenantID domain.TenantID) error {
	_, err := s.update(tenantID, observability.StatsKindMessage, func(stats *domain.TenantStats) {
		stats.TodayMessageCount++
	})
	return err
}

func (s *StatsTracker) IncrementJoin(tenantID domain.TenantID) error {
	_, err := s.update(tenantID, observability.StatsKindJoin, func(stats *domain.TenantStats) {
		stats.TodayJoinCount++
	})
	return err
}

// Snapshot returns today's counters, resetting them first if the stored
// record belongs to a previous day.
func (s *StatsTracker) Snapshot(tenantID domain.TenantID) (domain.DailyCounts, error) {
	stats, err := s.update(tenantID, observability.StatsKindSnapshot, nil)
	if err != nil {
		return domain.DailyCounts{}, err
	}
	return stats.Counts(), nil
}

// update applies the rollover, then mutate, then writes the whole record back.
func (s *StatsTracker) update(tenantID domain.TenantID, kind string, mutate func(*domain.TenantStats)) (domain.TenantStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	stats, ok := s.store.GetStats(tenantID)
	if !ok {
		stats = domain.NewTenantStats(tenantID, today)
	}
	if stats.RollOver(today) {
		s.log.Debug("daily stats rolled over", "tenant_id", tenantID, "day", today)
		s.metrics.StatsOperationsTotal.WithLabelValues(observability.StatsKindRolledOver).Inc()
	}
	if mutate != nil {
		mutate(&stats)
	}

	if err := s.store.PutStats(stats); err != nil {
		s.metrics.StorageErrorsTotal.Inc()
		return domain.TenantStats{}, err
	}
	s.metrics.StatsOperationsTotal.WithLabelValues(kind).Inc()
	return stats, nil
}

func (s *StatsTracker) today() domain.Day {
	return domain.DayOf(s.clock.Now().In(s.location))
}
