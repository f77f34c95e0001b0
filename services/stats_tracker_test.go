package services

import (
	stderrors "errors"
	"guild-warden/domain"
	"guild-warden/errors"
	"guild-warden/mocks"
	"guild-warden/observability"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsTracker_FreshTenant_JoinThenSnapshot(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	tracker := NewStatsTracker(testLogger(), store, clockwork.NewFakeClockAt(day1), time.UTC, observability.NewNopMetrics())

	// Given tenant g1 without any record
	_, ok := store.GetStats("g1")
	req.False(ok)

	// When a member joins
	req.NoError(tracker.IncrementJoin("g1"))

	// Then the snapshot of the same day holds one join
	counts, err := tracker.Snapshot("g1")
	req.NoError(err)
	req.Equal(domain.DailyCounts{TodayMessageCount: 0, TodayJoinCount: 1}, counts)
}

func TestStatsTracker_SnapshotOnNextDayResetsAndPersists(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	clk := clockwork.NewFakeClockAt(day2)
	metrics := observability.NewNopMetrics()
	tracker := NewStatsTracker(testLogger(), store, clk, time.UTC, metrics)

	// Given g1 was last reset yesterday with 5 messages
	req.NoError(store.PutStats(domain.TenantStats{
		TenantID:          "g1",
		TodayMessageCount: 5,
		TodayJoinCount:    2,
		LastResetDate:     domain.DayOf(day1),
	}))

	// When the snapshot is taken the next day
	counts, err := tracker.Snapshot("g1")

	// Then the counters are zero
	req.NoError(err)
	req.Equal(domain.DailyCounts{}, counts)

	// And the reset has been persisted
	stored, ok := store.GetStats("g1")
	req.True(ok)
	req.Equal(domain.DayOf(day2), stored.LastResetDate)
	req.Zero(stored.TodayMessageCount)
	req.Zero(stored.TodayJoinCount)
	req.Equal(1.0, testutil.ToFloat64(metrics.StatsOperationsTotal.WithLabelValues(observability.StatsKindRolledOver)))
}

func TestStatsTracker_IncrementAfterDayBoundaryStartsFromZero(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	clk := clockwork.NewFakeClockAt(day1)
	tracker := NewStatsTracker(testLogger(), store, clk, time.UTC, observability.NewNopMetrics())

	for range 3 {
		req.NoError(tracker.IncrementMessage("g1"))
	}
	req.NoError(tracker.IncrementJoin("g1"))

	// When the first access of the next day is an increment
	clk.Advance(day2.Sub(day1))
	req.NoError(tracker.IncrementMessage("g1"))

	// Then the reset happened before the increment
	counts, err := tracker.Snapshot("g1")
	req.NoError(err)
	req.Equal(domain.DailyCounts{TodayMessageCount: 1, TodayJoinCount: 0}, counts)
}

func TestStatsTracker_SequentialIncrementsAreNotLost(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	tracker := NewStatsTracker(testLogger(), store, clockwork.NewFakeClockAt(day1), time.UTC, observability.NewNopMetrics())

	const n = 50
	for range n {
		req.NoError(tracker.IncrementMessage("g1"))
	}

	counts, err := tracker.Snapshot("g1")
	req.NoError(err)
	req.Equal(uint64(n), counts.TodayMessageCount)
}

func TestStatsTracker_SnapshotIsIdempotentWithinADay(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	clk := clockwork.NewFakeClockAt(day1)
	tracker := NewStatsTracker(testLogger(), store, clk, time.UTC, observability.NewNopMetrics())
	req.NoError(tracker.IncrementMessage("g1"))
	req.NoError(tracker.IncrementJoin("g1"))

	first, err := tracker.Snapshot("g1")
	req.NoError(err)
	clk.Advance(10 * time.Hour)
	second, err := tracker.Snapshot("g1")
	req.NoError(err)

	req.Equal(first, second)
}

func TestStatsTracker_SnapshotPersistsFreshRecord(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	tracker := NewStatsTracker(testLogger(), store, clockwork.NewFakeClockAt(day1), time.UTC, observability.NewNopMetrics())

	_, err := tracker.Snapshot("g1")
	req.NoError(err)

	stored, ok := store.GetStats("g1")
	req.True(ok)
	req.Equal(domain.NewTenantStats("g1", domain.DayOf(day1)), stored)
}

func TestStatsTracker_TenantsAreIsolated(t *testing.T) {
	req := require.New(t)
	store := newRecordStore(t)
	tracker := NewStatsTracker(testLogger(), store, clockwork.NewFakeClockAt(day1), time.UTC, observability.NewNopMetrics())

	req.NoError(tracker.IncrementMessage("g1"))
	req.NoError(tracker.IncrementMessage("g1"))
	req.NoError(tracker.IncrementJoin("g2"))

	g1, err := tracker.Snapshot("g1")
	req.NoError(err)
	g2, err := tracker.Snapshot("g2")
	req.NoError(err)
	req.Equal(domain.DailyCounts{TodayMessageCount: 2}, g1)
	req.Equal(domain.DailyCounts{TodayJoinCount: 1}, g2)
}

func TestStatsTracker_DayBoundaryFollowsConfiguredLocation(t *testing.T) {
	req := require.New(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	req.NoError(err)
	store := newRecordStore(t)

	// 14:30 UTC on the 15th is already the 16th in Tokyo
	clk := clockwork.NewFakeClockAt(time.Date(2026, 10, 15, 14, 30, 0, 0, time.UTC))
	tracker := NewStatsTracker(testLogger(), store, clk, tokyo, observability.NewNopMetrics())
	req.NoError(store.PutStats(domain.TenantStats{TenantID: "g1", TodayMessageCount: 9, LastResetDate: "2026-10-15"}))

	counts, err := tracker.Snapshot("g1")
	req.NoError(err)
	req.Equal(domain.DailyCounts{}, counts)
}

func TestStatsTracker_WriteFailureIsReturned(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRecordStore(ctrl)
	metrics := observability.NewNopMetrics()
	tracker := NewStatsTracker(testLogger(), store, clockwork.NewFakeClockAt(day1), time.UTC, metrics)

	// Given a storage that cannot be written
	store.EXPECT().GetStats(domain.TenantID("g1")).Return(domain.TenantStats{}, false)
	store.EXPECT().PutStats(gomock.Any()).Return(errors.ErrStorageUnavailable)

	// When a message is counted
	err := tracker.IncrementMessage("g1")

	// Then the storage error reaches the caller
	req.True(stderrors.Is(err, errors.ErrStorageUnavailable))
	req.Equal(1.0, testutil.ToFloat64(metrics.StorageErrorsTotal))
}

func TestStatsTracker_IncrementWritesWholeRecord(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRecordStore(ctrl)
	tracker := NewStatsTracker(testLogger(), store, clockwork.NewFakeClockAt(day1), time.UTC, observability.NewNopMetrics())

	existing := domain.TenantStats{TenantID: "g1", TodayMessageCount: 4, TodayJoinCount: 2, LastResetDate: domain.DayOf(day1)}
	store.EXPECT().GetStats(domain.TenantID("g1")).Return(existing, true)
	store.EXPECT().PutStats(domain.TenantStats{
		TenantID:          "g1",
		TodayMessageCount: 4,
		TodayJoinCount:    3,
		LastResetDate:     domain.DayOf(day1),
	}).Return(nil)

	req.NoError(tracker.IncrementJoin("g1"))
}
