package domain

import "time"

// TenantID identifies one isolated server scope (a Discord guild).
type TenantID string

// Day is a calendar day formatted as YYYY-MM-DD.
type Day string

// DayOf returns the calendar day of t in t's own location.
func DayOf(t time.Time) Day {
	return Day(t.Format(time.DateOnly))
}

// TenantStats holds the activity counters of the current day.
type TenantStats struct {
	TenantID          TenantID
	TodayMessageCount uint64
	TodayJoinCount    uint64
	LastResetDate     Day
}

// NewTenantStats returns a zero-valued record dated today.
func NewTenantStats(tenantID TenantID, today Day) TenantStats {
	return TenantStats{TenantID: tenantID, LastResetDate: today}
}

// RollOver zeroes the counters when the record belongs to another day.
// It reports whether a reset happened.
func (s *TenantStats) RollOver(today Day) bool {
	if s.LastResetDate == today {
		return false
	}
	s.TodayMessageCount = 0
	s.TodayJoinCount = 0
	s.LastResetDate = today
	return true
}

// DailyCounts is the public view of a TenantStats record.
type DailyCounts struct {
	TodayMessageCount uint64
	TodayJoinCount    uint64
}

func (s TenantStats) Counts() DailyCounts {
	return DailyCounts{TodayMessageCount: s.TodayMessageCount, TodayJoinCount: s.TodayJoinCount}
}

// TenantConfig is the per-tenant configuration. An empty AuditChannelID
// means audit events are dropped for that tenant.
type TenantConfig struct {
	TenantID       TenantID
	AuditChannelID string
}

func (c TenantConfig) HasAuditChannel() bool {
	return c.AuditChannelID != ""
}
