package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDayOf_UsesTheTimeLocation(t *testing.T) {
	req := require.New(t)
	paris, err := time.LoadLocation("Europe/Paris")
	req.NoError(err)

	// 23:30 UTC is already the next day in Paris
	at := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC)

	req.Equal(Day("2026-03-01"), DayOf(at))
	req.Equal(Day("2026-03-02"), DayOf(at.In(paris)))
}

func TestTenantStats_RollOver(t *testing.T) {
	req := require.New(t)
	stats := TenantStats{TenantID: "g1", TodayMessageCount: 5, TodayJoinCount: 2, LastResetDate: "2026-03-01"}

	// Same day keeps the counters
	req.False(stats.RollOver("2026-03-01"))
	req.Equal(DailyCounts{TodayMessageCount: 5, TodayJoinCount: 2}, stats.Counts())

	// Another day resets them
	req.True(stats.RollOver("2026-03-02"))
	req.Equal(DailyCounts{}, stats.Counts())
	req.Equal(Day("2026-03-02"), stats.LastResetDate)
}

func TestTicketName(t *testing.T) {
	req := require.New(t)

	req.Equal("ticket-alice", TicketName("Alice"))
	req.True(IsTicketChannel(TicketName("Bob")))
	req.False(IsTicketChannel("general"))
	req.False(IsTicketChannel("my-ticket-bob"))
}

func TestTicketName_FollowsDiscordChannelNaming(t *testing.T) {
	req := require.New(t)

	// Spaces become dashes, punctuation is dropped, dashes never repeat
	req.Equal("ticket-mary-jane", TicketName("Mary Jane"))
	req.Equal("ticket-obrien", TicketName("O'Brien!"))
	req.Equal("ticket-a-b", TicketName("  a -- b  "))
	req.Equal("ticket-dark_knight42", TicketName("Dark_Knight42"))
	req.Equal("ticket-élodie", TicketName("Élodie"))

	// An empty or all-symbol owner still yields a ticket channel
	req.Equal(TicketPrefix, TicketName("★★★"))
	req.True(IsTicketChannel(TicketName("")))

	// The whole name fits in a channel name
	long := TicketName(strings.Repeat("x", 150))
	req.Len([]rune(long), maxChannelName)
	req.True(IsTicketChannel(long))
}
