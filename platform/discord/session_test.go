package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func TestDeletableMessageIDs_SkipsMessagesOlderThanTwoWeeks(t *testing.T) {
	req := require.New(t)
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	// Given a fresh message, one just under the limit and one too old
	messages := []*discordgo.Message{
		{ID: "m1", Timestamp: now.Add(-time.Minute)},
		{ID: "m2", Timestamp: now.Add(-bulkDeleteMaxAge + time.Second)},
		{ID: "m3", Timestamp: now.Add(-bulkDeleteMaxAge - time.Second)},
	}

	// When the deletable ids are selected
	ids := deletableMessageIDs(messages, now)

	// Then only the old one is left out
	req.Equal([]string{"m1", "m2"}, ids)
}

func TestOverviewOf_CountsFromState(t *testing.T) {
	req := require.New(t)

	// Given a cached guild with a bot, a category and two text channels
	guild := &discordgo.Guild{
		ID:          "g1",
		Name:        "Guild",
		Icon:        "abc",
		MemberCount: 42,
		Members: []*discordgo.Member{
			{User: &discordgo.User{ID: "u1"}},
			{User: &discordgo.User{ID: "b1", Bot: true}},
			{},
		},
		Channels: []*discordgo.Channel{
			{ID: "cat", Type: discordgo.ChannelTypeGuildCategory},
			{ID: "c1", Type: discordgo.ChannelTypeGuildText},
			{ID: "c2", Type: discordgo.ChannelTypeGuildText},
		},
		Roles: []*discordgo.Role{{ID: "g1"}, {ID: "r1"}},
	}

	// When the overview is computed
	overview := overviewOf(guild)

	// Then
	req.Equal("Guild", overview.Name)
	req.Equal(42, overview.TotalMembers)
	req.Equal(1, overview.Bots)
	req.Equal(1, overview.Categories)
	req.Equal(3, overview.TotalChannels)
	req.Equal(2, overview.TotalRoles)
	req.Equal(discordgo.EndpointGuildIcon("g1", "abc"), overview.IconURL)
}
