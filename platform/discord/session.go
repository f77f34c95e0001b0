package discord

import (
	"context"
	"fmt"
	"guild-warden/contract"
	"guild-warden/domain"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

// Discord refuses to bulk delete messages older than two weeks.
const bulkDeleteMaxAge = 14 * 24 * time.Hour

var _ contract.Platform = (*Session)(nil)

// Session implements the platform contract over a discordgo session.
// Every REST call carries the caller's context.
type Session struct {
	dg    *discordgo.Session
	log   *slog.Logger
	clock clockwork.Clock
}

// NewSession prepares a session without opening the gateway connection.
func NewSession(token string, log *slog.Logger, clk clockwork.Clock) (*Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages
	dg.SyncEvents = true
	dg.StateEnabled = true
	return &Session{dg: dg, log: log, clock: clk}, nil
}

// Raw exposes the underlying session to the router and the gateway.
func (s *Session) Raw() *discordgo.Session {
	return s.dg
}

func (s *Session) FindChannelByName(ctx context.Context, tenantID domain.TenantID, name string, kind domain.ChannelKind) (domain.Channel, bool, error) {
	channels, err := s.dg.GuildChannels(string(tenantID), discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, false, mapError("list channels", err)
	}
	wanted := toChannelType(kind)
	found, ok := lo.Find(channels, func(c *discordgo.Channel) bool {
		return c.Name == name && c.Type == wanted
	})
	if !ok {
		return domain.Channel{}, false, nil
	}
	return toChannel(found), true, nil
}

// ResolveChannel looks the channel up in the state cache first, then over REST.
// A channel that belongs to another guild is reported as missing.
func (s *Session) ResolveChannel(ctx context.Context, tenantID domain.TenantID, channelID string) (domain.Channel, bool, error) {
	c, err := s.dg.State.Channel(channelID)
	if err != nil {
		c, err = s.dg.Channel(channelID, discordgo.WithContext(ctx))
		if err != nil {
			if isNotFound(err) {
				return domain.Channel{}, false, nil
			}
			return domain.Channel{}, false, mapError("resolve channel", err)
		}
	}
	if c.GuildID != string(tenantID) {
		return domain.Channel{}, false, nil
	}
	return toChannel(c), true, nil
}

func (s *Session) CreateChannel(ctx context.Context, spec domain.ChannelSpec) (domain.Channel, error) {
	c, err := s.dg.GuildChannelCreateComplex(string(spec.TenantID), toChannelCreateData(spec), discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, mapError("create channel", err)
	}
	return toChannel(c), nil
}

func (s *Session) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := s.dg.ChannelDelete(channelID, discordgo.WithContext(ctx))
	return mapError("delete channel", err)
}

func (s *Session) SendNotice(ctx context.Context, channelID string, notice domain.Notice) error {
	_, err := s.dg.ChannelMessageSendComplex(channelID, toMessageSend(notice), discordgo.WithContext(ctx))
	return mapError("send notice", err)
}

func (s *Session) SendDirect(ctx context.Context, userID string, content string) error {
	dm, err := s.dg.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return mapError("open direct channel", err)
	}
	_, err = s.dg.ChannelMessageSend(dm.ID, content, discordgo.WithContext(ctx))
	return mapError("send direct message", err)
}

// PurgeMessages deletes up to amount of the latest messages of the channel,
// skipping those too old to be bulk deleted.
func (s *Session) PurgeMessages(ctx context.Context, channelID string, amount int) (int, error) {
	messages, err := s.dg.ChannelMessages(channelID, amount, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return 0, mapError("fetch messages", err)
	}
	ids := deletableMessageIDs(messages, s.clock.Now())
	switch len(ids) {
	case 0:
		return 0, nil
	case 1:
		if err = s.dg.ChannelMessageDelete(channelID, ids[0], discordgo.WithContext(ctx)); err != nil {
			return 0, mapError("delete message", err)
		}
	default:
		if err = s.dg.ChannelMessagesBulkDelete(channelID, ids, discordgo.WithContext(ctx)); err != nil {
			return 0, mapError("bulk delete messages", err)
		}
	}
	return len(ids), nil
}

func (s *Session) AddRole(ctx context.Context, tenantID domain.TenantID, userID, roleID string) error {
	return mapError("add role", s.dg.GuildMemberRoleAdd(string(tenantID), userID, roleID, discordgo.WithContext(ctx)))
}

func (s *Session) Kick(ctx context.Context, tenantID domain.TenantID, userID, reason string) error {
	return mapError("kick member", s.dg.GuildMemberDeleteWithReason(string(tenantID), userID, reason, discordgo.WithContext(ctx)))
}

func (s *Session) Ban(ctx context.Context, tenantID domain.TenantID, userID, reason string) error {
	return mapError("ban member", s.dg.GuildBanCreateWithReason(string(tenantID), userID, reason, 0, discordgo.WithContext(ctx)))
}

// Timeout mutes a member until the given instant; nil lifts the timeout.
// The reason is only logged, the timeout endpoint does not carry one.
func (s *Session) Timeout(ctx context.Context, tenantID domain.TenantID, userID string, until *time.Time, reason string) error {
	s.log.Debug("member timeout", "tenant_id", tenantID, "user_id", userID, "until", until, "reason", reason)
	return mapError("timeout member", s.dg.GuildMemberTimeout(string(tenantID), userID, until, discordgo.WithContext(ctx)))
}

// Overview reads the guild from the state cache, falling back to REST.
func (s *Session) Overview(ctx context.Context, tenantID domain.TenantID) (domain.ServerOverview, error) {
	guild, err := s.dg.State.Guild(string(tenantID))
	if err != nil {
		guild, err = s.dg.Guild(string(tenantID), discordgo.WithContext(ctx))
		if err != nil {
			return domain.ServerOverview{}, mapError("fetch guild", err)
		}
	}
	return overviewOf(guild), nil
}

func overviewOf(g *discordgo.Guild) domain.ServerOverview {
	overview := domain.ServerOverview{
		Name:          g.Name,
		TotalMembers:  g.MemberCount,
		Bots:          lo.CountBy(g.Members, func(m *discordgo.Member) bool { return m.User != nil && m.User.Bot }),
		Categories:    lo.CountBy(g.Channels, func(c *discordgo.Channel) bool { return c.Type == discordgo.ChannelTypeGuildCategory }),
		TotalChannels: len(g.Channels),
		TotalRoles:    len(g.Roles),
	}
	if g.Icon != "" {
		overview.IconURL = discordgo.EndpointGuildIcon(g.ID, g.Icon)
	}
	return overview
}

func deletableMessageIDs(messages []*discordgo.Message, now time.Time) []string {
	fresh := lo.Filter(messages, func(m *discordgo.Message, _ int) bool {
		return now.Sub(m.Timestamp) < bulkDeleteMaxAge
	})
	return lo.Map(fresh, func(m *discordgo.Message, _ int) string { return m.ID })
}
