package discord

import (
	"context"
	stderrors "errors"
	"fmt"
	"guild-warden/contract"
	"guild-warden/domain"
	"guild-warden/errors"
	"guild-warden/services"
	"log/slog"
	"strconv"

	"github.com/bwmarrin/discordgo"
	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

const (
	approved = "✅"
	denied   = "❌"
)

// deniedReasons completes "You don't have permission to ..." per command.
var deniedReasons = map[string]string{
	CommandAddRole:       "manage roles",
	CommandKick:          "kick members",
	CommandBan:           "ban members",
	CommandMute:          "mute members",
	CommandUnmute:        "unmute members",
	CommandPurge:         "manage messages",
	CommandCreateChannel: "manage channels",
}

// reply is what the router answers to an interaction.
type reply struct {
	content   string
	notice    *domain.Notice
	ephemeral bool
}

func (r reply) response() *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{Content: r.content}
	if r.notice != nil {
		data.Embeds = []*discordgo.MessageEmbed{toEmbed(*r.notice)}
	}
	if r.ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

func private(content string) reply {
	return reply{content: content, ephemeral: true}
}

// Router turns gateway events into service calls.
type Router struct {
	log        *slog.Logger
	stats      services.IStatsTracker
	tickets    services.ITicketManager
	moderation services.IModerationService
	directory  contract.ChannelDirectory
	inspector  contract.GuildInspector
	clock      clockwork.Clock
}

func NewRouter(log *slog.Logger, stats services.IStatsTracker, tickets services.ITicketManager,
	moderation services.IModerationService, directory contract.ChannelDirectory,
	inspector contract.GuildInspector, clk clockwork.Clock) *Router {
	return &Router{
		log:        log,
		stats:      stats,
		tickets:    tickets,
		moderation: moderation,
		directory:  directory,
		inspector:  inspector,
		clock:      clk,
	}
}

// Attach registers the router handlers on the session and returns a
// function removing them. Handlers run with ctx.
func (r *Router) Attach(ctx context.Context, s *discordgo.Session) (detach func()) {
	removers := []func(){
		s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
			r.OnMessage(m.Message)
		}),
		s.AddHandler(func(_ *discordgo.Session, m *discordgo.GuildMemberAdd) {
			r.OnMemberJoin(m.Member)
		}),
		s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			rep := r.OnInteraction(ctx, i.Interaction)
			if err := s.InteractionRespond(i.Interaction, rep.response(), discordgo.WithContext(ctx)); err != nil {
				r.log.Warn("interaction reply failed", "guild_id", i.GuildID, "error", err)
			}
		}),
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// OnMessage counts guild messages written by humans.
func (r *Router) OnMessage(m *discordgo.Message) {
	if m == nil || m.GuildID == "" || m.Author == nil || m.Author.Bot {
		return
	}
	if err := r.stats.IncrementMessage(domain.TenantID(m.GuildID)); err != nil {
		r.log.Error("message count not recorded", "tenant_id", m.GuildID, "error", err)
	}
}

func (r *Router) OnMemberJoin(m *discordgo.Member) {
	if m == nil || m.GuildID == "" {
		return
	}
	if err := r.stats.IncrementJoin(domain.TenantID(m.GuildID)); err != nil {
		r.log.Error("join count not recorded", "tenant_id", m.GuildID, "error", err)
	}
}

// OnInteraction handles slash commands and buttons. It always produces a reply.
func (r *Router) OnInteraction(ctx context.Context, i *discordgo.Interaction) (rep reply) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Error("interaction handler panicked", "guild_id", i.GuildID, "panic", p)
			rep = private(denied + " An error occurred while executing this command!")
		}
	}()
	if i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return r.failure("", errors.ErrNotInGuild)
	}
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		out, err := r.command(ctx, i, data)
		if err != nil {
			return r.failure(data.Name, err)
		}
		return out
	case discordgo.InteractionMessageComponent:
		out, err := r.button(ctx, i, i.MessageComponentData().CustomID)
		if err != nil {
			return r.failure("", err)
		}
		return out
	default:
		return private(denied + " Unsupported interaction!")
	}
}

func (r *Router) command(ctx context.Context, i *discordgo.Interaction, data discordgo.ApplicationCommandInteractionData) (reply, error) {
	if perm, ok := requiredPermissions[data.Name]; ok && !hasPermission(i.Member.Permissions, perm) {
		return reply{}, errors.ErrMissingPermission
	}
	tenantID := domain.TenantID(i.GuildID)
	actor := actorOf(i.Member)
	in := newCommandInput(data)

	switch data.Name {
	case CommandAddRole:
		userID, userTag := in.user("user")
		roleID, roleName := in.role("role")
		cmd := domain.AddRoleCommand{TenantID: tenantID, Actor: actor, UserID: userID, UserTag: userTag, RoleID: roleID, RoleName: roleName}
		if err := r.moderation.AddRole(ctx, cmd); err != nil {
			return reply{}, err
		}
		return r.public("Role Added", fmt.Sprintf("Successfully added <@&%s> to <@%s>", roleID, userID), domain.ColorGreen), nil

	case CommandKick:
		userID, userTag := in.user("user")
		cmd := domain.KickCommand{TenantID: tenantID, Actor: actor, UserID: userID, UserTag: userTag, Reason: in.str("reason")}
		if err := r.moderation.Kick(ctx, cmd); err != nil {
			return reply{}, err
		}
		return r.withReason("Member Kicked", userTag+" has been kicked", cmd.Reason, domain.ColorOrange), nil

	case CommandBan:
		userID, userTag := in.user("user")
		cmd := domain.BanCommand{TenantID: tenantID, Actor: actor, UserID: userID, UserTag: userTag, Reason: in.str("reason")}
		if err := r.moderation.Ban(ctx, cmd); err != nil {
			return reply{}, err
		}
		return r.withReason("Member Banned", userTag+" has been banned", cmd.Reason, domain.ColorRed), nil

	case CommandMute:
		userID, userTag := in.user("user")
		minutes := lo.Ternary(in.integer("duration") == 0, services.DefaultMuteMinutes, in.integer("duration"))
		cmd := domain.MuteCommand{TenantID: tenantID, Actor: actor, UserID: userID, UserTag: userTag, Minutes: minutes, Reason: in.str("reason")}
		if _, err := r.moderation.Mute(ctx, cmd); err != nil {
			return reply{}, err
		}
		return r.withReason("Member Muted", fmt.Sprintf("%s has been muted for %d minutes", userTag, minutes), cmd.Reason, domain.ColorRed), nil

	case CommandUnmute:
		userID, userTag := in.user("user")
		if err := r.moderation.Unmute(ctx, domain.UnmuteCommand{TenantID: tenantID, Actor: actor, UserID: userID, UserTag: userTag}); err != nil {
			return reply{}, err
		}
		return r.public("Member Unmuted", userTag+" has been unmuted", domain.ColorGreen), nil

	case CommandPurge:
		channel, _, err := r.directory.ResolveChannel(ctx, tenantID, i.ChannelID)
		if err != nil {
			return reply{}, err
		}
		cmd := domain.PurgeCommand{TenantID: tenantID, Actor: actor, ChannelID: i.ChannelID, ChannelName: channel.Name, Amount: in.integer("amount")}
		deleted, err := r.moderation.Purge(ctx, cmd)
		if err != nil {
			return reply{}, err
		}
		rep := r.public("Messages Purged", fmt.Sprintf("Successfully deleted %d messages", deleted), domain.ColorGreen)
		rep.ephemeral = true
		return rep, nil

	case CommandStats:
		return r.serverStats(ctx, tenantID)

	case CommandDM:
		userID, userTag := in.user("user")
		cmd := domain.DirectMessageCommand{TenantID: tenantID, Actor: actor, UserID: userID, UserTag: userTag, Message: in.str("message")}
		if err := r.moderation.DirectMessage(ctx, cmd); err != nil {
			if stderrors.Is(err, errors.ErrDirectMessageFailed) {
				return private(fmt.Sprintf("%s Could not send DM to %s!", denied, userTag)), nil
			}
			return reply{}, err
		}
		return private(fmt.Sprintf("%s DM sent to %s!", approved, userTag)), nil

	case CommandTicketPanel:
		cmd := domain.TicketPanelCommand{TenantID: tenantID, Actor: actor, ChannelID: i.ChannelID, Title: in.str("name")}
		if err := r.tickets.Panel(ctx, cmd); err != nil {
			return reply{}, err
		}
		return private(approved + " Ticket panel created!"), nil

	case CommandCreateChannel:
		parentID, _ := in.channel("category")
		cmd := domain.CreateChannelCommand{TenantID: tenantID, Actor: actor, Name: in.str("name"), ParentID: parentID}
		channel, err := r.moderation.CreateChannel(ctx, cmd)
		if err != nil {
			return reply{}, err
		}
		return r.public("Channel Created", fmt.Sprintf("Successfully created <#%s>", channel.ID), domain.ColorGreen), nil

	case CommandSetLogChannel:
		channelID, channelName := in.channel("channel")
		cmd := domain.SetAuditChannelCommand{TenantID: tenantID, Actor: actor, ChannelID: channelID, ChannelName: channelName}
		if err := r.moderation.SetAuditChannel(ctx, cmd); err != nil {
			return reply{}, err
		}
		return private(fmt.Sprintf("%s Log channel set to <#%s>!", approved, channelID)), nil
	}
	return reply{}, fmt.Errorf("%w: unknown command %q", errors.ErrInvalidCommand, data.Name)
}

func (r *Router) button(ctx context.Context, i *discordgo.Interaction, customID string) (reply, error) {
	tenantID := domain.TenantID(i.GuildID)
	switch customID {
	case domain.ActionCreateTicket:
		user := i.Member.User
		cmd := domain.CreateTicketCommand{TenantID: tenantID, OwnerID: user.ID, OwnerName: user.Username, OwnerTag: user.String()}
		ticket, err := r.tickets.Create(ctx, cmd)
		if stderrors.Is(err, errors.ErrDuplicateTicket) {
			return private(fmt.Sprintf("%s You already have an open ticket: <#%s>", denied, ticket.ChannelID)), nil
		}
		if err != nil {
			return reply{}, err
		}
		return private(fmt.Sprintf("%s Ticket created: <#%s>", approved, ticket.ChannelID)), nil

	case domain.ActionCloseTicket:
		channel, found, err := r.directory.ResolveChannel(ctx, tenantID, i.ChannelID)
		if err != nil {
			return reply{}, err
		}
		if !found {
			return reply{}, errors.ErrNotATicketChannel
		}
		cmd := domain.CloseTicketCommand{TenantID: tenantID, Actor: actorOf(i.Member), ChannelID: channel.ID, ChannelName: channel.Name}
		if err = r.tickets.Close(ctx, cmd); err != nil {
			return reply{}, err
		}
		return private(approved + " Closing ticket..."), nil
	}
	return reply{}, fmt.Errorf("%w: unknown button %q", errors.ErrInvalidCommand, customID)
}

func (r *Router) serverStats(ctx context.Context, tenantID domain.TenantID) (reply, error) {
	overview, err := r.inspector.Overview(ctx, tenantID)
	if err != nil {
		return reply{}, err
	}
	counts, err := r.stats.Snapshot(tenantID)
	if err != nil {
		return reply{}, err
	}
	return reply{notice: lo.ToPtr(StatsNotice(overview, counts, r.clock))}, nil
}

// StatsNotice merges the platform counts with today's activity counters.
func StatsNotice(overview domain.ServerOverview, counts domain.DailyCounts, clk clockwork.Clock) domain.Notice {
	field := func(name string, value int) domain.NoticeField {
		return domain.NoticeField{Name: name, Value: strconv.Itoa(value), Inline: true}
	}
	return domain.Notice{
		Title:     "Server Statistics",
		Color:     domain.ColorBlue,
		Thumbnail: overview.IconURL,
		Fields: []domain.NoticeField{
			field("Total Members", overview.TotalMembers),
			field("Bots", overview.Bots),
			field("Categories", overview.Categories),
			field("Total Channels", overview.TotalChannels),
			field("Total Roles", overview.TotalRoles),
			{Name: "Today Messages", Value: strconv.FormatUint(counts.TodayMessageCount, 10), Inline: true},
			{Name: "Today Joins", Value: strconv.FormatUint(counts.TodayJoinCount, 10), Inline: true},
		},
		At: clk.Now(),
	}
}

func (r *Router) public(title, description string, color domain.Color) reply {
	return reply{notice: &domain.Notice{Title: title, Description: description, Color: color, At: r.clock.Now()}}
}

func (r *Router) withReason(title, description, reason string, color domain.Color) reply {
	rep := r.public(title, description, color)
	rep.notice.Fields = []domain.NoticeField{{Name: "Reason", Value: lo.Ternary(reason == "", services.DefaultReason, reason)}}
	return rep
}

// failure maps the error taxonomy to the ephemeral answer shown to the member.
func (r *Router) failure(command string, err error) reply {
	switch {
	case stderrors.Is(err, errors.ErrMissingPermission):
		return private(fmt.Sprintf("%s You don't have permission to %s!", denied, lo.ValueOr(deniedReasons, command, "use this command")))
	case stderrors.Is(err, errors.ErrInvalidCommand) && command == CommandPurge:
		return private(denied + " Please provide a number between 1 and 100!")
	case stderrors.Is(err, errors.ErrInvalidCommand):
		return private(denied + " Invalid command options!")
	case stderrors.Is(err, errors.ErrNotATicketChannel):
		return private(denied + " This is not a ticket channel!")
	case stderrors.Is(err, errors.ErrNotInGuild):
		return private(denied + " This command can only be used in a server!")
	}
	r.log.Error("interaction failed", "command", command, "error", err)
	return private(denied + " An error occurred while executing this command!")
}

func hasPermission(granted, required int64) bool {
	return granted&discordgo.PermissionAdministrator != 0 || granted&required == required
}

func actorOf(m *discordgo.Member) domain.Actor {
	return domain.Actor{ID: m.User.ID, Tag: m.User.String()}
}

// commandInput reads options, preferring the objects Discord resolved in the
// payload over extra REST lookups.
type commandInput struct {
	resolved *discordgo.ApplicationCommandInteractionDataResolved
	options  map[string]*discordgo.ApplicationCommandInteractionDataOption
}

func newCommandInput(data discordgo.ApplicationCommandInteractionData) commandInput {
	return commandInput{
		resolved: data.Resolved,
		options: lo.SliceToMap(data.Options, func(o *discordgo.ApplicationCommandInteractionDataOption) (string, *discordgo.ApplicationCommandInteractionDataOption) {
			return o.Name, o
		}),
	}
}

func (in commandInput) id(name string) string {
	opt, ok := in.options[name]
	if !ok {
		return ""
	}
	id, _ := opt.Value.(string)
	return id
}

func (in commandInput) user(name string) (id, tag string) {
	id = in.id(name)
	if in.resolved != nil {
		if u, ok := in.resolved.Users[id]; ok {
			return id, u.String()
		}
	}
	return id, id
}

func (in commandInput) role(name string) (id, roleName string) {
	id = in.id(name)
	if in.resolved != nil {
		if role, ok := in.resolved.Roles[id]; ok {
			return id, role.Name
		}
	}
	return id, ""
}

func (in commandInput) channel(name string) (id, channelName string) {
	id = in.id(name)
	if in.resolved != nil {
		if c, ok := in.resolved.Channels[id]; ok {
			return id, c.Name
		}
	}
	return id, ""
}

func (in commandInput) str(name string) string {
	opt, ok := in.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return ""
	}
	return opt.StringValue()
}

func (in commandInput) integer(name string) int {
	opt, ok := in.options[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0
	}
	return int(opt.IntValue())
}
