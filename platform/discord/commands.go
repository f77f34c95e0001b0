package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

const (
	CommandAddRole       = "addrole"
	CommandKick          = "kick"
	CommandBan           = "ban"
	CommandMute          = "mute"
	CommandUnmute        = "unmute"
	CommandPurge         = "purge"
	CommandStats         = "stats"
	CommandDM            = "dm"
	CommandTicketPanel   = "ticketpanel"
	CommandCreateChannel = "createchannel"
	CommandSetLogChannel = "setlogchannel"
)

// requiredPermissions is checked by the router against the invoking member,
// independently of the default permissions advertised to Discord.
var requiredPermissions = map[string]int64{
	CommandAddRole:       discordgo.PermissionManageRoles,
	CommandKick:          discordgo.PermissionKickMembers,
	CommandBan:           discordgo.PermissionBanMembers,
	CommandMute:          discordgo.PermissionModerateMembers,
	CommandUnmute:        discordgo.PermissionModerateMembers,
	CommandPurge:         discordgo.PermissionManageMessages,
	CommandDM:            discordgo.PermissionAdministrator,
	CommandTicketPanel:   discordgo.PermissionAdministrator,
	CommandCreateChannel: discordgo.PermissionManageChannels,
	CommandSetLogChannel: discordgo.PermissionAdministrator,
}

func userOption(description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: description,
		Required:    true,
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

// Commands returns the slash commands the bot answers to.
func Commands() []*discordgo.ApplicationCommand {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        CommandAddRole,
			Description: "Add a role to a user",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to add the role to"),
				{Type: discordgo.ApplicationCommandOptionRole, Name: "role", Description: "The role to add", Required: true},
			},
		},
		{
			Name:        CommandKick,
			Description: "Kick a user from the server",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to kick"),
				stringOption("reason", "Reason for kicking", false),
			},
		},
		{
			Name:        CommandBan,
			Description: "Ban a user from the server",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to ban"),
				stringOption("reason", "Reason for banning", false),
			},
		},
		{
			Name:        CommandMute,
			Description: "Mute a user",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to mute"),
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "duration",
					Description: "Duration in minutes (default: 60)",
					MinValue:    lo.ToPtr(1.0),
					MaxValue:    40320,
				},
				stringOption("reason", "Reason for muting", false),
			},
		},
		{
			Name:        CommandUnmute,
			Description: "Unmute a user",
			Options:     []*discordgo.ApplicationCommandOption{userOption("The user to unmute")},
		},
		{
			Name:        CommandPurge,
			Description: "Delete multiple messages",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Number of messages to delete (1-100)",
					Required:    true,
					MinValue:    lo.ToPtr(1.0),
					MaxValue:    100,
				},
			},
		},
		{
			Name:        CommandStats,
			Description: "Display server statistics",
		},
		{
			Name:        CommandDM,
			Description: "Send a DM to a user",
			Options: []*discordgo.ApplicationCommandOption{
				userOption("The user to send DM to"),
				stringOption("message", "The message to send", true),
			},
		},
		{
			Name:        CommandTicketPanel,
			Description: "Create a ticket panel",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Name for the ticket panel (default: Support Ticket)", false),
			},
		},
		{
			Name:        CommandCreateChannel,
			Description: "Create a new text channel",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Name of the channel", true),
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "category",
					Description:  "Category to create the channel in",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory},
				},
			},
		},
		{
			Name:        CommandSetLogChannel,
			Description: "Set the log channel for mod actions",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "The channel to send logs to",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
					Required:     true,
				},
			},
		},
	}
	for _, cmd := range commands {
		if perm, ok := requiredPermissions[cmd.Name]; ok {
			cmd.DefaultMemberPermissions = lo.ToPtr(perm)
		}
	}
	return commands
}

// RegisterCommands replaces the application's commands in one call.
// An empty guildID registers them globally.
func RegisterCommands(ctx context.Context, s *discordgo.Session, guildID string) error {
	if s.State == nil || s.State.User == nil {
		return fmt.Errorf("register commands: session is not ready")
	}
	if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, guildID, Commands(), discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}
