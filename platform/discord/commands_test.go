package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestCommands_AdvertiseRequiredPermissions(t *testing.T) {
	req := require.New(t)
	commands := Commands()

	names := lo.Map(commands, func(c *discordgo.ApplicationCommand, _ int) string { return c.Name })
	req.Len(lo.Uniq(names), len(names))

	for _, cmd := range commands {
		perm, restricted := requiredPermissions[cmd.Name]
		if !restricted {
			req.Nil(cmd.DefaultMemberPermissions, cmd.Name)
			continue
		}
		req.NotNil(cmd.DefaultMemberPermissions, cmd.Name)
		req.Equal(perm, *cmd.DefaultMemberPermissions, cmd.Name)
	}
}

func TestCommands_PurgeAmountIsBounded(t *testing.T) {
	req := require.New(t)
	purge, ok := lo.Find(Commands(), func(c *discordgo.ApplicationCommand) bool { return c.Name == CommandPurge })
	req.True(ok)
	amount := purge.Options[0]
	req.True(amount.Required)
	req.Equal(1.0, *amount.MinValue)
	req.Equal(100.0, amount.MaxValue)
}

func TestHasPermission(t *testing.T) {
	req := require.New(t)
	req.True(hasPermission(discordgo.PermissionKickMembers|discordgo.PermissionSendMessages, discordgo.PermissionKickMembers))
	req.True(hasPermission(discordgo.PermissionAdministrator, discordgo.PermissionBanMembers))
	req.False(hasPermission(discordgo.PermissionSendMessages, discordgo.PermissionKickMembers))
}
