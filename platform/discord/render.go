package discord

import (
	"guild-warden/domain"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

func toChannelType(kind domain.ChannelKind) discordgo.ChannelType {
	switch kind {
	case domain.ChannelCategory:
		return discordgo.ChannelTypeGuildCategory
	case domain.ChannelVoice:
		return discordgo.ChannelTypeGuildVoice
	default:
		return discordgo.ChannelTypeGuildText
	}
}

func toChannelKind(channelType discordgo.ChannelType) domain.ChannelKind {
	switch channelType {
	case discordgo.ChannelTypeGuildText:
		return domain.ChannelText
	case discordgo.ChannelTypeGuildCategory:
		return domain.ChannelCategory
	case discordgo.ChannelTypeGuildVoice:
		return domain.ChannelVoice
	default:
		return domain.ChannelOther
	}
}

func toChannel(c *discordgo.Channel) domain.Channel {
	return domain.Channel{
		ID:       c.ID,
		TenantID: domain.TenantID(c.GuildID),
		Name:     c.Name,
		Kind:     toChannelKind(c.Type),
		ParentID: c.ParentID,
	}
}

func toPermissionBits(p domain.Permission) int64 {
	var bits int64
	if p&domain.PermissionViewChannel != 0 {
		bits |= discordgo.PermissionViewChannel
	}
	if p&domain.PermissionSendMessages != 0 {
		bits |= discordgo.PermissionSendMessages
	}
	if p&domain.PermissionReadHistory != 0 {
		bits |= discordgo.PermissionReadMessageHistory
	}
	return bits
}

func toPermissionOverwrites(overwrites []domain.Overwrite) []*discordgo.PermissionOverwrite {
	return lo.Map(overwrites, func(o domain.Overwrite, _ int) *discordgo.PermissionOverwrite {
		return &discordgo.PermissionOverwrite{
			ID:    o.TargetID,
			Type:  lo.Ternary(o.Target == domain.OverwriteMember, discordgo.PermissionOverwriteTypeMember, discordgo.PermissionOverwriteTypeRole),
			Allow: toPermissionBits(o.Allow),
			Deny:  toPermissionBits(o.Deny),
		}
	})
}

func toChannelCreateData(spec domain.ChannelSpec) discordgo.GuildChannelCreateData {
	return discordgo.GuildChannelCreateData{
		Name:                 spec.Name,
		Type:                 toChannelType(spec.Kind),
		ParentID:             spec.ParentID,
		PermissionOverwrites: toPermissionOverwrites(spec.Overwrites),
	}
}

func toEmbed(n domain.Notice) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       n.Title,
		Description: n.Description,
		Color:       int(n.Color),
		Fields: lo.Map(n.Fields, func(f domain.NoticeField, _ int) *discordgo.MessageEmbedField {
			return &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline}
		}),
	}
	if !n.At.IsZero() {
		embed.Timestamp = n.At.UTC().Format(time.RFC3339)
	}
	if n.Thumbnail != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: n.Thumbnail}
	}
	return embed
}

func toComponents(actions []domain.NoticeAction) []discordgo.MessageComponent {
	if len(actions) == 0 {
		return nil
	}
	buttons := lo.Map(actions, func(a domain.NoticeAction, _ int) discordgo.MessageComponent {
		return discordgo.Button{
			Label:    lo.Ternary(a.Emoji == "", a.Label, a.Emoji+" "+a.Label),
			Style:    lo.Ternary(a.Style == domain.ActionDanger, discordgo.DangerButton, discordgo.SuccessButton),
			CustomID: a.ID,
		}
	})
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func toMessageSend(n domain.Notice) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{toEmbed(n)},
		Components: toComponents(n.Actions),
	}
}
