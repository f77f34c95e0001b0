//go:generate go run go.uber.org/mock/mockgen -source=moderation_service.go -destination=../mocks/mock_moderation_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"guild-warden/contract"
	"guild-warden/domain"
	"guild-warden/errors"
	"guild-warden/observability"
	"guild-warden/repositories"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

const (
	DefaultReason      = "No reason provided"
	DefaultMuteMinutes = 60
)

type IModerationService interface {
	AddRole(ctx context.Context, cmd domain.AddRoleCommand) error
	Kick(ctx context.Context, cmd domain.KickCommand) error
	Ban(ctx context.Context, cmd domain.BanCommand) error
	Mute(ctx context.Context, cmd domain.MuteCommand) (time.Time, error)
	Unmute(ctx context.Context, cmd domain.UnmuteCommand) error
	Purge(ctx context.Context, cmd domain.PurgeCommand) (int, error)
	DirectMessage(ctx context.Context, cmd domain.DirectMessageCommand) error
	CreateChannel(ctx context.Context, cmd domain.CreateChannelCommand) (domain.Channel, error)
	SetAuditChannel(ctx context.Context, cmd domain.SetAuditChannelCommand) error
}

// ModerationService runs the administrative commands. Every successful
// command is followed by an audit event; the audit path never changes the
// outcome of the command.
type ModerationService struct {
	log       *slog.Logger
	platform  contract.Platform
	store     repositories.IRecordStore
	publisher contract.AuditPublisher
	clock     clockwork.Clock
	metrics   *observability.Metrics
}

func NewModerationService(log *slog.Logger, platform contract.Platform, store repositories.IRecordStore,
	publisher contract.AuditPublisher, clk clockwork.Clock, metrics *observability.Metrics) *ModerationService {
	return &ModerationService{log: log, platform: platform, store: store, publisher: publisher, clock: clk, metrics: metrics}
}

func (s *ModerationService) AddRole(ctx context.Context, cmd domain.AddRoleCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := s.platform.AddRole(ctx, cmd.TenantID, cmd.UserID, cmd.RoleID); err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditRoleAdded,
		fmt.Sprintf("%s added role %s to %s", tagOf(cmd.Actor), lo.Ternary(cmd.RoleName == "", cmd.RoleID, cmd.RoleName), displayName(cmd.UserTag, cmd.UserID)))
	return nil
}

func (s *ModerationService) Kick(ctx context.Context, cmd domain.KickCommand) error {
	cmd.Reason = reasonOrDefault(cmd.Reason)
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := s.platform.Kick(ctx, cmd.TenantID, cmd.UserID, cmd.Reason); err != nil {
		return fmt.Errorf("kick: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditMemberKicked,
		fmt.Sprintf("%s kicked %s\nReason: %s", tagOf(cmd.Actor), displayName(cmd.UserTag, cmd.UserID), cmd.Reason))
	return nil
}

func (s *ModerationService) Ban(ctx context.Context, cmd domain.BanCommand) error {
	cmd.Reason = reasonOrDefault(cmd.Reason)
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := s.platform.Ban(ctx, cmd.TenantID, cmd.UserID, cmd.Reason); err != nil {
		return fmt.Errorf("ban: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditMemberBanned,
		fmt.Sprintf("%s banned %s\nReason: %s", tagOf(cmd.Actor), displayName(cmd.UserTag, cmd.UserID), cmd.Reason))
	return nil
}

// Mute times the member out and returns the end of the timeout.
func (s *ModerationService) Mute(ctx context.Context, cmd domain.MuteCommand) (time.Time, error) {
	cmd.Reason = reasonOrDefault(cmd.Reason)
	if cmd.Minutes == 0 {
		cmd.Minutes = DefaultMuteMinutes
	}
	if err := validateCommand(cmd); err != nil {
		return time.Time{}, err
	}
	until := s.clock.Now().Add(time.Duration(cmd.Minutes) * time.Minute)
	if err := s.platform.Timeout(ctx, cmd.TenantID, cmd.UserID, &until, cmd.Reason); err != nil {
		return time.Time{}, fmt.Errorf("mute: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditMemberMuted,
		fmt.Sprintf("%s muted %s for %d minutes\nReason: %s", tagOf(cmd.Actor), displayName(cmd.UserTag, cmd.UserID), cmd.Minutes, cmd.Reason))
	return until, nil
}

func (s *ModerationService) Unmute(ctx context.Context, cmd domain.UnmuteCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := s.platform.Timeout(ctx, cmd.TenantID, cmd.UserID, nil, ""); err != nil {
		return fmt.Errorf("unmute: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditMemberUnmuted,
		fmt.Sprintf("%s unmuted %s", tagOf(cmd.Actor), displayName(cmd.UserTag, cmd.UserID)))
	return nil
}

// Purge deletes up to Amount recent messages and returns how many were removed.
func (s *ModerationService) Purge(ctx context.Context, cmd domain.PurgeCommand) (int, error) {
	if err := validateCommand(cmd); err != nil {
		return 0, err
	}
	deleted, err := s.platform.PurgeMessages(ctx, cmd.ChannelID, cmd.Amount)
	if err != nil {
		return 0, fmt.Errorf("purge: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditMessagesPurged,
		fmt.Sprintf("%s deleted %d messages in %s", tagOf(cmd.Actor), deleted, lo.Ternary(cmd.ChannelName == "", cmd.ChannelID, cmd.ChannelName)))
	return deleted, nil
}

func (s *ModerationService) DirectMessage(ctx context.Context, cmd domain.DirectMessageCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if err := s.platform.SendDirect(ctx, cmd.UserID, cmd.Message); err != nil {
		s.log.Debug("direct message refused", "user_id", cmd.UserID, "error", err)
		return fmt.Errorf("%w: %v", errors.ErrDirectMessageFailed, err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditDirectMessage,
		fmt.Sprintf("%s sent DM to %s", tagOf(cmd.Actor), displayName(cmd.UserTag, cmd.UserID)))
	return nil
}

func (s *ModerationService) CreateChannel(ctx context.Context, cmd domain.CreateChannelCommand) (domain.Channel, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Channel{}, err
	}
	channel, err := s.platform.CreateChannel(ctx, domain.ChannelSpec{
		TenantID: cmd.TenantID,
		Name:     cmd.Name,
		Kind:     domain.ChannelText,
		ParentID: cmd.ParentID,
	})
	if err != nil {
		return domain.Channel{}, fmt.Errorf("create channel: %w", err)
	}
	s.audit(ctx, cmd.TenantID, domain.AuditChannelCreated,
		fmt.Sprintf("%s created channel %s", tagOf(cmd.Actor), channel.Name))
	return channel, nil
}

// SetAuditChannel rewrites the tenant configuration with a new audit
// destination. Storage failures are returned to the caller.
func (s *ModerationService) SetAuditChannel(ctx context.Context, cmd domain.SetAuditChannelCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	config, ok := s.store.GetConfig(cmd.TenantID)
	if !ok {
		config = domain.TenantConfig{TenantID: cmd.TenantID}
	}
	config.AuditChannelID = cmd.ChannelID
	if err := s.store.PutConfig(config); err != nil {
		s.metrics.StorageErrorsTotal.Inc()
		return err
	}
	s.log.Info("audit channel configured", "tenant_id", cmd.TenantID, "channel_id", cmd.ChannelID)
	s.audit(ctx, cmd.TenantID, domain.AuditChannelSelected,
		fmt.Sprintf("%s set the log channel to %s", tagOf(cmd.Actor), lo.Ternary(cmd.ChannelName == "", cmd.ChannelID, cmd.ChannelName)))
	return nil
}

func (s *ModerationService) audit(ctx context.Context, tenantID domain.TenantID, action domain.AuditAction, description string) {
	s.metrics.ModerationActionsTotal.WithLabelValues(string(action)).Inc()
	s.publisher.Publish(ctx, domain.NewAuditEvent(tenantID, action, description, s.clock.Now()))
}

func reasonOrDefault(reason string) string {
	return lo.Ternary(reason == "", DefaultReason, reason)
}

func tagOf(actor domain.Actor) string {
	return displayName(actor.Tag, actor.ID)
}
