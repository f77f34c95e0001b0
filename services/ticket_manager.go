//go:generate go run go.uber.org/mock/mockgen -source=ticket_manager.go -destination=../mocks/mock_ticket_manager.go -package=mocks
package services

import (
	"context"
	"fmt"
	"guild-warden/contract"
	"guild-warden/domain"
	"guild-warden/errors"
	"guild-warden/observability"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/samber/lo"
)

const (
	DefaultCloseDelay = 5 * time.Second
	DefaultPanelTitle = "Support Ticket"
)

type ITicketManager interface {
	Create(ctx context.Context, cmd domain.CreateTicketCommand) (domain.Ticket, error)
	Close(ctx context.Context, cmd domain.CloseTicketCommand) error
	Panel(ctx context.Context, cmd domain.TicketPanelCommand) error
}

// TicketManager opens and closes ticket channels. A ticket has no record of
// its own: it exists as long as a text channel carrying its derived name exists.
type TicketManager struct {
	log          *slog.Logger
	directory    contract.ChannelDirectory
	messenger    contract.Messenger
	publisher    contract.AuditPublisher
	clock        clockwork.Clock
	metrics      *observability.Metrics
	closeDelay   time.Duration
	staffRoleIDs []string
}

func NewTicketManager(log *slog.Logger, directory contract.ChannelDirectory, messenger contract.Messenger,
	publisher contract.AuditPublisher, clk clockwork.Clock, metrics *observability.Metrics,
	closeDelay time.Duration, staffRoleIDs []string) *TicketManager {
	if closeDelay <= 0 {
		closeDelay = DefaultCloseDelay
	}
	return &TicketManager{
		log:          log,
		directory:    directory,
		messenger:    messenger,
		publisher:    publisher,
		clock:        clk,
		metrics:      metrics,
		closeDelay:   closeDelay,
		staffRoleIDs: lo.Compact(staffRoleIDs),
	}
}

// Create opens a private channel for the requester. When the requester
// already owns one, the existing ticket is returned along with ErrDuplicateTicket.
func (m *TicketManager) Create(ctx context.Context, cmd domain.CreateTicketCommand) (domain.Ticket, error) {
	if err := validateCommand(cmd); err != nil {
		return domain.Ticket{}, err
	}
	ticket := domain.Ticket{
		TenantID:  cmd.TenantID,
		OwnerID:   cmd.OwnerID,
		OwnerName: cmd.OwnerName,
		Status:    domain.TicketOpen,
	}

	existing, found, err := m.directory.FindChannelByName(ctx, cmd.TenantID, ticket.Name(), domain.ChannelText)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("lookup ticket channel: %w", err)
	}
	if found {
		m.log.Debug("ticket already open", "tenant_id", cmd.TenantID, "channel", existing.Name)
		m.metrics.TicketsTotal.WithLabelValues(observability.TicketDuplicate).Inc()
		ticket.ChannelID = existing.ID
		return ticket, errors.ErrDuplicateTicket
	}

	channel, err := m.directory.CreateChannel(ctx, m.ticketChannelSpec(cmd, ticket.Name()))
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("create ticket channel: %w", err)
	}
	ticket.ChannelID = channel.ID
	m.metrics.TicketsTotal.WithLabelValues(observability.TicketCreated).Inc()

	if err = m.messenger.SendNotice(ctx, channel.ID, m.welcomeNotice(cmd)); err != nil {
		m.log.Warn("ticket welcome notice not sent", "tenant_id", cmd.TenantID, "channel_id", channel.ID, "error", err)
	}

	m.publisher.Publish(ctx, domain.NewAuditEvent(cmd.TenantID, domain.AuditTicketCreated,
		fmt.Sprintf("%s created a ticket: %s", displayName(cmd.OwnerTag, cmd.OwnerName), channel.Name),
		m.clock.Now()))
	return ticket, nil
}

// Close announces the closure and deletes the ticket channel once the
// grace delay has elapsed. The deletion cannot be cancelled.
func (m *TicketManager) Close(ctx context.Context, cmd domain.CloseTicketCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	if !domain.IsTicketChannel(cmd.ChannelName) {
		m.metrics.TicketsTotal.WithLabelValues(observability.TicketNotATicket).Inc()
		return errors.ErrNotATicketChannel
	}

	if err := m.messenger.SendNotice(ctx, cmd.ChannelID, m.closingNotice()); err != nil {
		m.log.Warn("ticket closing notice not sent", "tenant_id", cmd.TenantID, "channel_id", cmd.ChannelID, "error", err)
	}
	m.metrics.TicketsTotal.WithLabelValues(observability.TicketClosed).Inc()

	m.publisher.Publish(ctx, domain.NewAuditEvent(cmd.TenantID, domain.AuditTicketClosed,
		fmt.Sprintf("%s closed ticket: %s", displayName(cmd.Actor.Tag, cmd.Actor.ID), cmd.ChannelName),
		m.clock.Now()))

	channelID := cmd.ChannelID
	m.clock.AfterFunc(m.closeDelay, func() { m.removeChannel(channelID) })
	return nil
}

// Panel posts the message carrying the "Create Ticket" button.
func (m *TicketManager) Panel(ctx context.Context, cmd domain.TicketPanelCommand) error {
	if err := validateCommand(cmd); err != nil {
		return err
	}
	title := lo.Ternary(cmd.Title == "", DefaultPanelTitle, cmd.Title)
	notice := domain.Notice{
		Title:       title,
		Description: "Click the button below to create a ticket!",
		Color:       domain.ColorBlue,
		Actions: []domain.NoticeAction{
			{ID: domain.ActionCreateTicket, Label: "Create Ticket", Emoji: "🎫", Style: domain.ActionSuccess},
		},
		At: m.clock.Now(),
	}
	return m.messenger.SendNotice(ctx, cmd.ChannelID, notice)
}

// removeChannel runs on the timer goroutine, detached from any request.
func (m *TicketManager) removeChannel(channelID string) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error("ticket channel removal panicked", "channel_id", channelID, "panic", r)
		}
	}()
	if err := m.directory.DeleteChannel(context.Background(), channelID); err != nil {
		m.log.Debug("ticket channel removal failed", "channel_id", channelID, "error", err)
		m.metrics.TicketsTotal.WithLabelValues(observability.TicketDeleteFailed).Inc()
		return
	}
	m.metrics.TicketsTotal.WithLabelValues(observability.TicketDeleted).Inc()
}

// ticketChannelSpec hides the channel from everyone but the requester and staff.
// On Discord the @everyone role shares the guild id.
func (m *TicketManager) ticketChannelSpec(cmd domain.CreateTicketCommand, name string) domain.ChannelSpec {
	access := domain.PermissionViewChannel | domain.PermissionSendMessages | domain.PermissionReadHistory
	overwrites := []domain.Overwrite{
		{TargetID: string(cmd.TenantID), Target: domain.OverwriteRole, Deny: domain.PermissionViewChannel},
		{TargetID: cmd.OwnerID, Target: domain.OverwriteMember, Allow: access},
	}
	for _, roleID := range m.staffRoleIDs {
		overwrites = append(overwrites, domain.Overwrite{TargetID: roleID, Target: domain.OverwriteRole, Allow: access})
	}
	return domain.ChannelSpec{
		TenantID:   cmd.TenantID,
		Name:       name,
		Kind:       domain.ChannelText,
		Overwrites: overwrites,
	}
}

func (m *TicketManager) welcomeNotice(cmd domain.CreateTicketCommand) domain.Notice {
	return domain.Notice{
		Title:       "Ticket Created",
		Description: fmt.Sprintf("Welcome <@%s>! Please describe your issue and wait for staff to respond.", cmd.OwnerID),
		Color:       domain.ColorBlue,
		Actions: []domain.NoticeAction{
			{ID: domain.ActionCloseTicket, Label: "Close Ticket", Emoji: "🔒", Style: domain.ActionDanger},
		},
		At: m.clock.Now(),
	}
}

func (m *TicketManager) closingNotice() domain.Notice {
	return domain.Notice{
		Title:       "Ticket Closed",
		Description: fmt.Sprintf("This ticket will be deleted in %s...", closeDelayText(m.closeDelay)),
		Color:       domain.ColorRed,
		At:          m.clock.Now(),
	}
}

// closeDelayText renders whole-second delays as "N seconds" and anything
// shorter or fractional as a duration string.
func closeDelayText(d time.Duration) string {
	if d >= time.Second && d%time.Second == 0 {
		return fmt.Sprintf("%d seconds", int(d/time.Second))
	}
	return d.String()
}

func displayName(tag, fallback string) string {
	return lo.Ternary(tag == "", fallback, tag)
}
