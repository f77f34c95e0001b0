package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction is the label of a completed state-changing action.
type AuditAction string

const (
	AuditRoleAdded       AuditAction = "Role Added"
	AuditMemberKicked    AuditAction = "Member Kicked"
	AuditMemberBanned    AuditAction = "Member Banned"
	AuditMemberMuted     AuditAction = "Member Muted"
	AuditMemberUnmuted   AuditAction = "Member Unmuted"
	AuditMessagesPurged  AuditAction = "Messages Purged"
	AuditDirectMessage   AuditAction = "DM Sent"
	AuditChannelCreated  AuditAction = "Channel Created"
	AuditTicketCreated   AuditAction = "Ticket Created"
	AuditTicketClosed    AuditAction = "Ticket Closed"
	AuditChannelSelected AuditAction = "Log Channel Set"
)

type AuditEvent struct {
	ID          uuid.UUID
	TenantID    TenantID
	Action      AuditAction
	Description string
	At          time.Time
}

func NewAuditEvent(tenantID TenantID, action AuditAction, description string, at time.Time) AuditEvent {
	return AuditEvent{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Action:      action,
		Description: description,
		At:          at,
	}
}
