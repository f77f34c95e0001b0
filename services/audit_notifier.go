package services

import (
	"context"
	"guild-warden/contract"
	"guild-warden/domain"
	"guild-warden/observability"
	"guild-warden/repositories"
	"log/slog"
)

const AuditIDField = "Audit ID"

// AuditNotifier sends audit events to the channel configured for their tenant.
// It never returns an error: a missing or stale destination drops the event,
// a delivery failure is logged.
type AuditNotifier struct {
	log       *slog.Logger
	store     repositories.IRecordStore
	directory contract.ChannelDirectory
	messenger contract.Messenger
	metrics   *observability.Metrics
}

func NewAuditNotifier(log *slog.Logger, store repositories.IRecordStore, directory contract.ChannelDirectory,
	messenger contract.Messenger, metrics *observability.Metrics) *AuditNotifier {
	return &AuditNotifier{log: log, store: store, directory: directory, messenger: messenger, metrics: metrics}
}

func (n *AuditNotifier) Notify(ctx context.Context, evt domain.AuditEvent) {
	config, ok := n.store.GetConfig(evt.TenantID)
	if !ok || !config.HasAuditChannel() {
		n.metrics.AuditEventsTotal.WithLabelValues(observability.AuditNoDestination).Inc()
		return
	}

	channel, found, err := n.directory.ResolveChannel(ctx, evt.TenantID, config.AuditChannelID)
	if err != nil {
		n.log.Warn("audit channel lookup failed",
			"audit_id", evt.ID, "tenant_id", evt.TenantID, "channel_id", config.AuditChannelID, "error", err)
		n.metrics.AuditEventsTotal.WithLabelValues(observability.AuditFailed).Inc()
		return
	}
	if !found {
		n.log.Debug("audit channel no longer exists",
			"audit_id", evt.ID, "tenant_id", evt.TenantID, "channel_id", config.AuditChannelID)
		n.metrics.AuditEventsTotal.WithLabelValues(observability.AuditStale).Inc()
		return
	}

	if err = n.messenger.SendNotice(ctx, channel.ID, AuditNotice(evt)); err != nil {
		n.log.Warn("audit notice not delivered",
			"audit_id", evt.ID, "tenant_id", evt.TenantID, "channel_id", channel.ID, "action", evt.Action, "error", err)
		n.metrics.AuditEventsTotal.WithLabelValues(observability.AuditFailed).Inc()
		return
	}
	n.log.Debug("audit notice delivered", "audit_id", evt.ID, "tenant_id", evt.TenantID, "action", evt.Action)
	n.metrics.AuditEventsTotal.WithLabelValues(observability.AuditDelivered).Inc()
}

// AuditNotice carries the event ID so a posted notice can be matched with the logs.
func AuditNotice(evt domain.AuditEvent) domain.Notice {
	return domain.Notice{
		Title:       string(evt.Action),
		Description: evt.Description,
		Color:       domain.ColorAudit,
		Fields:      []domain.NoticeField{{Name: AuditIDField, Value: evt.ID.String(), Inline: true}},
		At:          evt.At,
	}
}
