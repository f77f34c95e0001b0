package workers

import (
	"context"
	"guild-warden/contract"
	"guild-warden/domain"
	"guild-warden/observability"
	"log/slog"
	"time"
)

const drainTimeout = 5 * time.Second

// AuditDispatcher decouples audit delivery from the action being audited.
//
// Publish never blocks: when the queue is full the event is dropped.
// Run delivers queued events one at a time; a failing or panicking delivery
// is absorbed so that the next event is still delivered.
type AuditDispatcher struct {
	log      *slog.Logger
	notifier contract.AuditNotifier
	queue    chan domain.AuditEvent
	metrics  *observability.Metrics
}

func NewAuditDispatcher(log *slog.Logger, notifier contract.AuditNotifier, size int, metrics *observability.Metrics) *AuditDispatcher {
	return &AuditDispatcher{
		log:      log,
		notifier: notifier,
		queue:    make(chan domain.AuditEvent, max(size, 1)),
		metrics:  metrics,
	}
}

func (d *AuditDispatcher) Publish(_ context.Context, evt domain.AuditEvent) {
	select {
	case d.queue <- evt:
		d.metrics.AuditQueueLength.Set(float64(len(d.queue)))
	default:
		d.log.Warn("audit queue full, event dropped", "audit_id", evt.ID, "tenant_id", evt.TenantID, "action", evt.Action)
		d.metrics.AuditEventsTotal.WithLabelValues(observability.AuditDropped).Inc()
	}
}

func (d *AuditDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-d.queue:
			d.deliver(ctx, evt)
		case <-ctx.Done():
			d.drain()
			return nil
		}
	}
}

// drain flushes what is already queued when the process stops.
func (d *AuditDispatcher) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case evt := <-d.queue:
			if ctx.Err() != nil {
				d.metrics.AuditEventsTotal.WithLabelValues(observability.AuditDropped).Inc()
				continue
			}
			d.deliver(ctx, evt)
		default:
			return
		}
	}
}

func (d *AuditDispatcher) deliver(ctx context.Context, evt domain.AuditEvent) {
	defer func() {
		d.metrics.AuditQueueLength.Set(float64(len(d.queue)))
		if r := recover(); r != nil {
			d.log.Error("audit delivery panicked", "audit_id", evt.ID, "tenant_id", evt.TenantID, "action", evt.Action, "panic", r)
			d.metrics.AuditEventsTotal.WithLabelValues(observability.AuditFailed).Inc()
		}
	}()
	d.log.Debug("delivering audit event", "audit_id", evt.ID, "tenant_id", evt.TenantID, "action", evt.Action)
	d.notifier.Notify(ctx, evt)
}
