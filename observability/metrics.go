package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "guild_warden"

// Audit delivery outcomes.
const (
	AuditDelivered     = "delivered"
	AuditNoDestination = "no_destination"
	AuditStale         = "stale_destination"
	AuditFailed        = "failed"
	AuditDropped       = "dropped"
)

// Ticket transitions.
const (
	TicketCreated       = "created"
	TicketDuplicate     = "duplicate"
	TicketClosed        = "closed"
	TicketNotATicket    = "not_a_ticket"
	TicketDeleted       = "deleted"
	TicketDeleteFailed  = "delete_failed"
	StatsKindMessage    = "message"
	StatsKindJoin       = "join"
	StatsKindSnapshot   = "snapshot"
	StatsKindRolledOver = "rollover"
)

// Metrics holds the Prometheus collectors of the bot.
type Metrics struct {
	AuditEventsTotal       *prometheus.CounterVec
	TicketsTotal           *prometheus.CounterVec
	StatsOperationsTotal   *prometheus.CounterVec
	StorageErrorsTotal     prometheus.Counter
	ModerationActionsTotal *prometheus.CounterVec
	AuditQueueLength       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		AuditEventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "events_total",
			Help:      "Audit events by delivery outcome",
		}, []string{"outcome"}),
		TicketsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tickets",
			Name:      "transitions_total",
			Help:      "Ticket lifecycle transitions and rejections",
		}, []string{"transition"}),
		StatsOperationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "stats",
			Name:      "operations_total",
			Help:      "Stats tracker operations by kind",
		}, []string{"kind"}),
		StorageErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "write_errors_total",
			Help:      "Record store writes that failed",
		}),
		ModerationActionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "moderation",
			Name:      "actions_total",
			Help:      "Completed moderation actions",
		}, []string{"action"}),
		AuditQueueLength: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "audit",
			Name:      "queue_length",
			Help:      "Audit events waiting for delivery",
		}),
	}
}

// NewNopMetrics returns collectors registered nowhere, for tests and tools.
func NewNopMetrics() *Metrics {
	return NewMetrics(prometheus.NewRegistry())
}
