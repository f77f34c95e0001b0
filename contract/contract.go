//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"guild-warden/domain"
	"reflect"
	"time"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// ChannelDirectory looks channels up and manages their lifecycle on the chat platform.
// Lookups report a missing channel with found=false, not with an error.
type ChannelDirectory interface {
	FindChannelByName(ctx context.Context, tenantID domain.TenantID, name string, kind domain.ChannelKind) (domain.Channel, bool, error)
	ResolveChannel(ctx context.Context, tenantID domain.TenantID, channelID string) (domain.Channel, bool, error)
	CreateChannel(ctx context.Context, spec domain.ChannelSpec) (domain.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error
}

type Messenger interface {
	SendNotice(ctx context.Context, channelID string, notice domain.Notice) error
	SendDirect(ctx context.Context, userID string, content string) error
	PurgeMessages(ctx context.Context, channelID string, amount int) (int, error)
}

type MemberModerator interface {
	AddRole(ctx context.Context, tenantID domain.TenantID, userID, roleID string) error
	Kick(ctx context.Context, tenantID domain.TenantID, userID, reason string) error
	Ban(ctx context.Context, tenantID domain.TenantID, userID, reason string) error
	// Timeout mutes a member until the given time; nil lifts the timeout.
	Timeout(ctx context.Context, tenantID domain.TenantID, userID string, until *time.Time, reason string) error
}

type GuildInspector interface {
	Overview(ctx context.Context, tenantID domain.TenantID) (domain.ServerOverview, error)
}

// Platform is everything the services consume from the chat platform.
type Platform interface {
	ChannelDirectory
	Messenger
	MemberModerator
	GuildInspector
}

// AuditPublisher hands an audit event over without waiting for its delivery.
type AuditPublisher interface {
	Publish(ctx context.Context, evt domain.AuditEvent)
}

// AuditNotifier delivers one audit event. Failures are absorbed.
type AuditNotifier interface {
	Notify(ctx context.Context, evt domain.AuditEvent)
}
