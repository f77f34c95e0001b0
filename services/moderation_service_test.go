package services

import (
	"context"
	"fmt"
	"guild-warden/domain"
	"guild-warden/errors"
	"guild-warden/mocks"
	"guild-warden/observability"
	"guild-warden/repositories"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var moderator = domain.Actor{ID: "u-mod", Tag: "mod#0001"}

type moderationFixture struct {
	platform  *mocks.MockPlatform
	publisher *mocks.MockAuditPublisher
	service   *ModerationService
	published []domain.AuditEvent
}

func newModerationFixture(t *testing.T, store repositories.IRecordStore) *moderationFixture {
	ctrl := gomock.NewController(t)
	f := &moderationFixture{
		platform:  mocks.NewMockPlatform(ctrl),
		publisher: mocks.NewMockAuditPublisher(ctrl),
	}
	if store == nil {
		store = mocks.NewMockIRecordStore(ctrl)
	}
	f.service = NewModerationService(testLogger(), f.platform, store, f.publisher, clockwork.NewFakeClockAt(day1), observability.NewNopMetrics())
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Do(func(_ context.Context, evt domain.AuditEvent) {
		f.published = append(f.published, evt)
	}).AnyTimes()
	return f
}

func TestModerationService_AuditedCommands(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		expect      func(p *mocks.MockPlatform)
		run         func(s *ModerationService) error
		action      domain.AuditAction
		description string
	}{
		{
			name: "Add role",
			expect: func(p *mocks.MockPlatform) {
				p.EXPECT().AddRole(ctx, domain.TenantID("g1"), "u-bob", "r-1").Return(nil)
			},
			run: func(s *ModerationService) error {
				return s.AddRole(ctx, domain.AddRoleCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", UserTag: "bob", RoleID: "r-1", RoleName: "Helper"})
			},
			action:      domain.AuditRoleAdded,
			description: "mod#0001 added role Helper to bob",
		},
		{
			name: "Kick with default reason",
			expect: func(p *mocks.MockPlatform) {
				p.EXPECT().Kick(ctx, domain.TenantID("g1"), "u-bob", DefaultReason).Return(nil)
			},
			run: func(s *ModerationService) error {
				return s.Kick(ctx, domain.KickCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", UserTag: "bob"})
			},
			action:      domain.AuditMemberKicked,
			description: "mod#0001 kicked bob\nReason: No reason provided",
		},
		{
			name: "Ban with reason",
			expect: func(p *mocks.MockPlatform) {
				p.EXPECT().Ban(ctx, domain.TenantID("g1"), "u-bob", "spam").Return(nil)
			},
			run: func(s *ModerationService) error {
				return s.Ban(ctx, domain.BanCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", UserTag: "bob", Reason: "spam"})
			},
			action:      domain.AuditMemberBanned,
			description: "mod#0001 banned bob\nReason: spam",
		},
		{
			name: "Unmute",
			expect: func(p *mocks.MockPlatform) {
				p.EXPECT().Timeout(ctx, domain.TenantID("g1"), "u-bob", nil, "").Return(nil)
			},
			run: func(s *ModerationService) error {
				return s.Unmute(ctx, domain.UnmuteCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", UserTag: "bob"})
			},
			action:      domain.AuditMemberUnmuted,
			description: "mod#0001 unmuted bob",
		},
		{
			name: "Direct message",
			expect: func(p *mocks.MockPlatform) {
				p.EXPECT().SendDirect(ctx, "u-bob", "hello").Return(nil)
			},
			run: func(s *ModerationService) error {
				return s.DirectMessage(ctx, domain.DirectMessageCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", UserTag: "bob", Message: "hello"})
			},
			action:      domain.AuditDirectMessage,
			description: "mod#0001 sent DM to bob",
		},
		{
			name: "Create channel",
			expect: func(p *mocks.MockPlatform) {
				p.EXPECT().CreateChannel(ctx, domain.ChannelSpec{TenantID: "g1", Name: "announcements", Kind: domain.ChannelText, ParentID: "cat-1"}).
					Return(domain.Channel{ID: "c-2", Name: "announcements"}, nil)
			},
			run: func(s *ModerationService) error {
				_, err := s.CreateChannel(ctx, domain.CreateChannelCommand{TenantID: "g1", Actor: moderator, Name: "announcements", ParentID: "cat-1"})
				return err
			},
			action:      domain.AuditChannelCreated,
			description: "mod#0001 created channel announcements",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			f := newModerationFixture(t, nil)
			tt.expect(f.platform)

			req.NoError(tt.run(f.service))

			req.Len(f.published, 1)
			req.Equal(tt.action, f.published[0].Action)
			req.Equal(tt.description, f.published[0].Description)
			req.Equal(domain.TenantID("g1"), f.published[0].TenantID)
		})
	}
}

func TestModerationService_Mute_DefaultsToOneHour(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newModerationFixture(t, nil)

	expected := day1.Add(60 * time.Minute)
	f.platform.EXPECT().Timeout(ctx, domain.TenantID("g1"), "u-bob", &expected, DefaultReason).Return(nil)

	until, err := f.service.Mute(ctx, domain.MuteCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", UserTag: "bob"})

	req.NoError(err)
	req.Equal(expected, until)
	req.Equal("mod#0001 muted bob for 60 minutes\nReason: No reason provided", f.published[0].Description)
}

func TestModerationService_Purge(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes and audits", func(t *testing.T) {
		req := require.New(t)
		f := newModerationFixture(t, nil)
		f.platform.EXPECT().PurgeMessages(ctx, "c-1", 10).Return(8, nil)

		deleted, err := f.service.Purge(ctx, domain.PurgeCommand{TenantID: "g1", Actor: moderator, ChannelID: "c-1", ChannelName: "general", Amount: 10})

		req.NoError(err)
		req.Equal(8, deleted)
		req.Equal("mod#0001 deleted 8 messages in general", f.published[0].Description)
	})

	for _, amount := range []int{0, 101, -3} {
		t.Run(fmt.Sprintf("Rejects amount %d", amount), func(t *testing.T) {
			req := require.New(t)
			f := newModerationFixture(t, nil)
			f.platform.EXPECT().PurgeMessages(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := f.service.Purge(ctx, domain.PurgeCommand{TenantID: "g1", Actor: moderator, ChannelID: "c-1", Amount: amount})

			req.ErrorIs(err, errors.ErrInvalidCommand)
			req.Empty(f.published)
		})
	}
}

func TestModerationService_PlatformFailureIsNotAudited(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newModerationFixture(t, nil)
	f.platform.EXPECT().Kick(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.ErrResourceNotFound)

	err := f.service.Kick(ctx, domain.KickCommand{TenantID: "g1", Actor: moderator, UserID: "u-ghost"})

	req.ErrorIs(err, errors.ErrResourceNotFound)
	req.Empty(f.published)
}

func TestModerationService_DirectMessageRefused(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newModerationFixture(t, nil)
	f.platform.EXPECT().SendDirect(gomock.Any(), gomock.Any(), gomock.Any()).Return(fmt.Errorf("cannot send messages to this user"))

	err := f.service.DirectMessage(ctx, domain.DirectMessageCommand{TenantID: "g1", Actor: moderator, UserID: "u-bob", Message: "hi"})

	req.ErrorIs(err, errors.ErrDirectMessageFailed)
	req.Empty(f.published)
}

func TestModerationService_SetAuditChannel(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	store := newRecordStore(t)
	f := newModerationFixture(t, store)

	// Given no configuration for g1
	_, ok := store.GetConfig("g1")
	req.False(ok)

	// When the audit channel is set twice
	req.NoError(f.service.SetAuditChannel(ctx, domain.SetAuditChannelCommand{TenantID: "g1", Actor: moderator, ChannelID: "c-log", ChannelName: "mod-log"}))
	req.NoError(f.service.SetAuditChannel(ctx, domain.SetAuditChannelCommand{TenantID: "g1", Actor: moderator, ChannelID: "c-log-2"}))

	// Then the record is overwritten in place
	config, ok := store.GetConfig("g1")
	req.True(ok)
	req.Equal(domain.TenantConfig{TenantID: "g1", AuditChannelID: "c-log-2"}, config)
	req.Len(f.published, 2)
	req.Equal(domain.AuditChannelSelected, f.published[0].Action)
}

func TestModerationService_SetAuditChannel_StorageFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockIRecordStore(ctrl)
	f := newModerationFixture(t, store)

	store.EXPECT().GetConfig(domain.TenantID("g1")).Return(domain.TenantConfig{}, false)
	store.EXPECT().PutConfig(domain.TenantConfig{TenantID: "g1", AuditChannelID: "c-log"}).Return(errors.ErrStorageUnavailable)

	err := f.service.SetAuditChannel(context.Background(), domain.SetAuditChannelCommand{TenantID: "g1", Actor: moderator, ChannelID: "c-log"})

	req.ErrorIs(err, errors.ErrStorageUnavailable)
	req.Empty(f.published)
}
