package serverrepo

import (
	"context"
	"testing"
	"time"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/database/dbtest"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/channelrepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/memberrepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/profilerepo"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	owner  *model.Profile
	mod    *model.Profile
	guest  *model.Profile
	server *model.Server
}

func seed(t *testing.T, ctx context.Context, db *sqlx.DB) fixture {
	t.Helper()
	profiles := profilerepo.New()
	members := memberrepo.New()
	channels := channelrepo.New()

	f := fixture{
		owner: &model.Profile{UserId: "u_owner", Name: "Owner"},
		mod:   &model.Profile{UserId: "u_mod", Name: "Mod"},
		guest: &model.Profile{UserId: "u_guest", Name: "Guest"},
	}
	for _, p := range []*model.Profile{f.owner, f.mod, f.guest} {
		require.NoError(t, profiles.Create(ctx, db, p))
	}

	f.server = &model.Server{Name: "Gophers", ProfileId: f.owner.Id}
	require.NoError(t, New().Create(ctx, db, f.server))

	// Inserted in an order that differs from role order on purpose.
	for _, m := range []*model.Member{
		{Role: model.MemberRoleGuest, ProfileId: f.guest.Id, ServerId: f.server.Id},
		{Role: model.MemberRoleAdmin, ProfileId: f.owner.Id, ServerId: f.server.Id},
		{Role: model.MemberRoleModerator, ProfileId: f.mod.Id, ServerId: f.server.Id},
	} {
		require.NoError(t, members.Create(ctx, db, m))
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, c := range []*model.Channel{
		{Name: "standup", Type: model.ChannelTypeTodo, CreatedAt: base.Add(3 * time.Hour)},
		{Name: "general", Type: model.ChannelTypeText, CreatedAt: base},
		{Name: "lounge", Type: model.ChannelTypeAudio, CreatedAt: base.Add(time.Hour)},
		{Name: "random", Type: model.ChannelTypeText, CreatedAt: base.Add(2 * time.Hour)},
	} {
		c.ProfileId = f.owner.Id
		c.ServerId = f.server.Id
		require.NoError(t, channels.Create(ctx, db, c))
	}
	return f
}

func TestRepo_GetWithChannelsAndMembers(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenSqlite(t)
	f := seed(t, ctx, db)
	repo := New()

	t.Run("channels by creation time and members by role", func(t *testing.T) {
		got, err := repo.GetWithChannelsAndMembers(ctx, db, f.server.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Gophers", got.Name)

		var channelNames []string
		for _, c := range got.Channels {
			channelNames = append(channelNames, c.Name)
		}
		assert.Equal(t, []string{"general", "lounge", "random", "standup"}, channelNames)
		assert.Equal(t, model.ChannelTypeAudio, got.Channels[1].Type)

		var roles []model.MemberRole
		var names []string
		for _, m := range got.Members {
			roles = append(roles, m.Role)
			names = append(names, m.Profile.Name)
			assert.Equal(t, m.ProfileId, m.Profile.Id)
		}
		assert.Equal(t, []model.MemberRole{
			model.MemberRoleAdmin,
			model.MemberRoleModerator,
			model.MemberRoleGuest,
		}, roles)
		assert.Equal(t, []string{"Owner", "Mod", "Guest"}, names)
	})

	t.Run("server without channels or members", func(t *testing.T) {
		empty := &model.Server{Name: "Empty", ProfileId: f.owner.Id}
		require.NoError(t, repo.Create(ctx, db, empty))

		got, err := repo.GetWithChannelsAndMembers(ctx, db, empty.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Empty(t, got.Channels)
		assert.NotNil(t, got.Channels)
		assert.Empty(t, got.Members)
	})

	t.Run("missing server returns nil", func(t *testing.T) {
		got, err := repo.GetWithChannelsAndMembers(ctx, db, "does-not-exist")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRepo_ListByProfileId(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenSqlite(t)
	f := seed(t, ctx, db)
	repo := New()

	assert.NotEmpty(t, f.server.InviteCode)
	assert.NotZero(t, f.server.CreatedAt)

	servers, err := repo.ListByProfileId(ctx, db, f.guest.Id)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, f.server.Id, servers[0].Id)

	none, err := repo.ListByProfileId(ctx, db, "stranger")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRepo_GetWithChannelsAndMembers_UnstampedChannels(t *testing.T) {
	ctx := context.Background()
	db := dbtest.OpenSqlite(t)
	repo := New()

	owner := &model.Profile{UserId: "u_owner", Name: "Owner"}
	require.NoError(t, profilerepo.New().Create(ctx, db, owner))
	server := &model.Server{Name: "Fresh", ProfileId: owner.Id}
	require.NoError(t, repo.Create(ctx, db, server))

	// Created back to back within one second, no CreatedAt given.
	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, channelrepo.New().Create(ctx, db, &model.Channel{
			Name:      name,
			Type:      model.ChannelTypeText,
			ProfileId: owner.Id,
			ServerId:  server.Id,
		}))
	}

	got, err := repo.GetWithChannelsAndMembers(ctx, db, server.Id)
	require.NoError(t, err)
	require.NotNil(t, got)

	var names []string
	for _, c := range got.Channels {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"first", "second", "third"}, names)
}
