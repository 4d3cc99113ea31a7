// Package seedhelper fills an empty database with a demo server.
package seedhelper

import (
	"context"
	"errors"
	"fmt"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/channelrepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/memberrepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/profilerepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/serverrepo"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/repos/todorepo"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

const OwnerUserId = "demo_owner"

var ErrAlreadySeeded = errors.New("demo data already seeded")

type Demo struct {
	Owner     *model.Profile
	Moderator *model.Profile
	Guest     *model.Profile
	Server    *model.Server
	Channels  []*model.Channel
	Todos     []*model.TodoItem
}

type demoChannel struct {
	name  string
	ct    model.ChannelType
	todos []string
	done  int
}

var demoChannels = []demoChannel{
	{name: "general", ct: model.ChannelTypeText},
	{name: "random", ct: model.ChannelTypeText},
	{name: "lounge", ct: model.ChannelTypeAudio},
	{name: "standup", ct: model.ChannelTypeVideo},
	{name: "whiteboard", ct: model.ChannelTypeSlate},
	{
		name:  "release",
		ct:    model.ChannelTypeTodo,
		todos: []string{"Cut release branch", "Write changelog", "Tag release", "Announce"},
		done:  1,
	},
}

////////////////////////////////////////////////////////////////////////////////

// Seed creates three profiles, one server they all belong to and one channel
// of every type. It returns ErrAlreadySeeded when the demo owner exists.
func Seed(ctx context.Context, db *sqlx.DB) (*Demo, error) {
	logger := log.WithField("caller", "seedhelper.Seed")

	profiles := profilerepo.New()
	existing, err := profiles.GetByUserId(ctx, db, OwnerUserId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadySeeded
	}

	demo := &Demo{
		Owner:     &model.Profile{UserId: OwnerUserId, Name: "Ada", Email: "ada@example.com"},
		Moderator: &model.Profile{UserId: "demo_moderator", Name: "Grace", Email: "grace@example.com"},
		Guest:     &model.Profile{UserId: "demo_guest", Name: "Linus", Email: "linus@example.com"},
	}
	for _, p := range []*model.Profile{demo.Owner, demo.Moderator, demo.Guest} {
		if err := profiles.Create(ctx, db, p); err != nil {
			return nil, fmt.Errorf("failed to create profile %s: %w", p.Name, err)
		}
	}

	demo.Server = &model.Server{Name: "Gopher Guild", ProfileId: demo.Owner.Id}
	if err := serverrepo.New().Create(ctx, db, demo.Server); err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	members := memberrepo.New()
	for _, m := range []*model.Member{
		{Role: model.MemberRoleAdmin, ProfileId: demo.Owner.Id, ServerId: demo.Server.Id},
		{Role: model.MemberRoleModerator, ProfileId: demo.Moderator.Id, ServerId: demo.Server.Id},
		{Role: model.MemberRoleGuest, ProfileId: demo.Guest.Id, ServerId: demo.Server.Id},
	} {
		if err := members.Create(ctx, db, m); err != nil {
			return nil, fmt.Errorf("failed to create member: %w", err)
		}
	}

	channels := channelrepo.New()
	todos := todorepo.New()
	for _, dc := range demoChannels {
		channel := &model.Channel{
			Name:      dc.name,
			Type:      dc.ct,
			ProfileId: demo.Owner.Id,
			ServerId:  demo.Server.Id,
		}
		if err := channels.Create(ctx, db, channel); err != nil {
			return nil, fmt.Errorf("failed to create channel %s: %w", dc.name, err)
		}
		demo.Channels = append(demo.Channels, channel)

		for j, title := range dc.todos {
			item := &model.TodoItem{ChannelId: channel.Id, Title: title, Completed: j < dc.done}
			if err := todos.Create(ctx, db, item); err != nil {
				return nil, fmt.Errorf("failed to create todo %s: %w", title, err)
			}
			demo.Todos = append(demo.Todos, item)
		}
	}

	logger.WithFields(log.Fields{
		"serverId": demo.Server.Id,
		"ownerId":  demo.Owner.Id,
	}).Info("demo data seeded")
	return demo, nil
}
