package sidebar

import (
	"context"
	"fmt"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
	log "github.com/sirupsen/logrus"
)

const generalChannelName = "general"

type Loader struct {
	db         *sqlx.DB
	serverRepo ServerRepo
}

func New(db *sqlx.DB, serverRepo ServerRepo) *Loader {
	return &Loader{
		db:         db,
		serverRepo: serverRepo,
	}
}

////////////////////////////////////////////////////////////////////////////////

// Load builds the sidebar of a server for viewer. A nil viewer or an unknown
// server is reported through Result.Status, never as an error; errors are
// reserved for failed reads.
func (l *Loader) Load(ctx context.Context, viewer *model.Profile, serverId string) (*Result, error) {
	logger := log.WithFields(log.Fields{
		"caller":   "sidebar.Load",
		"serverId": serverId,
	})

	if viewer == nil {
		logger.Debug("no viewer")
		return &Result{Status: StatusNotAuthenticated}, nil
	}

	server, err := l.serverRepo.GetWithChannelsAndMembers(ctx, l.db, serverId)
	if err != nil {
		return nil, fmt.Errorf("failed to load server %s: %w", serverId, err)
	}
	if server == nil {
		logger.WithField("profileId", viewer.Id).Debug("server not found")
		return &Result{Status: StatusNotFound}, nil
	}

	return &Result{
		Status: StatusReady,
		View:   Build(server, viewer),
	}, nil
}

////////////////////////////////////////////////////////////////////////////////

// Build partitions an already loaded server into the sidebar view of viewer.
func Build(server *model.Server, viewer *model.Profile) *View {
	groups := partitionChannels(server.Channels)
	members := othersThan(server.Members, viewer.Id)
	role := roleOf(server.Members, viewer.Id)

	header := *server
	header.Channels = nil
	header.Members = nil

	view := &View{
		Server: &header,
		Role:   role,
		Header: buildHeader(server, role),
		Search: buildSearch(groups, members),
	}

	for _, ct := range model.ChannelTypes() {
		channels := groups[ct]
		if len(channels) == 0 {
			continue
		}

		section := Section{
			Label:       ct.Meta().SectionLabel,
			Kind:        SectionKindChannels,
			ChannelType: &ct,
			Role:        role,
			CanCreate:   role != nil && *role != model.MemberRoleGuest,
		}
		if ct == model.ChannelTypeTodo && role != nil && role.CanModerate() {
			section.ShowProgress = true
			view.ShowProgress = true
		}
		for _, channel := range channels {
			section.Channels = append(section.Channels, ChannelRow{
				Channel:  channel,
				ServerId: server.Id,
				Role:     role,
				Icon:     ct.Meta().Icon,
				IsTodo:   ct == model.ChannelTypeTodo,
				CanEdit:  canEditChannel(channel, role),
			})
		}
		view.Sections = append(view.Sections, section)
	}

	if len(members) > 0 {
		section := Section{
			Label:            "Members",
			Kind:             SectionKindMembers,
			Role:             role,
			CanManageMembers: role != nil && *role == model.MemberRoleAdmin,
		}
		for _, member := range members {
			meta := member.Role.Meta()
			section.Members = append(section.Members, MemberRow{
				Member:    member,
				ServerId:  server.Id,
				Icon:      meta.Icon,
				IconClass: meta.IconClass,
			})
		}
		view.Sections = append(view.Sections, section)
	}

	return view
}

////////////////////////////////////////////////////////////////////////////////

func partitionChannels(channels []*model.Channel) map[model.ChannelType][]*model.Channel {
	groups := make(map[model.ChannelType][]*model.Channel, len(model.ChannelTypes()))
	for _, channel := range channels {
		if !channel.Type.Valid() {
			continue
		}
		groups[channel.Type] = append(groups[channel.Type], channel)
	}
	return groups
}

func othersThan(members []*model.Member, profileId string) []*model.Member {
	res := make([]*model.Member, 0, len(members))
	for _, member := range members {
		if member.ProfileId == profileId {
			continue
		}
		res = append(res, member)
	}
	return res
}

func roleOf(members []*model.Member, profileId string) *model.MemberRole {
	for _, member := range members {
		if member.ProfileId == profileId {
			role := member.Role
			return &role
		}
	}
	return nil
}

func buildHeader(server *model.Server, role *model.MemberRole) Header {
	header := Header{
		ServerId:   server.Id,
		ServerName: server.Name,
		ImageUrl:   server.ImageUrl,
		InviteCode: server.InviteCode,
	}
	if role == nil {
		return header
	}
	header.CanManage = *role == model.MemberRoleAdmin
	header.CanModerate = role.CanModerate()
	header.CanLeave = *role != model.MemberRoleAdmin
	return header
}

func buildSearch(groups map[model.ChannelType][]*model.Channel, members []*model.Member) []SearchGroup {
	search := make([]SearchGroup, 0, len(groups)+1)
	for _, ct := range model.ChannelTypes() {
		group := SearchGroup{
			Label: ct.Meta().SearchLabel,
			Type:  SearchKindChannel,
			Items: []SearchItem{},
		}
		for _, channel := range groups[ct] {
			group.Items = append(group.Items, SearchItem{
				Id:   channel.Id,
				Name: channel.Name,
				Icon: ct.Meta().Icon,
			})
		}
		search = append(search, group)
	}

	group := SearchGroup{
		Label: "Members",
		Type:  SearchKindMember,
		Items: []SearchItem{},
	}
	for _, member := range members {
		group.Items = append(group.Items, SearchItem{
			Id:   member.Id,
			Name: member.Profile.Name,
			Icon: member.Role.Meta().Icon,
		})
	}
	return append(search, group)
}

func canEditChannel(channel *model.Channel, role *model.MemberRole) bool {
	if role == nil || *role == model.MemberRoleGuest {
		return false
	}
	return channel.Name != generalChannelName
}
