package sidebar

import (
	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
)

////////////////////////////////////////////////////////////////////////////////

// Status tells the caller what to do with a Result.
type Status int

const (
	StatusNotAuthenticated Status = iota + 1
	StatusNotFound
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusNotAuthenticated:
		return "not_authenticated"
	case StatusNotFound:
		return "not_found"
	case StatusReady:
		return "ready"
	}
	return "unknown"
}

// Result is the outcome of Loader.Load. View is set only for StatusReady.
type Result struct {
	Status Status
	View   *View
}

////////////////////////////////////////////////////////////////////////////////

type View struct {
	Server *model.Server     `json:"server"`
	Role   *model.MemberRole `json:"role"`

	Header   Header        `json:"header"`
	Search   []SearchGroup `json:"search"`
	Sections []Section     `json:"sections"`

	// ShowProgress is true when the TODO section carries the aggregate
	// progress widget.
	ShowProgress bool `json:"showProgress"`
}

type Header struct {
	ServerId   string `json:"serverId"`
	ServerName string `json:"serverName"`
	ImageUrl   string `json:"imageUrl"`
	InviteCode string `json:"inviteCode"`

	CanManage   bool `json:"canManage"`
	CanModerate bool `json:"canModerate"`
	CanLeave    bool `json:"canLeave"`
}

type SearchKind string

const (
	SearchKindChannel SearchKind = "channel"
	SearchKindMember  SearchKind = "member"
)

type SearchGroup struct {
	Label string       `json:"label"`
	Type  SearchKind   `json:"type"`
	Items []SearchItem `json:"items"`
}

type SearchItem struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type SectionKind string

const (
	SectionKindChannels SectionKind = "channels"
	SectionKindMembers  SectionKind = "members"
)

type Section struct {
	Label       string             `json:"label"`
	Kind        SectionKind        `json:"kind"`
	ChannelType *model.ChannelType `json:"channelType"`
	Role        *model.MemberRole  `json:"role"`

	CanCreate        bool `json:"canCreate"`
	CanManageMembers bool `json:"canManageMembers"`
	ShowProgress     bool `json:"showProgress"`

	Channels []ChannelRow `json:"channels,omitempty"`
	Members  []MemberRow  `json:"members,omitempty"`
}

type ChannelRow struct {
	Channel  *model.Channel    `json:"channel"`
	ServerId string            `json:"serverId"`
	Role     *model.MemberRole `json:"role"`
	Icon     string            `json:"icon"`
	IsTodo   bool              `json:"isTodo"`
	CanEdit  bool              `json:"canEdit"`
}

type MemberRow struct {
	Member    *model.Member `json:"member"`
	ServerId  string        `json:"serverId"`
	Icon      string        `json:"icon"`
	IconClass string        `json:"iconClass"`
}
