package model

import (
	"database/sql/driver"
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// Channel types
////////////////////////////////////////////////////////////////////////////////

type ChannelType int

const (
	ChannelTypeText ChannelType = iota
	ChannelTypeAudio
	ChannelTypeVideo
	ChannelTypeSlate
	ChannelTypeTodo

	numChannelTypes
)

// ChannelTypeMeta is the presentation metadata of a channel type.
type ChannelTypeMeta struct {
	Name         string
	SearchLabel  string
	SectionLabel string
	Icon         string
}

var channelTypeMetas = [...]ChannelTypeMeta{
	ChannelTypeText: {
		Name:         "TEXT",
		SearchLabel:  "Text Channel",
		SectionLabel: "Text Channels",
		Icon:         "hash",
	},
	ChannelTypeAudio: {
		Name:         "AUDIO",
		SearchLabel:  "Voice Channel",
		SectionLabel: "Voice Channels",
		Icon:         "mic",
	},
	ChannelTypeVideo: {
		Name:         "VIDEO",
		SearchLabel:  "Video Channel",
		SectionLabel: "Video Channels",
		Icon:         "video",
	},
	ChannelTypeSlate: {
		Name:         "SLATE",
		SearchLabel:  "Visualization Channel",
		SectionLabel: "Visualization Channels",
		Icon:         "pen-line",
	},
	ChannelTypeTodo: {
		Name:         "TODO",
		SearchLabel:  "Todo Channel",
		SectionLabel: "Todo Channels",
		Icon:         "list-todo",
	},
}

// Fails to compile when a channel type is added without metadata.
var _ = [1]struct{}{}[len(channelTypeMetas)-int(numChannelTypes)]

// ChannelTypes returns every channel type in sidebar order.
func ChannelTypes() []ChannelType {
	res := make([]ChannelType, 0, numChannelTypes)
	for t := ChannelType(0); t < numChannelTypes; t++ {
		res = append(res, t)
	}
	return res
}

func (t ChannelType) Valid() bool {
	return t >= 0 && t < numChannelTypes
}

func (t ChannelType) Meta() ChannelTypeMeta {
	if !t.Valid() {
		panic(fmt.Sprintf("invalid channel type %d", int(t)))
	}
	return channelTypeMetas[t]
}

func (t ChannelType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("ChannelType(%d)", int(t))
	}
	return channelTypeMetas[t].Name
}

func ParseChannelType(s string) (ChannelType, error) {
	for t, meta := range channelTypeMetas {
		if meta.Name == s {
			return ChannelType(t), nil
		}
	}
	return 0, fmt.Errorf("unknown channel type %q", s)
}

func (t ChannelType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid channel type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ChannelType) UnmarshalText(text []byte) error {
	parsed, err := ParseChannelType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t ChannelType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid channel type %d", int(t))
	}
	return t.String(), nil
}

func (t *ChannelType) Scan(src any) error {
	s, err := scanEnumText(src)
	if err != nil {
		return fmt.Errorf("scan channel type: %w", err)
	}
	return t.UnmarshalText([]byte(s))
}

////////////////////////////////////////////////////////////////////////////////
// Member roles
////////////////////////////////////////////////////////////////////////////////

// MemberRole values are declared in ascending role order.
type MemberRole int

const (
	MemberRoleAdmin MemberRole = iota
	MemberRoleModerator
	MemberRoleGuest

	numMemberRoles
)

// MemberRoleMeta is the presentation metadata of a member role. An empty Icon
// means the role renders without one.
type MemberRoleMeta struct {
	Name      string
	Icon      string
	IconClass string
}

var memberRoleMetas = [...]MemberRoleMeta{
	MemberRoleAdmin: {
		Name:      "ADMIN",
		Icon:      "shield-alert",
		IconClass: "text-rose-500",
	},
	MemberRoleModerator: {
		Name:      "MODERATOR",
		Icon:      "shield-check",
		IconClass: "text-indigo-500",
	},
	MemberRoleGuest: {
		Name: "GUEST",
	},
}

var _ = [1]struct{}{}[len(memberRoleMetas)-int(numMemberRoles)]

func MemberRoles() []MemberRole {
	res := make([]MemberRole, 0, numMemberRoles)
	for r := MemberRole(0); r < numMemberRoles; r++ {
		res = append(res, r)
	}
	return res
}

func (r MemberRole) Valid() bool {
	return r >= 0 && r < numMemberRoles
}

func (r MemberRole) Meta() MemberRoleMeta {
	if !r.Valid() {
		panic(fmt.Sprintf("invalid member role %d", int(r)))
	}
	return memberRoleMetas[r]
}

func (r MemberRole) String() string {
	if !r.Valid() {
		return fmt.Sprintf("MemberRole(%d)", int(r))
	}
	return memberRoleMetas[r].Name
}

// CanModerate reports whether the role is ADMIN or MODERATOR.
func (r MemberRole) CanModerate() bool {
	switch r {
	case MemberRoleAdmin, MemberRoleModerator:
		return true
	case MemberRoleGuest:
		return false
	}
	return false
}

func ParseMemberRole(s string) (MemberRole, error) {
	for r, meta := range memberRoleMetas {
		if meta.Name == s {
			return MemberRole(r), nil
		}
	}
	return 0, fmt.Errorf("unknown member role %q", s)
}

func (r MemberRole) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid member role %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *MemberRole) UnmarshalText(text []byte) error {
	parsed, err := ParseMemberRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r MemberRole) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid member role %d", int(r))
	}
	return r.String(), nil
}

func (r *MemberRole) Scan(src any) error {
	s, err := scanEnumText(src)
	if err != nil {
		return fmt.Errorf("scan member role: %w", err)
	}
	return r.UnmarshalText([]byte(s))
}

////////////////////////////////////////////////////////////////////////////////

func scanEnumText(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported source type %T", src)
	}
}
