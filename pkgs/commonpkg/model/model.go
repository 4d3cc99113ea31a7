package model

import (
	"time"
)

type Profile struct {
	Id        string    `db:"id" json:"id"`
	UserId    string    `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	ImageUrl  string    `db:"image_url" json:"imageUrl"`
	Email     string    `db:"email" json:"email"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

type Server struct {
	Id         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	ImageUrl   string    `db:"image_url" json:"imageUrl"`
	InviteCode string    `db:"invite_code" json:"inviteCode"`
	ProfileId  string    `db:"profile_id" json:"profileId"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`

	// Filled by serverrepo.GetWithChannelsAndMembers only.
	Channels []*Channel `db:"-" json:"channels,omitempty"`
	Members  []*Member  `db:"-" json:"members,omitempty"`
}

type Channel struct {
	Id        string      `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Type      ChannelType `db:"type" json:"type"`
	ProfileId string      `db:"profile_id" json:"profileId"`
	ServerId  string      `db:"server_id" json:"serverId"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}

type Member struct {
	Id        string     `db:"id" json:"id"`
	Role      MemberRole `db:"role" json:"role"`
	ProfileId string     `db:"profile_id" json:"profileId"`
	ServerId  string     `db:"server_id" json:"serverId"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `db:"updated_at" json:"updatedAt"`

	Profile Profile `db:"profile" json:"profile"`
}

type TodoItem struct {
	Id        string    `db:"id" json:"id"`
	ChannelId string    `db:"channel_id" json:"channelId"`
	Title     string    `db:"title" json:"title"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

////////////////////////////////////////////////////////////////////////////////

// Progress is the aggregate completion of every todo item in a server.
type Progress struct {
	Total     int `db:"total" json:"total"`
	Completed int `db:"completed" json:"completed"`
}

func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}
