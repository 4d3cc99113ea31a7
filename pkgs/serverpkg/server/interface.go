package server

import (
	"context"
	"net/http"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/WangWilly/xGuild/pkgs/sidebar"
	"github.com/jmoiron/sqlx"
)

type SidebarLoader interface {
	Load(ctx context.Context, viewer *model.Profile, serverId string) (*sidebar.Result, error)
}

type ProfileRepo interface {
	GetById(ctx context.Context, db *sqlx.DB, id string) (*model.Profile, error)
}

type ServerRepo interface {
	ListByProfileId(ctx context.Context, db *sqlx.DB, profileId string) ([]*model.Server, error)
}

type TodoRepo interface {
	ProgressByServer(ctx context.Context, db *sqlx.DB, serverId string) (model.Progress, error)
}

// ViewerResolver finds the profile a request is made on behalf of. A nil
// profile with a nil error means the request carries no known viewer.
type ViewerResolver interface {
	Resolve(r *http.Request) (*model.Profile, error)
}
