package sidebar

import (
	"context"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
)

type ServerRepo interface {
	GetWithChannelsAndMembers(ctx context.Context, db *sqlx.DB, id string) (*model.Server, error)
}
