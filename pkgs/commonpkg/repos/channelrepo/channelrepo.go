package channelrepo

import (
	"context"
	"fmt"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/utils"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repo struct{}

func New() *Repo {
	return &Repo{}
}

////////////////////////////////////////////////////////////////////////////////

// Create inserts the channel. A zero CreatedAt is stamped with utils.Now, so
// channels created one after another keep that order.
func (r *Repo) Create(ctx context.Context, db *sqlx.DB, channel *model.Channel) error {
	if channel.Id == "" {
		channel.Id = uuid.NewString()
	}
	if channel.CreatedAt.IsZero() {
		channel.CreatedAt = utils.Now()
	}
	channel.UpdatedAt = channel.CreatedAt

	stmt := `INSERT INTO channels(id, name, type, profile_id, server_id, created_at, updated_at)
			 VALUES(:id, :name, :type, :profile_id, :server_id, :created_at, :updated_at)
			 RETURNING id, name, type, profile_id, server_id, created_at, updated_at
			`
	rows, err := db.NamedQueryContext(ctx, stmt, channel)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("no rows returned for channel %s", channel.Name)
	}
	return rows.StructScan(channel)
}
