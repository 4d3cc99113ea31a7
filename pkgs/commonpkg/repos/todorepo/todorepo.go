package todorepo

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

func (r *Repo) Create(ctx context.Context, db *sqlx.DB, item *model.TodoItem) error {
	if item.Id == "" {
		item.Id = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = utils.Now()
	}
	item.UpdatedAt = item.CreatedAt
	stmt := `INSERT INTO todo_items(id, channel_id, title, completed, created_at, updated_at)
			 VALUES(:id, :channel_id, :title, :completed, :created_at, :updated_at)
			 RETURNING id, channel_id, title, completed, created_at, updated_at
			`
	rows, err := db.NamedQueryContext(ctx, stmt, item)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("no rows returned for todo item %s", item.Title)
	}
	return rows.StructScan(item)
}

////////////////////////////////////////////////////////////////////////////////

// ProgressByServer aggregates every todo item living in a TODO channel of
// the server.
func (r *Repo) ProgressByServer(ctx context.Context, db *sqlx.DB, serverId string) (model.Progress, error) {
	stmt := `SELECT
				COUNT(t.id) AS total,
				COALESCE(SUM(CASE WHEN t.completed THEN 1 ELSE 0 END), 0) AS completed
			 FROM todo_items t
			 JOIN channels c ON c.id = t.channel_id
			 WHERE c.server_id=$1 AND c.type=$2
			`
	var progress model.Progress
	err := db.GetContext(ctx, &progress, stmt, serverId, model.ChannelTypeTodo)
	if err != nil {
		return model.Progress{}, fmt.Errorf("failed to get todo progress of server %s: %w", serverId, err)
	}
	return progress, nil
}
