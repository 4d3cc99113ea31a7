package serverrepo

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

func (r *Repo) Create(ctx context.Context, db *sqlx.DB, server *model.Server) error {
	if server.Id == "" {
		server.Id = uuid.NewString()
	}
	if server.InviteCode == "" {
		server.InviteCode = uuid.NewString()
	}
	if server.CreatedAt.IsZero() {
		server.CreatedAt = utils.Now()
	}
	server.UpdatedAt = server.CreatedAt
	stmt := `INSERT INTO servers(id, name, image_url, invite_code, profile_id, created_at, updated_at)
			 VALUES(:id, :name, :image_url, :invite_code, :profile_id, :created_at, :updated_at)
			 RETURNING id, name, image_url, invite_code, profile_id, created_at, updated_at
			`
	rows, err := db.NamedQueryContext(ctx, stmt, server)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("no rows returned for server %s", server.Name)
	}
	return rows.StructScan(server)
}

////////////////////////////////////////////////////////////////////////////////

// ListByProfileId returns the servers the profile is a member of, oldest first.
func (r *Repo) ListByProfileId(ctx context.Context, db *sqlx.DB, profileId string) ([]*model.Server, error) {
	stmt := `SELECT s.* FROM servers s
			 JOIN members m ON m.server_id = s.id
			 WHERE m.profile_id=$1
			 ORDER BY s.created_at ASC, s.id ASC
			`
	servers := []*model.Server{}
	err := db.SelectContext(ctx, &servers, stmt, profileId)
	return servers, err
}
