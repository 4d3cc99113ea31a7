package memberrepo

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

// Create adds a profile to a server. CreatedAt is the join time and orders
// members that share a role.
func (r *Repo) Create(ctx context.Context, db *sqlx.DB, member *model.Member) error {
	if member.Id == "" {
		member.Id = uuid.NewString()
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = utils.Now()
	}
	member.UpdatedAt = member.CreatedAt

	stmt := `INSERT INTO members(id, role, profile_id, server_id, created_at, updated_at)
			 VALUES($1, $2, $3, $4, $5, $6)
			 RETURNING id, role, profile_id, server_id, created_at, updated_at
			`
	row := db.QueryRowxContext(ctx, stmt,
		member.Id,
		member.Role,
		member.ProfileId,
		member.ServerId,
		member.CreatedAt,
		member.UpdatedAt,
	)
	if err := row.StructScan(member); err != nil {
		return fmt.Errorf("failed to create member of server %s: %w", member.ServerId, err)
	}
	return nil
}
