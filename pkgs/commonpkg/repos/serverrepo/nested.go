package serverrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
)

const (
	channelsByServerStmt = `SELECT * FROM channels WHERE server_id=$1 ORDER BY created_at ASC, id ASC`

	// Role ascending follows the declaration order ADMIN, MODERATOR, GUEST,
	// not the alphabetical order of the stored names.
	membersByServerStmt = `
		SELECT
			m.id, m.role, m.profile_id, m.server_id, m.created_at, m.updated_at,
			p.id AS "profile.id",
			p.user_id AS "profile.user_id",
			p.name AS "profile.name",
			p.image_url AS "profile.image_url",
			p.email AS "profile.email",
			p.created_at AS "profile.created_at",
			p.updated_at AS "profile.updated_at"
		FROM members m
		JOIN profiles p ON p.id = m.profile_id
		WHERE m.server_id=$1
		ORDER BY
			CASE m.role WHEN 'ADMIN' THEN 0 WHEN 'MODERATOR' THEN 1 ELSE 2 END ASC,
			m.created_at ASC,
			m.id ASC
	`
)

// GetWithChannelsAndMembers reads a server together with its channels
// (creation time ascending) and its members joined to their profiles (role
// ascending). All three reads share one read-only transaction. A missing
// server yields nil, nil.
func (r *Repo) GetWithChannelsAndMembers(ctx context.Context, db *sqlx.DB, id string) (*model.Server, error) {
	tx, err := db.BeginTxx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to begin read: %w", err)
	}
	defer tx.Rollback()

	server := &model.Server{}
	err = tx.GetContext(ctx, server, `SELECT * FROM servers WHERE id=$1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get server %s: %w", id, err)
	}

	server.Channels = []*model.Channel{}
	if err := tx.SelectContext(ctx, &server.Channels, channelsByServerStmt, id); err != nil {
		return nil, fmt.Errorf("failed to list channels of server %s: %w", id, err)
	}

	server.Members = []*model.Member{}
	if err := tx.SelectContext(ctx, &server.Members, membersByServerStmt, id); err != nil {
		return nil, fmt.Errorf("failed to list members of server %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to finish read: %w", err)
	}
	return server, nil
}
