package profilerepo

import (
	"context"
	"database/sql"
	"errors"
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

func (r *Repo) Create(ctx context.Context, db *sqlx.DB, profile *model.Profile) error {
	if profile.Id == "" {
		profile.Id = uuid.NewString()
	}
	stampCreated(profile)
	stmt := `INSERT INTO profiles(id, user_id, name, image_url, email, created_at, updated_at)
			 VALUES(:id, :user_id, :name, :image_url, :email, :created_at, :updated_at)
			 RETURNING id, user_id, name, image_url, email, created_at, updated_at
			`
	rows, err := db.NamedQueryContext(ctx, stmt, profile)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		return fmt.Errorf("no rows returned for profile with user_id %s", profile.UserId)
	}
	return rows.StructScan(profile)
}

func stampCreated(profile *model.Profile) {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = utils.Now()
	}
	profile.UpdatedAt = profile.CreatedAt
}

////////////////////////////////////////////////////////////////////////////////

func (r *Repo) GetById(ctx context.Context, db *sqlx.DB, id string) (*model.Profile, error) {
	stmt := `SELECT * FROM profiles WHERE id=$1`
	result := &model.Profile{}
	err := db.GetContext(ctx, result, stmt, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Repo) GetByUserId(ctx context.Context, db *sqlx.DB, userId string) (*model.Profile, error) {
	stmt := `SELECT * FROM profiles WHERE user_id=$1`
	result := &model.Profile{}
	err := db.GetContext(ctx, result, stmt, userId)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
