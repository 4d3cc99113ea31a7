package server

import (
	"net/http"
	"strings"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/jmoiron/sqlx"
)

const (
	ProfileHeader = "X-Profile-Id"
	ProfileCookie = "profile_id"
)

// profileViewerResolver reads the viewer's profile id from the X-Profile-Id
// header or, failing that, the profile_id cookie.
type profileViewerResolver struct {
	db          *sqlx.DB
	profileRepo ProfileRepo
}

func NewProfileViewerResolver(db *sqlx.DB, profileRepo ProfileRepo) ViewerResolver {
	return &profileViewerResolver{db: db, profileRepo: profileRepo}
}

func (v *profileViewerResolver) Resolve(r *http.Request) (*model.Profile, error) {
	id := profileIdFromRequest(r)
	if id == "" {
		return nil, nil
	}
	return v.profileRepo.GetById(r.Context(), v.db, id)
}

func profileIdFromRequest(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get(ProfileHeader)); id != "" {
		return id
	}
	if cookie, err := r.Cookie(ProfileCookie); err == nil {
		return strings.TrimSpace(cookie.Value)
	}
	return ""
}
