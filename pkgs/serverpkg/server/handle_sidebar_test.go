package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/model"
	"github.com/WangWilly/xGuild/pkgs/sidebar"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type fakeLoader struct {
	result *sidebar.Result
	err    error
}

func (f *fakeLoader) Load(ctx context.Context, viewer *model.Profile, serverId string) (*sidebar.Result, error) {
	return f.result, f.err
}

type fakeViewers struct {
	viewer *model.Profile
	err    error
}

func (f *fakeViewers) Resolve(r *http.Request) (*model.Profile, error) {
	return f.viewer, f.err
}

type fakeServerRepo struct{}

func (fakeServerRepo) ListByProfileId(ctx context.Context, db *sqlx.DB, profileId string) ([]*model.Server, error) {
	return nil, nil
}

type fakeTodoRepo struct {
	calls    int
	progress model.Progress
	err      error
}

func (f *fakeTodoRepo) ProgressByServer(ctx context.Context, db *sqlx.DB, serverId string) (model.Progress, error) {
	f.calls++
	return f.progress, f.err
}

func newFakeServer(t *testing.T, loader SidebarLoader, viewers ViewerResolver, todos TodoRepo) *Server {
	t.Helper()
	s, err := NewServer(nil, "0", loader, viewers, fakeServerRepo{}, todos)
	require.NoError(t, err)
	return s
}

func readyResult(showProgress bool) *sidebar.Result {
	server := &model.Server{Id: "s1", Name: "Gophers"}
	role := model.MemberRoleGuest
	if showProgress {
		role = model.MemberRoleAdmin
	}
	server.Channels = []*model.Channel{{Id: "c1", Name: "tasks", Type: model.ChannelTypeTodo, ServerId: "s1"}}
	server.Members = []*model.Member{{Id: "m1", Role: role, ProfileId: "p1", ServerId: "s1"}}
	return &sidebar.Result{
		Status: sidebar.StatusReady,
		View:   sidebar.Build(server, &model.Profile{Id: "p1"}),
	}
}

func serve(s *Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

////////////////////////////////////////////////////////////////////////////////

func TestHandleSidebar_Failures(t *testing.T) {
	viewer := &model.Profile{Id: "p1"}

	t.Run("viewer lookup fails", func(t *testing.T) {
		s := newFakeServer(t, &fakeLoader{}, &fakeViewers{err: errors.New("db down")}, &fakeTodoRepo{})
		assert.Equal(t, http.StatusInternalServerError, serve(s, "/servers/s1").Code)

		rec := serve(s, "/api/servers/s1/sidebar")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "failed to resolve viewer", gjson.Get(rec.Body.String(), "error").String())
	})

	t.Run("load fails", func(t *testing.T) {
		s := newFakeServer(t, &fakeLoader{err: errors.New("boom")}, &fakeViewers{viewer: viewer}, &fakeTodoRepo{})
		assert.Equal(t, http.StatusInternalServerError, serve(s, "/servers/s1").Code)
		assert.Equal(t, http.StatusInternalServerError, serve(s, "/api/servers/s1/sidebar").Code)
	})

	t.Run("progress fails", func(t *testing.T) {
		todos := &fakeTodoRepo{err: errors.New("boom")}
		s := newFakeServer(t, &fakeLoader{result: readyResult(true)}, &fakeViewers{viewer: viewer}, todos)
		assert.Equal(t, http.StatusInternalServerError, serve(s, "/servers/s1").Code)
		assert.Equal(t, http.StatusInternalServerError, serve(s, "/api/servers/s1/sidebar").Code)
	})
}

func TestHandleSidebar_ProgressOnlyWhenShown(t *testing.T) {
	viewer := &model.Profile{Id: "p1"}

	todos := &fakeTodoRepo{progress: model.Progress{Total: 3, Completed: 3}}
	s := newFakeServer(t, &fakeLoader{result: readyResult(false)}, &fakeViewers{viewer: viewer}, todos)
	rec := serve(s, "/servers/s1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, todos.calls)
	assert.NotContains(t, rec.Body.String(), "progress-bar")

	todos = &fakeTodoRepo{progress: model.Progress{Total: 3, Completed: 3}}
	s = newFakeServer(t, &fakeLoader{result: readyResult(true)}, &fakeViewers{viewer: viewer}, todos)
	rec = serve(s, "/servers/s1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, todos.calls)
	assert.Contains(t, rec.Body.String(), `aria-valuenow="100"`)
}

func TestHealth_NoDatabase(t *testing.T) {
	s := newFakeServer(t, &fakeLoader{}, &fakeViewers{}, &fakeTodoRepo{})
	rec := serve(s, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestProfileIdFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, profileIdFromRequest(r))

	r.AddCookie(&http.Cookie{Name: ProfileCookie, Value: " from-cookie "})
	assert.Equal(t, "from-cookie", profileIdFromRequest(r))

	r.Header.Set(ProfileHeader, "from-header")
	assert.Equal(t, "from-header", profileIdFromRequest(r))
}
