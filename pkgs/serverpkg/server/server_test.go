package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/WangWilly/xGuild/pkgs/commonpkg/database/dbtest"
	"github.com/WangWilly/xGuild/pkgs/commonpkg/helpers/seedhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestServer(t *testing.T) (*httptest.Server, *seedhelper.Demo) {
	t.Helper()
	db := dbtest.OpenSqlite(t)
	demo, err := seedhelper.Seed(context.Background(), db)
	require.NoError(t, err)

	s, err := NewServerWithConfig(db, "0")
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, demo
}

func get(t *testing.T, url, profileId string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if profileId != "" {
		req.Header.Set(ProfileHeader, profileId)
	}

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

////////////////////////////////////////////////////////////////////////////////

func TestSidebarPage_Redirects(t *testing.T) {
	ts, demo := newTestServer(t)

	for name, tc := range map[string]struct {
		serverId  string
		profileId string
	}{
		"no viewer":      {serverId: demo.Server.Id},
		"unknown viewer": {serverId: demo.Server.Id, profileId: "nobody"},
		"unknown server": {serverId: "missing", profileId: demo.Owner.Id},
	} {
		t.Run(name, func(t *testing.T) {
			resp, _ := get(t, ts.URL+"/servers/"+tc.serverId, tc.profileId)
			assert.Equal(t, http.StatusFound, resp.StatusCode)
			assert.Equal(t, "/", resp.Header.Get("Location"))
		})
	}
}

func TestSidebarPage_Admin(t *testing.T) {
	ts, demo := newTestServer(t)

	resp, body := get(t, ts.URL+"/servers/"+demo.Server.Id, demo.Owner.Id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	for _, label := range []string{
		"Text Channels",
		"Voice Channels",
		"Video Channels",
		"Visualization Channels",
		"Todo Channels",
		"Members",
	} {
		assert.Contains(t, body, label)
	}
	assert.Contains(t, body, "Gopher Guild")
	assert.Contains(t, body, `class="overall-progress"`)
	assert.Contains(t, body, "1 / 4 done")
	assert.Contains(t, body, "Delete Server")
	assert.NotContains(t, body, "Leave Server")

	assert.Contains(t, body, `<span class="member-name">Grace</span>`)
	assert.NotContains(t, body, `<span class="member-name">Ada</span>`)
}

func TestSidebarPage_Guest(t *testing.T) {
	ts, demo := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/servers/"+demo.Server.Id, nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: ProfileCookie, Value: demo.Guest.Id})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Todo Channels")
	assert.NotContains(t, body, `class="overall-progress"`)
	assert.NotContains(t, body, "Create Channel")
	assert.NotContains(t, body, `class="edit"`)
	assert.Contains(t, body, "Leave Server")
}

////////////////////////////////////////////////////////////////////////////////

func TestAPISidebar(t *testing.T) {
	ts, demo := newTestServer(t)
	url := ts.URL + "/api/servers/" + demo.Server.Id + "/sidebar"

	t.Run("not authenticated", func(t *testing.T) {
		resp, body := get(t, url, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "not authenticated", gjson.Get(body, "error").String())
	})

	t.Run("not found", func(t *testing.T) {
		resp, body := get(t, ts.URL+"/api/servers/missing/sidebar", demo.Owner.Id)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "server not found", gjson.Get(body, "error").String())
	})

	t.Run("moderator", func(t *testing.T) {
		resp, body := get(t, url, demo.Moderator.Id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		assert.Equal(t, "MODERATOR", gjson.Get(body, "role").String())
		assert.Equal(t, demo.Server.Id, gjson.Get(body, "server.id").String())
		assert.False(t, gjson.Get(body, "server.channels").Exists())
		assert.False(t, gjson.Get(body, "server.members").Exists())

		labels := gjson.Get(body, "sections.#.label").Array()
		require.Len(t, labels, 6)
		assert.Equal(t, "Text Channels", labels[0].String())
		assert.Equal(t, "Members", labels[5].String())
		assert.Equal(t, int64(2), gjson.Get(body, "sections.0.channels.#").Int())

		assert.Equal(t, int64(6), gjson.Get(body, "search.#").Int())
		assert.Equal(t, int64(2), gjson.Get(body, "search.5.items.#").Int())

		assert.True(t, gjson.Get(body, "showProgress").Bool())
		assert.Equal(t, int64(4), gjson.Get(body, "progress.total").Int())
		assert.Equal(t, int64(1), gjson.Get(body, "progress.completed").Int())
		assert.Equal(t, int64(25), gjson.Get(body, "progress.percent").Int())

		assert.True(t, gjson.Get(body, "header.canModerate").Bool())
		assert.False(t, gjson.Get(body, "header.canManage").Bool())
	})

	t.Run("guest", func(t *testing.T) {
		resp, body := get(t, url, demo.Guest.Id)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "GUEST", gjson.Get(body, "role").String())
		assert.False(t, gjson.Get(body, "showProgress").Bool())
		assert.Equal(t, gjson.Null, gjson.Get(body, "progress").Type)
		assert.False(t, gjson.Get(body, "sections.0.canCreate").Bool())
	})
}

////////////////////////////////////////////////////////////////////////////////

func TestHome(t *testing.T) {
	ts, demo := newTestServer(t)

	resp, body := get(t, ts.URL+"/", demo.Guest.Id)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Welcome, Linus")
	assert.Contains(t, body, `href="/servers/`+demo.Server.Id+`"`)

	resp, body = get(t, ts.URL+"/", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "Sign in")
}

func TestHealthAndStatic(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, body := get(t, ts.URL+"/healthz", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", gjson.Get(body, "status").String())

	resp, body = get(t, ts.URL+"/static/sidebar.css", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, ".sidebar")

	resp, _ = get(t, ts.URL+"/static/missing.css", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
