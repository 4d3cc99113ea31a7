package sidebarclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////

const (
	SIDEBAR_ENDPOINT = "/api/servers/%s/sidebar"
	HEALTH_ENDPOINT  = "/healthz"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("server not found")
)

////////////////////////////////////////////////////////////////////////////////

// GetSidebar returns the raw JSON sidebar of a server as seen by the
// client's profile.
func (c *client) GetSidebar(ctx context.Context, serverId string) ([]byte, error) {
	if serverId == "" {
		return nil, fmt.Errorf("server id cannot be empty")
	}

	endpoint := fmt.Sprintf(SIDEBAR_ENDPOINT, url.PathEscape(serverId))
	resp, err := c.restyClient.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get sidebar from %s: %w", endpoint, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Body(), nil
	case http.StatusUnauthorized:
		return nil, ErrNotAuthenticated
	case http.StatusNotFound:
		return nil, ErrNotFound
	}
	return nil, fmt.Errorf(
		"API returned status %d for endpoint %s: %s",
		resp.StatusCode(),
		endpoint,
		gjson.GetBytes(resp.Body(), "error").String(),
	)
}

// Health reports whether the server and its database are up
func (c *client) Health(ctx context.Context) error {
	resp, err := c.restyClient.R().
		SetContext(ctx).
		Get(HEALTH_ENDPOINT)
	if err != nil {
		return fmt.Errorf("failed to get health: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unhealthy: %s", gjson.GetBytes(resp.Body(), "error").String())
	}
	return nil
}
