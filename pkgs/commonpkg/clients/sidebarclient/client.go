package sidebarclient

import (
	"time"

	"github.com/go-resty/resty/v2"
)

////////////////////////////////////////////////////////////////////////////////

const DEFAULT_BASE_URL = "http://localhost:8080"

// header keys
const (
	HEADER_USER_AGENT = "User-Agent"
	HEADER_PROFILE_ID = "X-Profile-Id"
)

////////////////////////////////////////////////////////////////////////////////

type client struct {
	restyClient *resty.Client
}

// New returns a client of the xGuild HTTP API at baseURL, acting on behalf of
// profileId. An empty profileId sends anonymous requests.
func New(baseURL, profileId string) *client {
	if baseURL == "" {
		baseURL = DEFAULT_BASE_URL
	}
	restyClient := resty.New()
	restyClient.SetBaseURL(baseURL)
	restyClient.SetHeader(HEADER_USER_AGENT, "xGuild/1.0")
	if profileId != "" {
		restyClient.SetHeader(HEADER_PROFILE_ID, profileId)
	}
	restyClient.SetTimeout(30 * time.Second)
	restyClient.SetRetryCount(2)
	restyClient.SetRetryWaitTime(500 * time.Millisecond)

	return &client{
		restyClient: restyClient,
	}
}
