package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-zajac/gitler/internal/app"
	"github.com/sirupsen/logrus"
)

// DefaultAddress is github rest api address.
const DefaultAddress = "https://api.github.com"

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client returns github users and repositories.
// This struct is an adapter for app.GithubClient.
//
// Every call is made exactly once. Only responses with status 200 are accepted.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	l         logrus.FieldLogger

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// address defaults to DefaultAddress. authToken is optional, Authorization header is sent only if it's set.
func NewClient(doer HTTPDoer, address string, authToken string, l logrus.FieldLogger) *Client {
	if address == "" {
		address = DefaultAddress
	}

	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		l:         l,

		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// FetchUsers returns perPage users with id greater than since.
func (c *Client) FetchUsers(ctx context.Context, since app.Optional[int], perPage int) ([]app.User, error) {
	body, err := c.makeRequest(ctx, ListUsers{
		Since:   since,
		PerPage: perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp usersResponse
	if err := unmarshal(body, &resp); err != nil {
		return nil, err
	}
	users, err := resp.ToUsers()
	if err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}

	return users, nil
}

// FetchUserDetails returns user profile.
func (c *Client) FetchUserDetails(ctx context.Context, username string) (app.User, error) {
	body, err := c.makeRequest(ctx, GetUser{
		Username: username,
	})
	if err != nil {
		return app.User{}, fmt.Errorf("making http request: %w", err)
	}

	var resp userResponse
	if err := unmarshal(body, &resp); err != nil {
		return app.User{}, err
	}
	user, err := resp.ToUser()
	if err != nil {
		return app.User{}, fmt.Errorf("decoding user: %w", err)
	}

	return user, nil
}

// FetchRepositories returns user's repositories, without forks.
func (c *Client) FetchRepositories(ctx context.Context, username string, page int, perPage int) ([]app.Repository, error) {
	body, err := c.makeRequest(ctx, ListRepositories{
		Username: username,
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp repositoriesResponse
	if err := unmarshal(body, &resp); err != nil {
		return nil, err
	}
	repos, err := resp.ToRepositories()
	if err != nil {
		return nil, fmt.Errorf("decoding repositories: %w", err)
	}

	return app.WithoutForks(repos), nil
}

func (c *Client) newRequest(ctx context.Context, e Endpoint) (*http.Request, error) {
	path, err := e.Path()
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(c.address + path)
	if err != nil {
		return nil, app.InvalidURLError(fmt.Sprintf("invalid url: %v", err))
	}
	u.RawQuery = e.Query().Encode()

	req, err := http.NewRequestWithContext(ctx, e.Method(), u.String(), nil)
	if err != nil {
		return nil, app.InvalidURLError(fmt.Sprintf("creating http request: %v", err))
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	return req, nil
}

func (c *Client) makeRequest(ctx context.Context, e Endpoint) ([]byte, error) {
	req, err := c.newRequest(ctx, e)
	if err != nil {
		return nil, err
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, app.ServerError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	// See: http://tleyden.github.io/blog/2016/11/21/tuning-the-go-http-client-library-for-load-testing/
	defer func() {
		_, _ = io.CopyN(ioutil.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	c.l.Debugf("%s %s: %d", req.Method, req.URL.Redacted(), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, app.ServerError("rate limit exceeded")
		}
		return nil, app.ServerError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
	}

	b, err := ioutil.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)+1))
	if err != nil {
		return nil, app.ServerError(fmt.Sprintf("reading http response body: %v", err))
	}
	if len(b) > c.responseMaxSize {
		return nil, app.DecodingError(fmt.Sprintf("response body exceeds %d bytes", c.responseMaxSize))
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}

func unmarshal(body []byte, v interface{}) error {
	if err := json.Unmarshal(body, v); err != nil {
		return app.DecodingError(fmt.Sprintf("unmarshalling response: %v", err))
	}
	return nil
}
