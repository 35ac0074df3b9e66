package github

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m-zajac/gitler/internal/app"
)

// Endpoint describes one of the supported github api calls.
// Implemented only by ListUsers, GetUser and ListRepositories.
type Endpoint interface {
	Method() string
	Path() (string, error)
	Query() url.Values

	endpoint()
}

// ListUsers lists github users in order of sign up.
type ListUsers struct {
	// Since is the id of the last seen user; omitted from the query when not present.
	Since   app.Optional[int]
	PerPage int
}

// GetUser returns single user profile.
type GetUser struct {
	Username string
}

// ListRepositories lists repositories owned by user, recently updated first.
type ListRepositories struct {
	Username string
	Page     int
	PerPage  int
}

func (ListUsers) endpoint()        {}
func (GetUser) endpoint()          {}
func (ListRepositories) endpoint() {}

// Method returns http method.
func (ListUsers) Method() string { return http.MethodGet }

// Method returns http method.
func (GetUser) Method() string { return http.MethodGet }

// Method returns http method.
func (ListRepositories) Method() string { return http.MethodGet }

// Path returns url path.
func (e ListUsers) Path() (string, error) {
	if err := checkPerPage(e.PerPage); err != nil {
		return "", err
	}
	return "/users", nil
}

// Path returns url path with escaped username.
func (e GetUser) Path() (string, error) {
	if e.Username == "" {
		return "", app.InvalidURLError("username cannot be empty")
	}
	return "/users/" + url.PathEscape(e.Username), nil
}

// Path returns url path with escaped username.
func (e ListRepositories) Path() (string, error) {
	if e.Username == "" {
		return "", app.InvalidURLError("username cannot be empty")
	}
	if e.Page < 1 {
		return "", app.InvalidURLError("page must be greater than 0")
	}
	if err := checkPerPage(e.PerPage); err != nil {
		return "", err
	}
	return "/users/" + url.PathEscape(e.Username) + "/repos", nil
}

// Query returns url query params.
func (e ListUsers) Query() url.Values {
	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(e.PerPage))
	if since, ok := e.Since.Get(); ok {
		v.Set("since", strconv.Itoa(since))
	}
	return v
}

// Query returns url query params.
func (GetUser) Query() url.Values {
	return nil
}

// Query returns url query params.
func (e ListRepositories) Query() url.Values {
	v := make(url.Values)
	v.Set("type", "owner")
	v.Set("sort", "updated")
	v.Set("page", strconv.Itoa(e.Page))
	v.Set("per_page", strconv.Itoa(e.PerPage))
	return v
}

func checkPerPage(perPage int) error {
	if perPage < 1 || perPage > 100 {
		return app.InvalidURLError(fmt.Sprintf("per_page must be in range <1..100>, got %d", perPage))
	}
	return nil
}
