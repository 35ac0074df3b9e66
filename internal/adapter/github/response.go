package github

import (
	"fmt"

	"github.com/m-zajac/gitler/internal/app"
)

// Required fields are pointers, so missing ones can be told apart from zero values.

type userResponse struct {
	ID        *int                 `json:"id"`
	Login     *string              `json:"login"`
	AvatarURL *string              `json:"avatar_url"`
	Name      app.Optional[string] `json:"name"`
	Followers app.Optional[int]    `json:"followers"`
	Following app.Optional[int]    `json:"following"`
	ReposURL  app.Optional[string] `json:"repos_url"`
}

func (r userResponse) ToUser() (app.User, error) {
	switch {
	case r.ID == nil:
		return app.User{}, missingFieldError("id")
	case r.Login == nil:
		return app.User{}, missingFieldError("login")
	case r.AvatarURL == nil:
		return app.User{}, missingFieldError("avatar_url")
	}

	return app.User{
		ID:        *r.ID,
		Login:     *r.Login,
		AvatarURL: *r.AvatarURL,
		Name:      r.Name,
		Followers: r.Followers,
		Following: r.Following,
		ReposURL:  r.ReposURL,
	}, nil
}

type usersResponse []userResponse

func (s usersResponse) ToUsers() ([]app.User, error) {
	users := make([]app.User, 0, len(s))
	for i, el := range s {
		u, err := el.ToUser()
		if err != nil {
			return nil, fmt.Errorf("user at index %d: %w", i, err)
		}
		users = append(users, u)
	}

	return users, nil
}

type repositoryResponse struct {
	ID              *int                 `json:"id"`
	Name            *string              `json:"name"`
	Language        app.Optional[string] `json:"language"`
	StargazersCount *int                 `json:"stargazers_count"`
	Description     app.Optional[string] `json:"description"`
	HTMLURL         *string              `json:"html_url"`
	Fork            *bool                `json:"fork"`
}

func (r repositoryResponse) ToRepository() (app.Repository, error) {
	switch {
	case r.ID == nil:
		return app.Repository{}, missingFieldError("id")
	case r.Name == nil:
		return app.Repository{}, missingFieldError("name")
	case r.StargazersCount == nil:
		return app.Repository{}, missingFieldError("stargazers_count")
	case *r.StargazersCount < 0:
		return app.Repository{}, app.DecodingError(fmt.Sprintf("stargazers_count cannot be negative, got %d", *r.StargazersCount))
	case r.HTMLURL == nil:
		return app.Repository{}, missingFieldError("html_url")
	case r.Fork == nil:
		return app.Repository{}, missingFieldError("fork")
	}

	return app.Repository{
		ID:              *r.ID,
		Name:            *r.Name,
		Language:        r.Language,
		StargazersCount: *r.StargazersCount,
		Description:     r.Description,
		HTMLURL:         *r.HTMLURL,
		Fork:            *r.Fork,
	}, nil
}

type repositoriesResponse []repositoryResponse

func (s repositoriesResponse) ToRepositories() ([]app.Repository, error) {
	repos := make([]app.Repository, 0, len(s))
	for i, el := range s {
		r, err := el.ToRepository()
		if err != nil {
			return nil, fmt.Errorf("repository at index %d: %w", i, err)
		}
		repos = append(repos, r)
	}

	return repos, nil
}

func missingFieldError(name string) error {
	return app.DecodingError("missing required field: " + name)
}
