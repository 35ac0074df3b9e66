package app

import "context"

// Default page sizes used by screens.
const (
	DefaultUsersPerPage        = 30
	DefaultRepositoriesPage    = 1
	DefaultRepositoriesPerPage = 100
)

// GithubClient returns github users and their repositories.
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/m-zajac/gitler/internal/app GithubClient
type GithubClient interface {
	FetchUsers(ctx context.Context, since Optional[int], perPage int) ([]User, error)
	FetchUserDetails(ctx context.Context, username string) (User, error)
	FetchRepositories(ctx context.Context, username string, page int, perPage int) ([]Repository, error)
}
