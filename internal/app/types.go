package app

// User entity.
// Name, Followers and Following are only present on users returned by user details call.
type User struct {
	ID        int
	Login     string
	AvatarURL string
	Name      Optional[string]
	Followers Optional[int]
	Following Optional[int]
	ReposURL  Optional[string]
}

// Repository entity
type Repository struct {
	ID              int
	Name            string
	Language        Optional[string]
	StargazersCount int
	Description     Optional[string]
	HTMLURL         string
	Fork            bool
}

// WithoutForks returns repositories that are not forks.
func WithoutForks(repos []Repository) []Repository {
	result := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork {
			continue
		}
		result = append(result, r)
	}

	return result
}
