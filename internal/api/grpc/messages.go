package grpc

import "github.com/m-zajac/gitler/internal/app"

// UsersRequest asks for users list screen state.
type UsersRequest struct{}

// UserDetailRequest asks for user detail screen state.
type UserDetailRequest struct {
	Login string `json:"login"`
}

// User message.
type User struct {
	ID        int                  `json:"id"`
	Login     string               `json:"login"`
	AvatarURL string               `json:"avatarUrl"`
	Name      app.Optional[string] `json:"name"`
	Followers app.Optional[int]    `json:"followers"`
	Following app.Optional[int]    `json:"following"`
}

// Repository message.
type Repository struct {
	ID              int                  `json:"id"`
	Name            string               `json:"name"`
	Language        app.Optional[string] `json:"language"`
	StargazersCount int                  `json:"stargazersCount"`
	Description     app.Optional[string] `json:"description"`
	HTMLURL         string               `json:"htmlUrl"`
}

// Error is screen's active error.
type Error struct {
	Message            string `json:"message"`
	RecoverySuggestion string `json:"recoverySuggestion"`
}

// UsersReply is users list screen state.
type UsersReply struct {
	Users     []*User `json:"users"`
	IsLoading bool    `json:"isLoading"`
	Error     *Error  `json:"error,omitempty"`
}

// UserDetailReply is user detail screen state.
type UserDetailReply struct {
	Username              string        `json:"username"`
	UserDetails           *User         `json:"userDetails,omitempty"`
	Repositories          []*Repository `json:"repositories"`
	IsLoadingUserDetails  bool          `json:"isLoadingUserDetails"`
	IsLoadingRepositories bool          `json:"isLoadingRepositories"`
	Error                 *Error        `json:"error,omitempty"`
}

func newUser(u app.User) *User {
	return &User{
		ID:        u.ID,
		Login:     u.Login,
		AvatarURL: u.AvatarURL,
		Name:      u.Name,
		Followers: u.Followers,
		Following: u.Following,
	}
}

func newError(e *app.AppError) *Error {
	if e == nil {
		return nil
	}
	return &Error{
		Message:            e.Message,
		RecoverySuggestion: e.RecoverySuggestion(),
	}
}

func newUsersReply(st app.UsersState) *UsersReply {
	users := make([]*User, 0, len(st.Users))
	for _, u := range st.Users {
		users = append(users, newUser(u))
	}

	return &UsersReply{
		Users:     users,
		IsLoading: st.IsLoading,
		Error:     newError(st.ActiveError),
	}
}

func newUserDetailReply(st app.UserDetailState) *UserDetailReply {
	var details *User
	if st.UserDetails != nil {
		details = newUser(*st.UserDetails)
	}

	repos := make([]*Repository, 0, len(st.Repositories))
	for _, r := range st.Repositories {
		repos = append(repos, &Repository{
			ID:              r.ID,
			Name:            r.Name,
			Language:        r.Language,
			StargazersCount: r.StargazersCount,
			Description:     r.Description,
			HTMLURL:         r.HTMLURL,
		})
	}

	return &UserDetailReply{
		Username:              st.Username,
		UserDetails:           details,
		Repositories:          repos,
		IsLoadingUserDetails:  st.IsLoadingUserDetails,
		IsLoadingRepositories: st.IsLoadingRepositories,
		Error:                 newError(st.ActiveError),
	}
}
