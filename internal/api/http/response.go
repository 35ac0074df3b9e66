package http

import "github.com/m-zajac/gitler/internal/app"

type userResponse struct {
	ID        int                  `json:"id"`
	Login     string               `json:"login"`
	AvatarURL string               `json:"avatarUrl"`
	Name      app.Optional[string] `json:"name"`
	Followers app.Optional[int]    `json:"followers"`
	Following app.Optional[int]    `json:"following"`
}

type repositoryResponse struct {
	ID              int                  `json:"id"`
	Name            string               `json:"name"`
	Language        app.Optional[string] `json:"language"`
	StargazersCount int                  `json:"stargazersCount"`
	Description     app.Optional[string] `json:"description"`
	HTMLURL         string               `json:"htmlUrl"`
}

type errorResponse struct {
	Message            string `json:"message"`
	RecoverySuggestion string `json:"recoverySuggestion"`
}

type usersStateResponse struct {
	Users     []userResponse `json:"users"`
	IsLoading bool           `json:"isLoading"`
	Error     *errorResponse `json:"error"`
}

type userDetailStateResponse struct {
	Username              string               `json:"username"`
	UserDetails           *userResponse        `json:"userDetails"`
	Repositories          []repositoryResponse `json:"repositories"`
	IsLoadingUserDetails  bool                 `json:"isLoadingUserDetails"`
	IsLoadingRepositories bool                 `json:"isLoadingRepositories"`
	Error                 *errorResponse       `json:"error"`
}

func newUserResponse(u app.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Login:     u.Login,
		AvatarURL: u.AvatarURL,
		Name:      u.Name,
		Followers: u.Followers,
		Following: u.Following,
	}
}

func newErrorResponse(e *app.AppError) *errorResponse {
	if e == nil {
		return nil
	}
	return &errorResponse{
		Message:            e.Message,
		RecoverySuggestion: e.RecoverySuggestion(),
	}
}

func newUsersStateResponse(st app.UsersState) usersStateResponse {
	users := make([]userResponse, 0, len(st.Users))
	for _, u := range st.Users {
		users = append(users, newUserResponse(u))
	}

	return usersStateResponse{
		Users:     users,
		IsLoading: st.IsLoading,
		Error:     newErrorResponse(st.ActiveError),
	}
}

func newUserDetailStateResponse(st app.UserDetailState) userDetailStateResponse {
	var details *userResponse
	if st.UserDetails != nil {
		u := newUserResponse(*st.UserDetails)
		details = &u
	}

	repos := make([]repositoryResponse, 0, len(st.Repositories))
	for _, r := range st.Repositories {
		repos = append(repos, repositoryResponse{
			ID:              r.ID,
			Name:            r.Name,
			Language:        r.Language,
			StargazersCount: r.StargazersCount,
			Description:     r.Description,
			HTMLURL:         r.HTMLURL,
		})
	}

	return userDetailStateResponse{
		Username:              st.Username,
		UserDetails:           details,
		Repositories:          repos,
		IsLoadingUserDetails:  st.IsLoadingUserDetails,
		IsLoadingRepositories: st.IsLoadingRepositories,
		Error:                 newErrorResponse(st.ActiveError),
	}
}
