package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/gitler/internal/app"
	"github.com/m-zajac/gitler/internal/app/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDetailScreenLoad(t *testing.T) {
	t.Parallel()

	user := app.User{
		ID:        583231,
		Login:     "octocat",
		AvatarURL: "https://avatars.githubusercontent.com/u/583231?v=4",
		Name:      app.Some("The Octocat"),
		Followers: app.Some(100),
		Following: app.Some(9),
	}
	repos := []app.Repository{
		{
			ID:              1296269,
			Name:            "Hello-World",
			StargazersCount: 80,
			HTMLURL:         "https://github.com/octocat/Hello-World",
		},
	}

	tests := []struct {
		name      string
		setupMock func(*mock.MockGithubClient)
		want      app.UserDetailState
	}{
		{
			name: "details and repositories ok",
			setupMock: func(m *mock.MockGithubClient) {
				gomock.InOrder(
					m.EXPECT().
						FetchUserDetails(gomock.Any(), "octocat").
						Return(user, nil),
					m.EXPECT().
						FetchRepositories(gomock.Any(), "octocat", app.DefaultRepositoriesPage, app.DefaultRepositoriesPerPage).
						Return(repos, nil),
				)
			},
			want: app.UserDetailState{
				Username:     "octocat",
				UserDetails:  &user,
				Repositories: repos,
			},
		},
		{
			name: "details error, repositories never requested",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					FetchUserDetails(gomock.Any(), "octocat").
					Return(app.User{}, app.ServerError("got invalid http status code: 404"))
				m.EXPECT().
					FetchRepositories(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			want: app.UserDetailState{
				Username: "octocat",
				ActiveError: &app.AppError{
					Message: "Failed to load user details: got invalid http status code: 404",
				},
			},
		},
		{
			name: "repositories error",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					FetchUserDetails(gomock.Any(), "octocat").
					Return(user, nil)
				m.EXPECT().
					FetchRepositories(gomock.Any(), "octocat", gomock.Any(), gomock.Any()).
					Return(nil, app.DecodingError("missing required field: id"))
			},
			want: app.UserDetailState{
				Username:    "octocat",
				UserDetails: &user,
				ActiveError: &app.AppError{
					Message: "Failed to load repositories: missing required field: id",
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubCli := mock.NewMockGithubClient(ctrl)
			tt.setupMock(githubCli)

			s := app.NewUserDetailScreen(githubCli, "octocat")
			s.Load(context.Background())
			assert.Equal(t, tt.want, s.State())
		})
	}
}

func TestUserDetailScreenLoadOnlyOnce(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		FetchUserDetails(gomock.Any(), "octocat").
		Return(app.User{ID: 1, Login: "octocat", AvatarURL: "u"}, nil).
		Times(1)
	githubCli.EXPECT().
		FetchRepositories(gomock.Any(), "octocat", gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	s := app.NewUserDetailScreen(githubCli, "octocat")
	s.Load(context.Background())
	s.Load(context.Background())
}

func TestUserDetailScreenRepositoryURL(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		FetchUserDetails(gomock.Any(), "octocat").
		Return(app.User{ID: 1, Login: "octocat", AvatarURL: "u"}, nil)
	githubCli.EXPECT().
		FetchRepositories(gomock.Any(), "octocat", gomock.Any(), gomock.Any()).
		Return([]app.Repository{{ID: 7, Name: "r", HTMLURL: "https://github.com/octocat/r"}}, nil)

	s := app.NewUserDetailScreen(githubCli, "octocat")
	_, ok := s.RepositoryURL(7)
	assert.False(t, ok)

	s.Load(context.Background())
	u, ok := s.RepositoryURL(7)
	assert.True(t, ok)
	assert.Equal(t, "https://github.com/octocat/r", u)

	_, ok = s.RepositoryURL(8)
	assert.False(t, ok)
}

func TestUserDetailScreenPublishesStates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := app.User{ID: 1, Login: "octocat", AvatarURL: "u"}
	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		FetchUserDetails(gomock.Any(), "octocat").
		Return(user, nil)
	githubCli.EXPECT().
		FetchRepositories(gomock.Any(), "octocat", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	s := app.NewUserDetailScreen(githubCli, "octocat")
	var got []app.UserDetailState
	s.Subscribe(func(st app.UserDetailState) {
		got = append(got, st)
	})
	s.Load(context.Background())

	want := []app.UserDetailState{
		{Username: "octocat", IsLoadingUserDetails: true},
		{Username: "octocat", UserDetails: &user},
		{Username: "octocat", UserDetails: &user, IsLoadingRepositories: true},
		{
			Username:    "octocat",
			UserDetails: &user,
			ActiveError: &app.AppError{Message: "Failed to load repositories: timeout"},
		},
	}
	assert.Equal(t, want, got)
}

func TestUserDetailScreenLoadOutlivesCallerContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := app.User{ID: 1, Login: "octocat", AvatarURL: "u"}
	repos := []app.Repository{{ID: 7, Name: "r", HTMLURL: "https://github.com/octocat/r"}}
	release := make(chan struct{})

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		FetchUserDetails(gomock.Any(), "octocat").
		Return(user, nil).
		Times(1)
	githubCli.EXPECT().
		FetchRepositories(gomock.Any(), "octocat", gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ int, _ int) ([]app.Repository, error) {
			select {
			case <-release:
				return repos, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}).
		Times(1)

	n, err := app.NewNavigator(func() app.GithubClient { return githubCli }, 10, time.Minute)
	require.NoError(t, err)

	first, err := n.UserDetail("octocat")
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.False(t, first.Load(ctx))
	assert.Nil(t, first.State().ActiveError)

	close(release)

	second, err := n.UserDetail("octocat")
	require.NoError(t, err)
	require.Same(t, first, second)
	assert.True(t, second.Load(context.Background()))

	st := second.State()
	assert.Nil(t, st.ActiveError)
	assert.Equal(t, &user, st.UserDetails)
	assert.Equal(t, repos, st.Repositories)
}

func TestUserDetailScreenLoadTimeout(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	githubCli := mock.NewMockGithubClient(ctrl)
	githubCli.EXPECT().
		FetchUserDetails(gomock.Any(), "octocat").
		DoAndReturn(func(ctx context.Context, _ string) (app.User, error) {
			<-ctx.Done()
			return app.User{}, app.ServerError(ctx.Err().Error())
		})

	s := app.NewUserDetailScreen(githubCli, "octocat", app.WithLoadTimeout(10*time.Millisecond))
	assert.True(t, s.Load(context.Background()))
	assert.Equal(t, &app.AppError{
		Message: "Failed to load user details: context deadline exceeded",
	}, s.State().ActiveError)
}
