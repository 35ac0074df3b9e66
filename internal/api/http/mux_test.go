package http

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/gitler/internal/api/http/mock"
	"github.com/m-zajac/gitler/internal/app"
	appmock "github.com/m-zajac/gitler/internal/app/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	clientDelay := 10 * time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "valid users request",
			method:         http.MethodGet,
			path:           "/users",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "valid user detail request",
			method:         http.MethodGet,
			path:           "/users/octocat",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "client exceeding handler timeout",
			method:         http.MethodGet,
			path:           "/users",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusGatewayTimeout,
		},
		{
			name:           "repository page with invalid id",
			method:         http.MethodGet,
			path:           "/users/octocat/repos/abc",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:           "invalid method",
			method:         http.MethodPost,
			path:           "/users",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			githubCli := appmock.NewMockGithubClient(ctrl)
			githubCli.EXPECT().
				FetchUsers(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, since app.Optional[int], perPage int) ([]app.User, error) {
					select {
					case <-ctx.Done():
						return nil, ctx.Err()
					case <-time.After(clientDelay):
						return []app.User{{ID: 1, Login: "a", AvatarURL: "u"}}, nil
					}
				}).
				AnyTimes()
			githubCli.EXPECT().
				FetchUserDetails(gomock.Any(), "octocat").
				Return(testUser, nil).
				AnyTimes()
			githubCli.EXPECT().
				FetchRepositories(gomock.Any(), "octocat", gomock.Any(), gomock.Any()).
				Return(testRepos, nil).
				AnyTimes()

			navigator := mock.NewMockNavigator(ctrl)
			navigator.EXPECT().
				Users().
				Return(app.NewUsersScreen(githubCli)).
				AnyTimes()
			navigator.EXPECT().
				UserDetail("octocat").
				Return(app.NewUserDetailScreen(githubCli, "octocat"), nil).
				AnyTimes()

			l := logrus.New()
			l.Out = ioutil.Discard
			mux := NewMux(navigator, tt.muxTimeout, ioutil.Discard, l)

			server := httptest.NewServer(mux)
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
