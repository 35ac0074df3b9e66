package app

import "context"

// UserDetailState is a snapshot of user detail screen.
type UserDetailState struct {
	Username              string
	UserDetails           *User
	Repositories          []Repository
	IsLoadingUserDetails  bool
	IsLoadingRepositories bool
	ActiveError           *AppError
}

// UserDetailScreen loads user profile and user's repositories.
// Repositories are requested only after user details were loaded successfully.
type UserDetailScreen struct {
	client   GithubClient
	username string
	loads    *loader
	state    publisher[UserDetailState]
}

// NewUserDetailScreen creates new UserDetailScreen instance for given username.
func NewUserDetailScreen(client GithubClient, username string, opts ...ScreenOption) *UserDetailScreen {
	s := UserDetailScreen{
		client:   client,
		username: username,
		loads:    newLoader(opts),
	}
	s.state.state.Username = username

	return &s
}

// State returns current screen state.
func (s *UserDetailScreen) State() UserDetailState {
	return s.state.snapshot()
}

// Subscribe registers fn to be called with every new state.
// Returned func removes the subscription.
func (s *UserDetailScreen) Subscribe(fn func(UserDetailState)) func() {
	return s.state.subscribe(fn)
}

// RepositoryURL returns web page url of loaded repository with given id.
func (s *UserDetailScreen) RepositoryURL(id int) (string, bool) {
	for _, r := range s.State().Repositories {
		if r.ID == id {
			return r.HTMLURL, true
		}
	}

	return "", false
}

// Load fetches user details, then user's repositories.
// Does nothing if any data is already loaded. If loading is in progress, waits for it.
// Blocks until the load sequence is finished or ctx is done. The sequence itself doesn't
// use ctx and keeps running after ctx is done. Returns false if ctx was done first.
func (s *UserDetailScreen) Load(ctx context.Context) bool {
	return s.loads.run(ctx, s.load)
}

func (s *UserDetailScreen) load(ctx context.Context) {
	if !s.loadUserDetails(ctx) {
		return
	}

	st := s.State()
	if st.ActiveError == nil && st.UserDetails != nil {
		s.loadRepositories(ctx)
	}
}

// loadUserDetails returns false if loading wasn't started.
func (s *UserDetailScreen) loadUserDetails(ctx context.Context) bool {
	started := s.state.update(func(st *UserDetailState) bool {
		if st.UserDetails != nil || len(st.Repositories) > 0 {
			return false
		}
		if st.IsLoadingUserDetails || st.IsLoadingRepositories {
			return false
		}
		st.IsLoadingUserDetails = true
		st.ActiveError = nil
		return true
	})
	if !started {
		return false
	}

	user, err := s.client.FetchUserDetails(ctx, s.username)
	s.state.update(func(st *UserDetailState) bool {
		if err != nil {
			st.ActiveError = newLoadError("user details", err)
		} else {
			st.UserDetails = &user
		}
		st.IsLoadingUserDetails = false
		return true
	})

	return true
}

func (s *UserDetailScreen) loadRepositories(ctx context.Context) {
	s.state.update(func(st *UserDetailState) bool {
		st.IsLoadingRepositories = true
		return true
	})

	repos, err := s.client.FetchRepositories(ctx, s.username, DefaultRepositoriesPage, DefaultRepositoriesPerPage)
	s.state.update(func(st *UserDetailState) bool {
		if err != nil {
			st.ActiveError = newLoadError("repositories", err)
		} else {
			st.Repositories = repos
		}
		st.IsLoadingRepositories = false
		return true
	})
}
