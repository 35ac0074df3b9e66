package app

import "context"

// UsersState is a snapshot of users list screen.
type UsersState struct {
	Users       []User
	IsLoading   bool
	ActiveError *AppError
}

// UsersScreen loads the first page of github users.
type UsersScreen struct {
	client GithubClient
	loads  *loader
	state  publisher[UsersState]
}

// NewUsersScreen creates new UsersScreen instance.
func NewUsersScreen(client GithubClient, opts ...ScreenOption) *UsersScreen {
	return &UsersScreen{
		client: client,
		loads:  newLoader(opts),
	}
}

// State returns current screen state.
func (s *UsersScreen) State() UsersState {
	return s.state.snapshot()
}

// Subscribe registers fn to be called with every new state.
// Returned func removes the subscription.
func (s *UsersScreen) Subscribe(fn func(UsersState)) func() {
	return s.state.subscribe(fn)
}

// Load fetches users list.
// Does nothing if users are already loaded. If loading is in progress, waits for it.
// Blocks until the load sequence is finished or ctx is done. The sequence itself doesn't
// use ctx and keeps running after ctx is done. Returns false if ctx was done first.
func (s *UsersScreen) Load(ctx context.Context) bool {
	return s.loads.run(ctx, s.load)
}

func (s *UsersScreen) load(ctx context.Context) {
	started := s.state.update(func(st *UsersState) bool {
		if len(st.Users) > 0 || st.IsLoading {
			return false
		}
		st.IsLoading = true
		st.ActiveError = nil
		return true
	})
	if !started {
		return
	}

	users, err := s.client.FetchUsers(ctx, None[int](), DefaultUsersPerPage)
	s.state.update(func(st *UsersState) bool {
		if err != nil {
			st.ActiveError = newLoadError("users", err)
		} else {
			st.Users = users
		}
		st.IsLoading = false
		return true
	})
}
