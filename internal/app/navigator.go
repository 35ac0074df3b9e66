package app

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// ClientFactory creates github client for a new screen.
type ClientFactory func() GithubClient

// Navigator keeps screen instances alive between presentation requests.
//
// There is one users screen and a bounded number of user detail screens, keyed by login.
// Screens older than ttl are dropped and created again, so their data is loaded again.
// Navigator keeps screens, not api responses: a screen that never loaded still calls github.
// Logins are case insensitive, detail screens are created for lower cased login.
type Navigator struct {
	newClient  ClientFactory
	ttl        time.Duration
	screenOpts []ScreenOption

	m     sync.Mutex
	users *usersScreenEntry

	detailScreens *lru.Cache
}

// NewNavigator creates new Navigator instance.
// size is the maximum number of retained user detail screens.
// screenOpts are applied to every created screen.
func NewNavigator(newClient ClientFactory, size int, ttl time.Duration, screenOpts ...ScreenOption) (*Navigator, error) {
	if size <= 0 {
		return nil, errors.New("screens cache size must be greater than 0")
	}
	detailScreens, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache for user detail screens: %w", err)
	}

	return &Navigator{
		newClient:     newClient,
		ttl:           ttl,
		screenOpts:    screenOpts,
		detailScreens: detailScreens,
	}, nil
}

// Users returns users list screen.
func (n *Navigator) Users() *UsersScreen {
	n.m.Lock()
	defer n.m.Unlock()

	if n.users != nil && n.alive(n.users.created) {
		return n.users.screen
	}

	n.users = &usersScreenEntry{
		created: time.Now(),
		screen:  NewUsersScreen(n.newClient(), n.screenOpts...),
	}

	return n.users.screen
}

// UserDetail returns user detail screen for given login.
func (n *Navigator) UserDetail(login string) (*UserDetailScreen, error) {
	if login == "" {
		return nil, InvalidRequestError("login cannot be empty")
	}

	n.m.Lock()
	defer n.m.Unlock()

	login = n.normalizeLogin(login)
	if val, ok := n.detailScreens.Get(login); ok {
		entry := val.(detailScreenEntry)
		if n.alive(entry.created) {
			return entry.screen, nil
		}
	}

	entry := detailScreenEntry{
		created: time.Now(),
		screen:  NewUserDetailScreen(n.newClient(), login, n.screenOpts...),
	}
	n.detailScreens.Add(login, entry)

	return entry.screen, nil
}

func (n *Navigator) alive(created time.Time) bool {
	return created.Add(n.ttl).After(time.Now())
}

func (n *Navigator) normalizeLogin(login string) string {
	return strings.ToLower(login)
}

type usersScreenEntry struct {
	created time.Time
	screen  *UsersScreen
}

type detailScreenEntry struct {
	created time.Time
	screen  *UserDetailScreen
}
