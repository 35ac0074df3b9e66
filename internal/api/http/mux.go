package http

import (
	"io"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/m-zajac/gitler/internal/app"
	"github.com/sirupsen/logrus"
)

// Navigator returns screens.
//go:generate mockgen -destination mock/navigator.go -package mock github.com/m-zajac/gitler/internal/api/http Navigator
type Navigator interface {
	Users() *app.UsersScreen
	UserDetail(login string) (*app.UserDetailScreen, error)
}

// NewMux creates router for app's http server.
// Requests are logged to accessLog in combined log format.
func NewMux(navigator Navigator, timeout time.Duration, accessLog io.Writer, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	getLogin := func(r *http.Request) string {
		return mux.Vars(r)["login"]
	}
	getRepositoryID := func(r *http.Request) string {
		return mux.Vars(r)["id"]
	}

	r := mux.NewRouter()
	r.HandleFunc(
		"/users",
		timeoutMiddleware(NewUsersHandler(navigator)),
	).Methods(http.MethodGet)
	r.HandleFunc(
		"/users/{login}",
		timeoutMiddleware(NewUserDetailHandler(getLogin, navigator)),
	).Methods(http.MethodGet)
	r.HandleFunc(
		"/users/{login}/repos/{id:[0-9]+}",
		timeoutMiddleware(NewRepositoryPageHandler(getLogin, getRepositoryID, navigator)),
	).Methods(http.MethodGet)

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(l),
		handlers.PrintRecoveryStack(true),
	)

	return handlers.CombinedLoggingHandler(accessLog, recovery(r))
}
