package http

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/gitler/internal/app"
)

// NewUsersHandler creates handlerfunc returning users list screen state.
func NewUsersHandler(navigator Navigator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screen := navigator.Users()
		loaded := screen.Load(r.Context())
		st := screen.State()

		writeState(w, newUsersStateResponse(st), stateStatus(loaded, st.ActiveError))
	}
}

// NewUserDetailHandler creates handlerfunc returning user detail screen state.
func NewUserDetailHandler(
	getLogin func(*http.Request) string,
	navigator Navigator,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		screen, err := navigator.UserDetail(getLogin(r))
		if err != nil {
			writeError(w, err)
			return
		}
		loaded := screen.Load(r.Context())
		st := screen.State()

		writeState(w, newUserDetailStateResponse(st), stateStatus(loaded, st.ActiveError))
	}
}

// NewRepositoryPageHandler creates handlerfunc redirecting to repository's web page.
func NewRepositoryPageHandler(
	getLogin func(*http.Request) string,
	getRepositoryID func(*http.Request) string,
	navigator Navigator,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(getRepositoryID(r))
		if err != nil {
			writeError(w, app.InvalidRequestError("invalid repository id"))
			return
		}
		screen, err := navigator.UserDetail(getLogin(r))
		if err != nil {
			writeError(w, err)
			return
		}
		loaded := screen.Load(r.Context())

		u, ok := screen.RepositoryURL(id)
		if !ok {
			st := screen.State()
			if status := stateStatus(loaded, st.ActiveError); status != http.StatusOK {
				writeState(w, newUserDetailStateResponse(st), status)
				return
			}
			http.Error(w, "repository not found", http.StatusNotFound)
			return
		}

		http.Redirect(w, r, u, http.StatusFound)
	}
}

// stateStatus returns http status for screen state.
// 504 if request gave up before the screen finished loading, 502 if github call behind the screen failed.
func stateStatus(loaded bool, activeError *app.AppError) int {
	switch {
	case !loaded:
		return http.StatusGatewayTimeout
	case activeError != nil:
		return http.StatusBadGateway
	default:
		return http.StatusOK
	}
}

// writeState writes screen state as json.
func writeState(w http.ResponseWriter, state interface{}, status int) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = jsoniter.ConfigFastest.NewEncoder(w).Encode(state)
}

func writeError(w http.ResponseWriter, err error) {
	if app.IsInvalidRequestError(err) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.Error(w, "", http.StatusInternalServerError)
}
