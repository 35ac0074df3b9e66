package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTimeoutMiddleware(t *testing.T) {
	t.Parallel()

	m := NewTimeoutMiddleware(time.Millisecond)

	var canceled bool
	h := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			canceled = true
		case <-time.After(time.Second):
		}
	}

	r := httptest.NewRequest(http.MethodGet, "/users", nil)
	m(h)(httptest.NewRecorder(), r)

	assert.True(t, canceled, "request context not canceled")
}
