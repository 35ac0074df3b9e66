package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInvalidRequestError(t *testing.T) {
	stdErr := errors.New("simple error")
	assert.False(t, IsInvalidRequestError(stdErr))

	irErr := InvalidRequestError("invalid request")
	assert.True(t, IsInvalidRequestError(irErr))

	wrapperErr := fmt.Errorf("wrapping message: %w", irErr)
	assert.True(t, IsInvalidRequestError(wrapperErr))
}

func TestClientErrorsAreDistinguishable(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantURL    bool
		wantServer bool
		wantDecode bool
	}{
		{
			name: "std error",
			err:  errors.New("simple error"),
		},
		{
			name:    "invalid url",
			err:     fmt.Errorf("building request: %w", InvalidURLError("username cannot be empty")),
			wantURL: true,
		},
		{
			name:       "server error",
			err:        fmt.Errorf("making http request: %w", ServerError("got invalid http status code: 404")),
			wantServer: true,
		},
		{
			name:       "decoding error",
			err:        fmt.Errorf("decoding: %w", DecodingError("missing required field id")),
			wantDecode: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantURL, IsInvalidURLError(tt.err))
			assert.Equal(t, tt.wantServer, IsServerError(tt.err))
			assert.Equal(t, tt.wantDecode, IsDecodingError(tt.err))
			assert.False(t, IsInvalidRequestError(tt.err))
		})
	}
}
