package entities

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClasses(t *testing.T) {
	cause := fs.ErrPermission

	tests := []struct {
		name   string
		err    error
		target error
		errMsg string
	}{
		{
			name:   "config",
			err:    &ConfigError{Fields: []string{"title"}, Reason: "missing required deck settings"},
			target: ErrConfig,
			errMsg: "configuration error: missing required deck settings: title",
		},
		{
			name:   "fetch",
			err:    &FetchError{Source: "https://example.com/a.png", Err: cause},
			target: ErrFetch,
			errMsg: "resource fetch error: https://example.com/a.png: permission denied",
		},
		{
			name:   "write",
			err:    &WriteError{Path: "/ro/index.html", Err: cause},
			target: ErrWrite,
			errMsg: "storage write error: /ro/index.html: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("building deck: %w", tt.err)

			assert.Equal(t, tt.errMsg, tt.err.Error())
			assert.True(t, errors.Is(wrapped, tt.target))
			assert.False(t, errors.Is(wrapped, ErrInvalidFragment))
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	fetch := &FetchError{Source: "a.png", Err: fs.ErrNotExist}
	write := &WriteError{Path: "out.html", Err: fs.ErrPermission}

	assert.True(t, errors.Is(fetch, fs.ErrNotExist))
	assert.True(t, errors.Is(write, fs.ErrPermission))
	assert.False(t, errors.Is(fetch, ErrWrite))
}

func TestConfigError_WithoutFields(t *testing.T) {
	err := &ConfigError{Reason: "rendering header: boom"}
	assert.Equal(t, "configuration error: rendering header: boom", err.Error())
}
