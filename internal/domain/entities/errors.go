package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes surfaced by deck construction, media embedding and compilation.
// Match them with errors.Is.
var (
	ErrConfig          = errors.New("configuration error")
	ErrFetch           = errors.New("resource fetch error")
	ErrWrite           = errors.New("storage write error")
	ErrInvalidFragment = errors.New("invalid fragment style")
)

// ConfigError reports missing or invalid deck settings
type ConfigError struct {
	Fields []string
	Reason string
}

func (e *ConfigError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("%v: %s", ErrConfig, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrConfig, e.Reason, strings.Join(e.Fields, ", "))
}

// Is makes errors.Is(err, ErrConfig) hold for any ConfigError
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// FetchError reports a failure to read a local file or fetch a remote URL
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrFetch, e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrFetch) hold for any FetchError
func (e *FetchError) Is(target error) bool {
	return target == ErrFetch
}

// WriteError reports a failure to write the compiled document
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrWrite, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrWrite) hold for any WriteError
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
