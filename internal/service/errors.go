package service

import (
	"errors"
	"fmt"
)

// ErrBadFormat signals an admin payload whose top level is not a JSON object.
var ErrBadFormat = errors.New("unexpected admin response format")

// ConfigError reports required configuration missing at the point of use.
type ConfigError struct {
	Name string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing %s", e.Name)
}

// UpstreamError reports a failed call to the admin API: a non-2xx status
// (StatusCode plus a truncated Body), or a transport/decode failure (Err).
type UpstreamError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("admin request failed: %v", e.Err)
	}
	return fmt.Sprintf("admin responded %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
