package repair

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig matches missing or invalid provider credentials or endpoint.
	ErrConfig = errors.New("repair: configuration error")
	// ErrTransport matches network failures and non-success responses.
	ErrTransport = errors.New("repair: transport error")
	// ErrContent matches responses that lack the expected text.
	ErrContent = errors.New("repair: content error")
	// ErrBusy is returned when a repair is already in flight.
	ErrBusy = errors.New("repair: a repair is already in progress")
)

// ConfigError reports unusable provider settings.
type ConfigError struct {
	Provider string
	Msg      string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Msg)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// TransportError reports a failed request or a non-success status. For a
// status failure StatusCode is set and Body holds the raw response body.
type TransportError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ContentError reports a well-formed response without usable text.
type ContentError struct {
	Provider string
	Msg      string
	Err      error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Msg)
}

func (e *ContentError) Unwrap() error { return e.Err }

func (e *ContentError) Is(target error) bool { return target == ErrContent }
