package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNetworkUnsupported is returned when a network has no configured
	// endpoint for the requested data source
	ErrNetworkUnsupported = errors.New("network unsupported")

	// ErrNotFound is returned when an upstream source reports a record as
	// absent. Absence is a logical result, distinct from a failed lookup.
	ErrNotFound = errors.New("not found")
)

// UpstreamError wraps a transport or server-side failure from a remote data
// source. It is retryable by the polling layer and non-fatal to an
// in-progress multi-network search.
type UpstreamError struct {
	Source  string
	Network Network
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s on %s: %v", e.Source, e.Network, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an UpstreamError for a source/network pair
func NewUpstreamError(source string, network Network, err error) *UpstreamError {
	return &UpstreamError{Source: source, Network: network, Err: err}
}

// MalformedDataError indicates a payload that failed shape validation. It
// aborts only the affected sub-view, never the whole request.
type MalformedDataError struct {
	Source string
	Err    error
}

func (e *MalformedDataError) Error() string {
	return fmt.Sprintf("malformed data from %s: %v", e.Source, e.Err)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// NewMalformedDataError creates a MalformedDataError for a source
func NewMalformedDataError(source string, err error) *MalformedDataError {
	return &MalformedDataError{Source: source, Err: err}
}
