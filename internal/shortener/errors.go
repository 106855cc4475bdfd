package shortener

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL covers malformed input, disallowed schemes and unresolvable hosts.
	ErrInvalidURL = errors.New("invalid url")
	// ErrNotAnInteger is returned when a short identifier is not a base 10 integer.
	ErrNotAnInteger = errors.New("short url is not an integer")
	// ErrNotFound is returned when no entry has the requested identifier.
	ErrNotFound = errors.New("short url not found")
)

// Reason tells why a candidate URL was rejected.
type Reason string

const (
	ReasonMalformed Reason = "malformed"
	ReasonScheme    Reason = "scheme"
	ReasonLookup    Reason = "lookup"
)

// InvalidURLError carries the rejection reason of a candidate URL.
// It matches ErrInvalidURL with errors.Is.
type InvalidURLError struct {
	Reason Reason
	Err    error
}

func (e *InvalidURLError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid url: %s", e.Reason)
	}

	return fmt.Sprintf("invalid url: %s: %v", e.Reason, e.Err)
}

func (e *InvalidURLError) Is(target error) bool {
	return target == ErrInvalidURL
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

func invalid(reason Reason, err error) error {
	return &InvalidURLError{Reason: reason, Err: err}
}
