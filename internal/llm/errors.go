package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Failure kinds. Match them with errors.Is on any error from a Provider.
var (
	ErrRateLimited   = errors.New("rate limited")
	ErrUnavailable   = errors.New("provider unavailable")
	ErrRejected      = errors.New("request rejected")
	ErrInvalidOutput = errors.New("output does not match schema")
	ErrTruncated     = errors.New("output truncated at max tokens")
)

// Error is a failed provider call.
type Error struct {
	Provider string
	Kind     error // one of the Err* kinds above

	// RetryAfter is the server's requested wait for rate limits.
	RetryAfter time.Duration
	// Content is the model output, when there was one.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// statusError classifies an SDK error by its HTTP status. A zero status
// means the request never got an answer.
func statusError(provider string, status int, err error) *Error {
	kind := ErrUnavailable
	switch {
	case status == http.StatusTooManyRequests:
		kind = ErrRateLimited
	case status >= 400 && status < 500:
		kind = ErrRejected
	}
	return &Error{Provider: provider, Kind: kind, Err: err}
}

// retryable reports whether another attempt could succeed. Invalid output
// is retried once; seenInvalid tracks that across attempts.
func retryable(err error, seenInvalid *bool) bool {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	case errors.Is(err, ErrTruncated), errors.Is(err, ErrRejected):
		return false
	case errors.Is(err, ErrInvalidOutput):
		if *seenInvalid {
			return false
		}
		*seenInvalid = true
		return true
	}
	return true
}
