package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoSession       = errors.New("no active session")
	ErrForbidden       = errors.New("access forbidden")
	ErrLoginInProgress = errors.New("login already in progress")
	ErrInvalidInput    = errors.New("invalid input")
)

// DecodeError reports a malformed authentication token.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode token: %s: %v", e.Reason, e.Err)
	}
	return "decode token: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// AuthError reports a rejected or failed call to the authentication endpoint.
// StatusCode is zero when the request never got a response.
type AuthError struct {
	StatusCode int
	Err        error
}

func (e *AuthError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("authenticate: backend returned status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("authenticate: %v", e.Err)
	default:
		return "authenticate: failed"
	}
}

func (e *AuthError) Unwrap() error { return e.Err }

// QueryError reports a network or parse failure for one query key.
type QueryError struct {
	Key QueryKey
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %s: %v", e.Key, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
