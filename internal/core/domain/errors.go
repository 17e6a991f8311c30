package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSessionNotFound = errors.New("session not found")
var ErrSessionExpired = errors.New("session expired")

var ErrUserNotFound = errors.New("user not found")
var ErrBookNotFound = errors.New("book not found")
var ErrLoanNotFound = errors.New("loan not found")
var ErrPenaltyNotFound = errors.New("penalty not found")

// ErrUpstreamUnavailable marks a transport-level failure talking to the
// library backend.
var ErrUpstreamUnavailable = errors.New("library backend unavailable")

// ErrMalformedResponse marks an upstream body that was expected to be a JSON
// collection but was something else. Views clear their result set on it
// instead of crashing.
var ErrMalformedResponse = errors.New("malformed upstream response")

// ErrSearchSuperseded is returned to a debounced search call that was
// overtaken by a newer query before its quiet period elapsed.
var ErrSearchSuperseded = errors.New("search superseded by newer query")

// ErrActionPending rejects a confirm while the same row action is already in
// flight, so a double click cannot submit twice.
var ErrActionPending = errors.New("action already pending")

// ErrInvalidStatus rejects a user status outside {Regular, Bloqueado} before
// submission; everything else about the record is the backend's to judge.
var ErrInvalidStatus = errors.New("invalid user status")

var ErrEmptyImport = errors.New("import file has no data rows")
var ErrMalformedImport = errors.New("import file could not be parsed")

// UpstreamError carries a non-2xx upstream status and its optional message
// body. It is passed through to the caller unchanged.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}
