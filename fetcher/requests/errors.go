package requests

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed backend call.
type ErrorKind int

const (
	// KindTransient covers network failures, 5xx, rate limits and malformed bodies. Retrying may help.
	KindTransient ErrorKind = iota
	// KindNotFound means the player or match doesn't exist.
	KindNotFound
	// KindInvalid means the backend rejected the input.
	KindInvalid
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid request"
	default:
		return "transient"
	}
}

// Sentinels matched through errors.Is on an *APIError.
var (
	ErrNotFound  = errors.New("not found")
	ErrTransient = errors.New("transient backend failure")
	ErrInvalid   = errors.New("invalid request")
)

// APIError is returned by every backend call that doesn't produce data.
type APIError struct {
	Op      string
	Key     string
	Status  int
	Message string
	Kind    ErrorKind
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status > 0 {
		return fmt.Sprintf("%s %s: %s (status %d)", e.Op, e.Key, msg, e.Status)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Key, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error kind.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrTransient:
		return e.Kind == KindTransient
	case ErrInvalid:
		return e.Kind == KindInvalid
	}
	return false
}

// Retryable reports whether repeating the call may succeed.
func (e *APIError) Retryable() bool {
	return e.Kind == KindTransient
}

// kindForStatus maps an HTTP status to an error kind.
func kindForStatus(status int) ErrorKind {
	switch status {
	case 404:
		return KindNotFound
	case 400, 422:
		return KindInvalid
	default:
		return KindTransient
	}
}

// IsNotFound reports whether err is a not found backend error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsTransient reports whether err is a retryable backend error.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
