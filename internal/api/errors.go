package api

import "errors"

var (
	// ErrUnavailable means the remote store could not be reached at all.
	ErrUnavailable = errors.New("remote store unavailable")

	// ErrTimeout means the call exceeded its deadline.
	ErrTimeout = errors.New("remote call timed out")

	// ErrUnauthorized means the stored credential was missing or rejected.
	ErrUnauthorized = errors.New("not authorized")

	// ErrRemote means the remote store answered with a failure status.
	ErrRemote = errors.New("remote store error")
)

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrRemote):
		return "REMOTE"
	default:
		return "UNKNOWN"
	}
}
