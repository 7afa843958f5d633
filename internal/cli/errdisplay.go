package cli

import (
	"errors"

	"github.com/narabid/bidassist/internal/api"
	"github.com/narabid/bidassist/internal/cli/formatter"
)

// friendlyErr maps transport errors onto short user-facing lines.
// Unrecognized errors are shown verbatim.
func friendlyErr(err error) string {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return formatter.Err("Server unreachable. Check your connection and retry.")
	case errors.Is(err, api.ErrTimeout):
		return formatter.Err("Request timed out. Retry in a moment.")
	case errors.Is(err, api.ErrUnauthorized):
		return formatter.Err("Session expired. Sign in again.")
	default:
		return formatter.Err("Error: " + err.Error())
	}
}
