package cli

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Signed-in account, mirrored from AuthService for cheap header access.
	Email string

	// Terminal dimensions
	Width  int
	Height int

	// Set when the last remote read was served from the local cache.
	Offline bool
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
