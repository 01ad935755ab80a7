package tui

import "github.com/mmcdole/mealfinder/internal/domain"

// Message types for the TUI

// ErrMsg represents an error from a background command
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// StateChangedMsg signals that the search session state changed.
// State is the snapshot the observer saw; handlers re-read the session
// because notifications may be dropped or arrive late.
type StateChangedMsg struct {
	State domain.SessionState
}

// OpenedMsg signals that an external viewer was launched
type OpenedMsg struct {
	What string
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}
