package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/mealfinder/internal/domain"
)

// Command factories for async operations

// WaitForStateCmd blocks until the session publishes a state change.
// The handler re-arms it after every message.
func WaitForStateCmd(ch <-chan domain.SessionState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-ch
		if !ok {
			return nil
		}
		return StateChangedMsg{State: state}
	}
}

// OpenImageCmd opens a meal's thumbnail in an image viewer
func OpenImageCmd(opener Opener, meal domain.Meal) tea.Cmd {
	return func() tea.Msg {
		if err := opener.OpenImage(meal.ThumbnailURL); err != nil {
			return ErrMsg{Err: err, Context: "opening image"}
		}
		return OpenedMsg{What: "image for " + meal.Name}
	}
}

// OpenURLCmd opens a link in the default browser
func OpenURLCmd(opener Opener, what, url string) tea.Cmd {
	return func() tea.Msg {
		if err := opener.OpenURL(url); err != nil {
			return ErrMsg{Err: err, Context: "opening " + what}
		}
		return OpenedMsg{What: what}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
