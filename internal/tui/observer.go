package tui

import "github.com/mmcdole/mealfinder/internal/domain"

// stateBufferSize bounds pending notifications between session and UI
const stateBufferSize = 16

// ChannelObserver adapts domain.StateObserver to a channel for Bubble Tea.
type ChannelObserver struct {
	ch chan<- domain.SessionState
}

// NewChannelObserver creates a new channel-based observer.
func NewChannelObserver(ch chan<- domain.SessionState) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// OnStateChange sends state to the channel (non-blocking if full).
// A dropped send is harmless: the buffered messages still pending are read
// later and the UI re-reads the session when handling each of them.
func (o *ChannelObserver) OnStateChange(state domain.SessionState) {
	select {
	case o.ch <- state:
	default: // Non-blocking if channel full
	}
}
