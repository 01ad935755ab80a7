package domain

// DefaultErrorMessage is shown when a failure carries no text of its own
const DefaultErrorMessage = "An error occurred"

// SessionState is the UI-facing state of a search session.
//
// Results == nil and ErrorMessage == "" together mean no search has been
// performed yet. Results != nil with zero length means a search completed
// with no matches.
type SessionState struct {
	Query        string // Query of the most recent search
	Seq          uint64 // Number of the most recent search, 0 before the first
	Results      []Meal
	Loading      bool
	ErrorMessage string
}

// Searched returns true once any search has started
func (s SessionState) Searched() bool {
	return s.Seq > 0
}

// Settled returns true when the last search has completed
func (s SessionState) Settled() bool {
	return !s.Loading && (s.Results != nil || s.ErrorMessage != "")
}

// Failed returns true when the last search settled with an error
func (s SessionState) Failed() bool {
	return !s.Loading && s.ErrorMessage != ""
}

// Empty returns true when the last search settled with no matches
func (s SessionState) Empty() bool {
	return !s.Loading && s.Results != nil && len(s.Results) == 0
}

// Clone returns a copy whose Results slice is independent of s.
// A nil slice stays nil and an empty slice stays empty.
func (s SessionState) Clone() SessionState {
	dup := s
	if s.Results != nil {
		dup.Results = make([]Meal, len(s.Results))
		copy(dup.Results, s.Results)
	}
	return dup
}
