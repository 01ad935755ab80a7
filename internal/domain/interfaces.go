package domain

import "context"

// SearchClient finds meals by name on a remote recipe database.
// The query is forwarded as-is. A query with no matches returns an empty,
// non-nil slice and a nil error.
type SearchClient interface {
	FindMeals(ctx context.Context, query string) ([]Meal, error)
}

// StateObserver is notified after every SessionState mutation.
// Implementations must not block; they run on the mutating goroutine.
type StateObserver interface {
	OnStateChange(state SessionState)
}

// StateObserverFunc adapts a plain function to StateObserver
type StateObserverFunc func(state SessionState)

// OnStateChange calls f(state)
func (f StateObserverFunc) OnStateChange(state SessionState) { f(state) }
