package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mmcdole/mealfinder/internal/domain"
)

// SearchSession owns the UI-facing search state and drives one fetch per
// Search call. Only the session writes its state; readers get copies.
//
// Overlapping searches are not cancelled. By default the last fetch to
// complete wins. WithStaleGuard makes completions of superseded searches
// be dropped instead.
type SearchSession struct {
	client     domain.SearchClient
	logger     *slog.Logger
	staleGuard bool

	ctx    context.Context
	cancel context.CancelFunc

	mu        sync.RWMutex
	state     domain.SessionState
	latest    uint64 // Seq handed to the most recent Search call
	observers []observerEntry
	nextObsID int

	inflight sync.WaitGroup
}

type observerEntry struct {
	id       int
	observer domain.StateObserver
}

// SessionOption customizes a SearchSession
type SessionOption func(*SearchSession)

// WithStaleGuard drops results of a search that was superseded by a later
// Search call before it completed
func WithStaleGuard() SessionOption {
	return func(s *SearchSession) { s.staleGuard = true }
}

// WithSessionLogger sets the logger (slog.Default when not given)
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *SearchSession) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSearchSession creates a session in the initial state (nothing searched)
func NewSearchSession(client domain.SearchClient, opts ...SessionOption) *SearchSession {
	ctx, cancel := context.WithCancel(context.Background())
	s := &SearchSession{
		client: client,
		logger: slog.Default(),
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state
func (s *SearchSession) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// StaleGuard reports whether superseded results are dropped
func (s *SearchSession) StaleGuard() bool {
	return s.staleGuard
}

// Subscribe registers an observer and returns a func that removes it.
// Observers run on the goroutine that mutated the state and must not block.
// Notifications from concurrent fetches may arrive out of order; State()
// is always authoritative.
func (s *SearchSession) Subscribe(observer domain.StateObserver) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextObsID++
	id := s.nextObsID
	s.observers = append(s.observers, observerEntry{id: id, observer: observer})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, entry := range s.observers {
			if entry.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// Search clears the previous outcome, marks the session loading and starts
// fetching query in the background. The reset is visible to State() before
// Search returns. The query is passed to the client unmodified.
func (s *SearchSession) Search(query string) {
	s.mu.Lock()
	s.latest++
	seq := s.latest
	s.state = domain.SessionState{
		Query:   query,
		Seq:     seq,
		Loading: true,
	}
	snapshot := s.state.Clone()
	observers := s.observerSnapshot()
	s.inflight.Add(1)
	s.mu.Unlock()

	s.logger.Debug("search started", "query", query, "seq", seq)
	notify(observers, snapshot)

	go s.fetch(query, seq)
}

// Wait blocks until every fetch started so far has settled
func (s *SearchSession) Wait() {
	s.inflight.Wait()
}

// Close aborts in-flight fetches. Their searches settle with an error.
func (s *SearchSession) Close() {
	s.cancel()
}

// fetch runs the client call and always settles, even if the client panics
func (s *SearchSession) fetch(query string, seq uint64) {
	defer s.inflight.Done()

	var meals []domain.Meal
	var err error
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("search panicked", "query", query, "seq", seq, "panic", r)
			meals, err = nil, fmt.Errorf("search failed: %v", r)
		}
		s.settle(query, seq, meals, err)
	}()

	meals, err = s.client.FindMeals(s.ctx, query)
}

// settle records the outcome of search seq and clears the loading flag
func (s *SearchSession) settle(query string, seq uint64, meals []domain.Meal, err error) {
	s.mu.Lock()
	if s.staleGuard && seq != s.latest {
		latest := s.latest
		s.mu.Unlock()
		s.logger.Debug("dropping stale search result", "query", query, "seq", seq, "latest", latest)
		return
	}

	s.state.Query = query
	s.state.Seq = seq
	if err != nil {
		s.state.Results = nil
		s.state.ErrorMessage = errorMessage(err)
	} else {
		if meals == nil {
			meals = []domain.Meal{}
		}
		s.state.Results = meals
		s.state.ErrorMessage = ""
	}
	s.state.Loading = false

	snapshot := s.state.Clone()
	observers := s.observerSnapshot()
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("search failed", "query", query, "seq", seq, "error", err)
	} else {
		s.logger.Info("search settled", "query", query, "seq", seq, "results", len(meals))
	}
	notify(observers, snapshot)
}

// observerSnapshot copies the observer list; caller holds s.mu
func (s *SearchSession) observerSnapshot() []domain.StateObserver {
	if len(s.observers) == 0 {
		return nil
	}
	list := make([]domain.StateObserver, len(s.observers))
	for i, entry := range s.observers {
		list[i] = entry.observer
	}
	return list
}

func notify(observers []domain.StateObserver, state domain.SessionState) {
	for _, o := range observers {
		o.OnStateChange(state.Clone())
	}
}

func errorMessage(err error) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return domain.DefaultErrorMessage
}
