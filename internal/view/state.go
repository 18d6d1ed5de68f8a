// Package view holds the UI-observable state of one command and renders it.
package view

import (
	"sync"

	"wall/cli/internal/query"
)

// State is the state a command screen exposes to the query executor.
// It is safe for concurrent use.
type State struct {
	// mu protects concurrent access to all fields
	mu sync.Mutex

	fetching    bool
	fetchingErr bool
	data        any
	errMsg      string
	pagination  *query.Pagination
}

// NewState creates an idle State.
func NewState() *State { return &State{} }

// Snapshot is a copy of State taken under its lock.
type Snapshot struct {
	Fetching    bool
	FetchingErr bool
	Data        any
	ErrMsg      string
	Pagination  *query.Pagination
}

// Snapshot returns the current values.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Fetching:    s.fetching,
		FetchingErr: s.fetchingErr,
		Data:        s.data,
		ErrMsg:      s.errMsg,
	}
	if s.pagination != nil {
		p := *s.pagination
		snap.Pagination = &p
	}
	return snap
}

// Fetching reports whether a query is in flight.
func (s *State) Fetching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetching
}

// Callbacks binds the executor callbacks to s. withPagination controls
// whether list pagination is recorded.
func (s *State) Callbacks(withPagination bool) query.Callbacks {
	cb := query.Callbacks{
		SetFetching: func(v bool) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.fetching = v
		},
		SetFetchingErr: func(v bool) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.fetchingErr = v
		},
		SetData: func(v any) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.data = v
		},
		SetErrMsg: func(v string) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.errMsg = v
		},
	}
	if withPagination {
		cb.SetPagination = func(p query.Pagination) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.pagination = &p
		}
	}
	return cb
}
