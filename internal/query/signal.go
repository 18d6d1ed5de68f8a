// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package query

import "sync/atomic"

// Signal is a cooperative cancellation flag. The caller sets it when the
// request it belongs to has been superseded; the executor observes it before
// committing any data or error state. A nil *Signal is never aborted.
type Signal struct {
	aborted atomic.Bool
}

// NewSignal returns a signal in the not-aborted state.
func NewSignal() *Signal { return &Signal{} }

// Abort marks the signal as aborted. It is safe to call more than once and
// from any goroutine.
func (s *Signal) Abort() {
	if s != nil {
		s.aborted.Store(true)
	}
}

// Aborted reports whether Abort has been called.
func (s *Signal) Aborted() bool {
	return s != nil && s.aborted.Load()
}
