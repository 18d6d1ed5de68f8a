// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session defines the persisted login session and the storage
// capability it lives in. Nothing here talks to the network.
package session

import (
	"errors"
	"strings"
	"sync"
)

// ErrNotFound is returned by Load when no session has been stored.
var ErrNotFound = errors.New("session not found")

// Session is the principal the CLI acts as.
type Session struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

// HasToken reports whether s carries a bearer token.
func (s Session) HasToken() bool { return strings.TrimSpace(s.Token) != "" }

// Store persists a single session. Clear removes everything the store holds
// for the current principal.
type Store interface {
	Load() (Session, error)
	Save(Session) error
	Clear() error
}

// MemoryStore is a Store kept in process memory.
type MemoryStore struct {
	mu      sync.Mutex
	s       *Session
	cleared int
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (m *MemoryStore) Load() (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.s == nil {
		return Session{}, ErrNotFound
	}
	return *m.s, nil
}

func (m *MemoryStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = &s
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.s = nil
	m.cleared++
	return nil
}

// Cleared returns how many times Clear has been called.
func (m *MemoryStore) Cleared() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cleared
}
