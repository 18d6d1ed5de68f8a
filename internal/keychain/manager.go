// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain stores the wall login session in the OS credential store.
//
// The session ({id, token}) is serialized as JSON under a single key, so
// clearing it is one removal. macOS Keychain, Windows Credential Manager and
// Secret Service/KWallet are preferred; systems without any of them fall back
// to an encrypted file under the XDG state directory.
package keychain

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"wall/cli/internal/session"
	"wall/cli/internal/xdg"

	"github.com/99designs/keyring"
)

// Global keychain manager instance
var (
	globalManager *Manager
	mu            sync.Mutex
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "wall"

// KeySession is the key the serialized session is stored under.
const KeySession = "session"

// PasswordEnv, when set, unlocks the file backend without prompting.
const PasswordEnv = "WALL_KEYRING_PASSWORD"

// Manager provides thread-safe session storage on top of a keyring.
// It implements session.Store.
type Manager struct {
	mu   sync.RWMutex
	ring keyring.Keyring
}

var _ session.Store = (*Manager)(nil)

// New wraps an already opened keyring.
func New(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring}
}

// NewManager opens the OS keyring, keeping file-backend data under dir.
func NewManager(dir string) (*Manager, error) {
	ring, err := openRing(dir)
	if err != nil {
		return nil, err
	}
	return New(ring), nil
}

// GetManager returns the process-wide manager, opening the keyring on first
// use. A failed open is retried on the next call.
func GetManager() (*Manager, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalManager != nil {
		return globalManager, nil
	}

	dir, err := xdg.StateDir()
	if err != nil {
		return nil, err
	}
	m, err := NewManager(filepath.Join(dir, "keyring"))
	if err != nil {
		return nil, err
	}
	globalManager = m
	return globalManager, nil
}

// allowedBackends lists the native stores for the current OS, most
// preferred first. The file backend is always last.
func allowedBackends() []keyring.BackendType {
	switch runtime.GOOS {
	case "darwin":
		return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend, keyring.FileBackend}
	case "windows":
		return []keyring.BackendType{keyring.WinCredBackend, keyring.FileBackend}
	default:
		return []keyring.BackendType{
			keyring.SecretServiceBackend,
			keyring.KWalletBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		}
	}
}

func openRing(dir string) (keyring.Keyring, error) {
	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowedBackends(),
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
		FileDir:         dir,
	}
	if pw := os.Getenv(PasswordEnv); pw != "" {
		cfg.FilePasswordFunc = keyring.FixedStringPrompt(pw)
	} else {
		cfg.FilePasswordFunc = keyring.TerminalPrompt
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// Load returns the stored session, or session.ErrNotFound.
// This method is thread-safe.
func (m *Manager) Load() (session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var s session.Session
	it, err := m.ring.Get(KeySession)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return s, session.ErrNotFound
		}
		return s, err
	}
	if len(it.Data) == 0 {
		return s, session.ErrNotFound
	}
	if err := json.Unmarshal(it.Data, &s); err != nil {
		return s, fmt.Errorf("decode stored session: %w", err)
	}
	return s, nil
}

// Save replaces the stored session.
// This method is thread-safe.
func (m *Manager) Save(s session.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.ring.Set(keyring.Item{
		Key:         KeySession,
		Data:        b,
		Label:       "wall session",
		Description: "wall API session token",
	})
}

// Clear removes the stored session. A missing session is not an error.
// This method is thread-safe.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ring.Remove(KeySession); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return err
	}
	return nil
}
