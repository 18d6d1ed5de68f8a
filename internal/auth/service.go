// Copyright (c) 2026 The Wall Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/logging"
	"wall/cli/internal/query"
	"wall/cli/internal/session"
)

// Service centralizes authentication-related operations against the backend
// and the session store.
type Service struct {
	be    backend.API
	store session.Store
	log   logging.Logger
}

// NewService constructs an auth Service.
func NewService(be backend.API, store session.Store, log logging.Logger) *Service {
	if log == nil {
		log = logging.Nop()
	}
	return &Service{be: be, store: store, log: log}
}

// Gate returns a SessionGate over the same backend and store.
func (s *Service) Gate() *Gate { return NewGate(s.be, s.store, s.log) }

// Login exchanges credentials for a token and stores the resulting session.
// It has the shape of a query so callers can run it through the executor:
// rejected credentials come back as the server's envelope, and a response
// without a usable token or a session that cannot be stored become error
// envelopes.
func (s *Service) Login(ctx context.Context, c backend.Credentials) (*query.Envelope[session.Session], error) {
	env, err := s.be.SignIn(ctx, c)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, query.ErrNoEnvelope
	}
	out := &query.Envelope[session.Session]{
		Status:  env.Status,
		Message: env.Message,
		Error:   env.Error,
	}
	if env.Status != query.StatusSuccess {
		return out, nil
	}

	sess := session.Session{ID: env.Data.UserID, Token: env.Data.Access}
	if !sess.HasToken() || strings.TrimSpace(sess.ID) == "" {
		return failed[session.Session]("the server did not return a usable session"), nil
	}
	if err := s.store.Save(sess); err != nil {
		s.log.Error(ctx, "failed to store session", "error", err)
		return failed[session.Session](fmt.Sprintf("could not store session: %v", err)), nil
	}
	s.log.Info(ctx, "logged in", "user_id", sess.ID)
	out.Data = sess
	return out, nil
}

// Logout clears the stored session. There is no server-side logout.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(); err != nil {
		return clierrors.Wrap(clierrors.SessionStore, "could not clear session", err)
	}
	s.log.Info(ctx, "logged out")
	return nil
}

// SessionFor loads the stored session for an authenticated call.
// It does not contact the server; the server rejects stale tokens itself.
func (s *Service) SessionFor() (session.Session, error) {
	sess, err := s.store.Load()
	if errors.Is(err, session.ErrNotFound) {
		return session.Session{}, clierrors.New(clierrors.NotLoggedIn, "you are not logged in; run `wall login`")
	}
	if err != nil {
		return session.Session{}, clierrors.Wrap(clierrors.SessionStore, "could not read session", err)
	}
	if !sess.HasToken() {
		return session.Session{}, clierrors.New(clierrors.NotLoggedIn, "you are not logged in; run `wall login`")
	}
	return sess, nil
}

func failed[T any](msg string) *query.Envelope[T] {
	return &query.Envelope[T]{Status: query.StatusError, Error: query.Text(msg)}
}
