// Package auth decides whether the stored session is still authenticated and
// orchestrates login, signup and logout against the wall API.
package auth

import (
	"context"
	"errors"

	"wall/cli/internal/backend"
	"wall/cli/internal/logging"
	"wall/cli/internal/query"
	"wall/cli/internal/session"
)

// Reason says why a session is not authenticated.
type Reason int

const (
	// NoToken means the session carries no token. No request was made.
	NoToken Reason = iota + 1
	// RequestFailed means the current-user request did not produce a response.
	RequestFailed
	// NoUser means the server answered but did not return a user.
	NoUser
)

func (r Reason) String() string {
	switch r {
	case NoToken:
		return "no_token"
	case RequestFailed:
		return "request_failed"
	case NoUser:
		return "no_user"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of a session check: Authenticated or Unauthenticated.
type Verdict interface {
	LoggedIn() bool
	verdict()
}

// Authenticated carries the user the session belongs to.
type Authenticated struct {
	User backend.User
}

// Unauthenticated carries the reason the session was refused.
type Unauthenticated struct {
	Reason Reason
}

func (Authenticated) LoggedIn() bool   { return true }
func (Unauthenticated) LoggedIn() bool { return false }
func (Authenticated) verdict()         {}
func (Unauthenticated) verdict()       {}

// UserFetcher is the part of backend.API the gate needs.
type UserFetcher interface {
	GetCurrentUser(ctx context.Context, s session.Session) (*query.Envelope[backend.User], error)
}

// Gate checks sessions against the current-user endpoint.
// Every refused check, other than a missing token, clears the store.
type Gate struct {
	api   UserFetcher
	store session.Store
	log   logging.Logger
}

// NewGate builds a Gate. A nil logger discards records.
func NewGate(api UserFetcher, store session.Store, log logging.Logger) *Gate {
	if log == nil {
		log = logging.Nop()
	}
	return &Gate{api: api, store: store, log: log}
}

// IsLoggedIn verifies s with the server.
func (g *Gate) IsLoggedIn(ctx context.Context, s session.Session) Verdict {
	if !s.HasToken() {
		return Unauthenticated{Reason: NoToken}
	}

	res := query.Execute(ctx, g.api.GetCurrentUser, query.Input[session.Session]{Payload: s},
		query.Options{Name: "current_user", Logger: g.log})

	switch {
	case res.State == query.StateTransportError:
		return g.refuse(ctx, RequestFailed)
	case res.State != query.StateSuccess || isZeroUser(res.Data):
		return g.refuse(ctx, NoUser)
	}
	return Authenticated{User: res.Data}
}

// Current loads the stored session and checks it. A missing session is
// reported as NoToken.
func (g *Gate) Current(ctx context.Context) (Verdict, error) {
	s, err := g.store.Load()
	if errors.Is(err, session.ErrNotFound) {
		return Unauthenticated{Reason: NoToken}, nil
	}
	if err != nil {
		return nil, err
	}
	return g.IsLoggedIn(ctx, s), nil
}

func (g *Gate) refuse(ctx context.Context, r Reason) Verdict {
	if err := g.store.Clear(); err != nil {
		g.log.Warn(ctx, "failed to clear session", "error", err)
	}
	return Unauthenticated{Reason: r}
}

func isZeroUser(u backend.User) bool {
	return u == backend.User{}
}
