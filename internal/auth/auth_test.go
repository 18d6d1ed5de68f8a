package auth

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wall/cli/internal/backend"
	clierrors "wall/cli/internal/errors"
	"wall/cli/internal/query"
	"wall/cli/internal/session"
)

// fakeAPI answers every call from its fields and counts current-user calls.
type fakeAPI struct {
	backend.API

	userCalls atomic.Int32
	userEnv   *query.Envelope[backend.User]
	userErr   error

	signInEnv *query.Envelope[backend.Tokens]
	signInErr error
}

func (f *fakeAPI) GetCurrentUser(ctx context.Context, s session.Session) (*query.Envelope[backend.User], error) {
	f.userCalls.Add(1)
	return f.userEnv, f.userErr
}

func (f *fakeAPI) SignIn(ctx context.Context, c backend.Credentials) (*query.Envelope[backend.Tokens], error) {
	return f.signInEnv, f.signInErr
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Load() (session.Session, error) { return session.Session{}, errors.New("locked") }
func (brokenStore) Save(session.Session) error     { return errors.New("locked") }
func (brokenStore) Clear() error                   { return errors.New("locked") }

func TestIsLoggedIn_EmptyTokenMakesNoCall(t *testing.T) {
	api := &fakeAPI{}
	store := session.NewMemoryStore()
	g := NewGate(api, store, nil)

	v := g.IsLoggedIn(context.Background(), session.Session{ID: "1", Token: ""})

	assert.Equal(t, Unauthenticated{Reason: NoToken}, v)
	assert.False(t, v.LoggedIn())
	assert.Zero(t, api.userCalls.Load())
	assert.Zero(t, store.Cleared())
}

func TestIsLoggedIn_ValidSession(t *testing.T) {
	user := backend.User{ID: 1, Username: "ann"}
	api := &fakeAPI{userEnv: &query.Envelope[backend.User]{Status: query.StatusSuccess, Data: user}}
	store := session.NewMemoryStore()
	g := NewGate(api, store, nil)

	v := g.IsLoggedIn(context.Background(), session.Session{ID: "1", Token: "tok"})

	require.True(t, v.LoggedIn())
	assert.Equal(t, Authenticated{User: user}, v)
	assert.EqualValues(t, 1, api.userCalls.Load())
	assert.Zero(t, store.Cleared())
}

func TestIsLoggedIn_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		env    *query.Envelope[backend.User]
		err    error
		reason Reason
	}{
		{"request fails", nil, errors.New("dial tcp: connection refused"), RequestFailed},
		{"no envelope", nil, nil, RequestFailed},
		{"unauthorized", &query.Envelope[backend.User]{Status: query.StatusUnauthorized, Message: query.Text("expired")}, nil, NoUser},
		{"error status", &query.Envelope[backend.User]{Status: query.StatusError}, nil, NoUser},
		{"success without user", &query.Envelope[backend.User]{Status: query.StatusSuccess}, nil, NoUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{userEnv: tt.env, userErr: tt.err}
			store := session.NewMemoryStore()
			require.NoError(t, store.Save(session.Session{ID: "1", Token: "tok"}))
			g := NewGate(api, store, nil)

			v := g.IsLoggedIn(context.Background(), session.Session{ID: "1", Token: "tok"})

			assert.Equal(t, Unauthenticated{Reason: tt.reason}, v)
			assert.Equal(t, 1, store.Cleared())
			_, err := store.Load()
			assert.ErrorIs(t, err, session.ErrNotFound)
		})
	}
}

func TestIsLoggedIn_ClearFailureStillRefuses(t *testing.T) {
	api := &fakeAPI{userErr: errors.New("boom")}
	g := NewGate(api, brokenStore{}, nil)

	v := g.IsLoggedIn(context.Background(), session.Session{ID: "1", Token: "tok"})
	assert.Equal(t, Unauthenticated{Reason: RequestFailed}, v)
}

func TestCurrent(t *testing.T) {
	user := backend.User{ID: 3, Username: "cy"}
	api := &fakeAPI{userEnv: &query.Envelope[backend.User]{Status: query.StatusSuccess, Data: user}}
	store := session.NewMemoryStore()
	g := NewGate(api, store, nil)

	v, err := g.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Unauthenticated{Reason: NoToken}, v)
	assert.Zero(t, api.userCalls.Load())

	require.NoError(t, store.Save(session.Session{ID: "3", Token: "tok"}))
	v, err = g.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Authenticated{User: user}, v)

	_, err = NewGate(api, brokenStore{}, nil).Current(context.Background())
	assert.Error(t, err)
}

func TestReasonString(t *testing.T) {
	assert.Equal(t, "no_token", NoToken.String())
	assert.Equal(t, "request_failed", RequestFailed.String())
	assert.Equal(t, "no_user", NoUser.String())
	assert.Equal(t, "unknown", Reason(0).String())
}

func TestLogin_StoresSession(t *testing.T) {
	api := &fakeAPI{signInEnv: &query.Envelope[backend.Tokens]{
		Status: query.StatusSuccess,
		Data:   backend.Tokens{Access: "tok", UserID: "7"},
	}}
	store := session.NewMemoryStore()
	svc := NewService(api, store, nil)

	env, err := svc.Login(context.Background(), backend.Credentials{Username: "ann", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, query.StatusSuccess, env.Status)
	assert.Equal(t, session.Session{ID: "7", Token: "tok"}, env.Data)

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, env.Data, got)
}

func TestLogin_Failures(t *testing.T) {
	t.Run("rejected credentials pass through", func(t *testing.T) {
		api := &fakeAPI{signInEnv: &query.Envelope[backend.Tokens]{
			Status: query.StatusUnauthorized, Message: query.Text("bad credentials"),
		}}
		store := session.NewMemoryStore()
		env, err := NewService(api, store, nil).Login(context.Background(), backend.Credentials{})
		require.NoError(t, err)
		assert.Equal(t, query.StatusUnauthorized, env.Status)
		assert.Equal(t, "bad credentials", env.Message.Text())
		_, err = store.Load()
		assert.ErrorIs(t, err, session.ErrNotFound)
	})

	t.Run("transport error", func(t *testing.T) {
		api := &fakeAPI{signInErr: errors.New("timeout")}
		_, err := NewService(api, session.NewMemoryStore(), nil).Login(context.Background(), backend.Credentials{})
		assert.Error(t, err)
	})

	t.Run("no token", func(t *testing.T) {
		api := &fakeAPI{signInEnv: &query.Envelope[backend.Tokens]{Status: query.StatusSuccess}}
		env, err := NewService(api, session.NewMemoryStore(), nil).Login(context.Background(), backend.Credentials{})
		require.NoError(t, err)
		assert.Equal(t, query.StatusError, env.Status)
		assert.True(t, env.Error.Truthy())
	})

	t.Run("store failure", func(t *testing.T) {
		api := &fakeAPI{signInEnv: &query.Envelope[backend.Tokens]{
			Status: query.StatusSuccess, Data: backend.Tokens{Access: "tok", UserID: "1"},
		}}
		env, err := NewService(api, brokenStore{}, nil).Login(context.Background(), backend.Credentials{})
		require.NoError(t, err)
		assert.Equal(t, query.StatusError, env.Status)
		assert.Contains(t, env.Error.Text(), "could not store session")
	})
}

func TestLogin_ThroughExecutor(t *testing.T) {
	api := &fakeAPI{signInEnv: &query.Envelope[backend.Tokens]{
		Status: query.StatusError, Error: query.Text("locked out"),
	}}
	svc := NewService(api, session.NewMemoryStore(), nil)

	res := query.Execute(context.Background(), svc.Login,
		query.Input[backend.Credentials]{Payload: backend.Credentials{Username: "ann"}}, query.Options{})
	assert.Equal(t, query.StateAppError, res.State)
	assert.Equal(t, "locked out", res.Message.Text())
}

func TestLogoutAndSessionFor(t *testing.T) {
	store := session.NewMemoryStore()
	svc := NewService(&fakeAPI{}, store, nil)

	_, err := svc.SessionFor()
	assert.True(t, clierrors.Is(err, clierrors.NotLoggedIn))

	require.NoError(t, store.Save(session.Session{ID: "1"}))
	_, err = svc.SessionFor()
	assert.True(t, clierrors.Is(err, clierrors.NotLoggedIn))

	require.NoError(t, store.Save(session.Session{ID: "1", Token: "tok"}))
	s, err := svc.SessionFor()
	require.NoError(t, err)
	assert.Equal(t, "tok", s.Token)

	require.NoError(t, svc.Logout(context.Background()))
	_, err = svc.SessionFor()
	assert.True(t, clierrors.Is(err, clierrors.NotLoggedIn))

	err = NewService(&fakeAPI{}, brokenStore{}, nil).Logout(context.Background())
	assert.True(t, clierrors.Is(err, clierrors.SessionStore))
	_, err = NewService(&fakeAPI{}, brokenStore{}, nil).SessionFor()
	assert.True(t, clierrors.Is(err, clierrors.SessionStore))
}
