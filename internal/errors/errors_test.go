package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestE_ErrorAndUnwrap(t *testing.T) {
	e := Wrap(SessionStore, "could not open keyring", io.EOF)
	assert.Equal(t, "session_store: could not open keyring: EOF", e.Error())
	assert.ErrorIs(t, e, io.EOF)

	assert.Equal(t, "not_logged_in: run `wall login`", New(NotLoggedIn, "run `wall login`").Error())
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("whoami: %w", New(NotLoggedIn, "no session"))
	assert.Equal(t, NotLoggedIn, KindOf(wrapped))
	assert.True(t, Is(wrapped, NotLoggedIn))
	assert.False(t, Is(wrapped, Config))
	assert.Equal(t, Kind(""), KindOf(io.EOF))
	assert.False(t, Is(io.EOF, ""))
}
