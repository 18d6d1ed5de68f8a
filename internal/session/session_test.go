package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Save(Session{ID: "1", Token: "tok"}))
	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, Session{ID: "1", Token: "tok"}, got)

	require.NoError(t, st.Clear())
	_, err = st.Load()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, st.Cleared())
}

func TestSession_HasToken(t *testing.T) {
	assert.False(t, Session{ID: "1"}.HasToken())
	assert.False(t, Session{ID: "1", Token: "  "}.HasToken())
	assert.True(t, Session{ID: "1", Token: "t"}.HasToken())
}
