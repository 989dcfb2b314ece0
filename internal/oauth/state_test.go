package oauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	s := NewStateSigner("secret", 10*time.Minute)

	state, err := s.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, state)

	assert.NoError(t, s.Verify(state))
}

func TestStateRejectsTampering(t *testing.T) {
	s := NewStateSigner("secret", 10*time.Minute)

	state, err := s.Issue()
	require.NoError(t, err)

	assert.Error(t, s.Verify(state+"x"))
	assert.Error(t, s.Verify(""))
	assert.Error(t, s.Verify("not-a-token"))
}

func TestStateRejectsWrongSecret(t *testing.T) {
	issuer := NewStateSigner("secret-a", 10*time.Minute)
	verifier := NewStateSigner("secret-b", 10*time.Minute)

	state, err := issuer.Issue()
	require.NoError(t, err)

	assert.Error(t, verifier.Verify(state))
}

func TestStateRejectsExpired(t *testing.T) {
	s := NewStateSigner("secret", -time.Minute)

	state, err := s.Issue()
	require.NoError(t, err)

	assert.Error(t, s.Verify(state))
}
