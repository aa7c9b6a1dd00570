package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue(7, "alice", "user", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerifyMissing(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("")
	assert.ErrorIs(t, err, ErrMissing)
}

func TestVerifyTampered(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Issue(7, "alice", "user", "")
	require.NoError(t, err)

	// Flip the last character of the signature.
	last := tok[len(tok)-1]
	replace := byte('A')
	if last == 'A' {
		replace = 'B'
	}
	tampered := tok[:len(tok)-1] + string(replace)

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewManager("test-secret", time.Hour)
	verifier := NewManager("other-secret", time.Hour)

	tok, err := issuer.Issue(7, "alice", "user", "")
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyExpired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	tok, err := m.Issue(7, "alice", "user", "")
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalid)
}
