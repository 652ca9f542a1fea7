package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateSessionToken("sess-1", "home", 30*time.Second)
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "home", claims.PageID)
	assert.WithinDuration(t, time.Now().Add(30*time.Second), claims.ExpiresAt.Time, 2*time.Second)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.GenerateSessionToken("sess-1", "home", -time.Second)
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").GenerateSessionToken("sess-1", "home", 30*time.Second)
	require.NoError(t, err)

	_, err = NewManager("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewManager("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}
