package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = strings.Repeat("s", 32)

func TestGenerateAndVerify(t *testing.T) {
	m := NewJWTMaker(secret)

	tok, claims, err := m.GenerateToken("user-1", "a@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)

	got, err := m.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "a@example.com", got.Email)
	assert.Equal(t, claims.ID, got.ID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := NewJWTMaker(secret)
	tok, _, err := m.GenerateToken("user-1", "a@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = m.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	tok, _, err := NewJWTMaker(secret).GenerateToken("user-1", "a@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewJWTMaker(strings.Repeat("x", 32)).VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = NewJWTMaker(secret).VerifyToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
