package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.GenerateToken("user-1", "ada@example.com", RoleUser)
	require.NoError(t, err)

	claims, err := m.ParseClaims(token, PurposeSession)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestParseClaimsRejectsOtherPurpose(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	reset, err := m.GenerateResetToken("user-1", "ada@example.com", "fp", time.Minute)
	require.NoError(t, err)

	_, err = m.ParseClaims(reset, PurposeSession)
	assert.ErrorIs(t, err, ErrTokenPurpose)

	claims, err := m.ParseClaims(reset, PurposeReset)
	require.NoError(t, err)
	assert.Equal(t, "fp", claims.Fingerprint)
}

func TestParseClaimsRejectsForeignAndExpiredTokens(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("another-secret", time.Hour)

	forged, err := other.GenerateToken("user-1", "ada@example.com", RoleAdmin)
	require.NoError(t, err)
	_, err = m.ParseClaims(forged, PurposeSession)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, err := m.GenerateResetToken("user-1", "ada@example.com", "fp", -time.Minute)
	require.NoError(t, err)
	_, err = m.ParseClaims(expired, PurposeReset)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ParseClaims("not-a-token", PurposeSession)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
