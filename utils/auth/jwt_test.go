package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "feetrack-test",
	})
}

func testIdentity() TokenIdentity {
	return TokenIdentity{
		UserID:       42,
		Username:     "jdelacruz",
		Email:        "juan@example.com",
		FirstName:    "Juan",
		LastName:     "Dela Cruz",
		Role:         "student",
		TokenVersion: 1,
	}
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	m := testManager()

	token, jti, err := m.GenerateAccessToken(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jdelacruz", claims.Username)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, 1, claims.TokenVersion)
	assert.Equal(t, jti, claims.ID)
	assert.Equal(t, "feetrack-test", claims.Issuer)
}

func TestRefreshTokenType(t *testing.T) {
	m := testManager()

	token, _, err := m.GenerateRefreshToken(testIdentity())
	require.NoError(t, err)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "refresh", claims.TokenType)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := testManager()
	other := NewJWTManager(JWTConfig{
		Secret:        "a-different-secret",
		Expiry:        time.Hour,
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "feetrack-test",
	})

	token, _, err := m.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	m := NewJWTManager(JWTConfig{
		Secret:        "test-secret-key-for-unit-tests",
		Expiry:        -time.Minute, // already expired
		RefreshExpiry: 24 * time.Hour,
		Issuer:        "feetrack-test",
	})

	token, _, err := m.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestRefreshAccessToken(t *testing.T) {
	m := testManager()

	refresh, _, err := m.GenerateRefreshToken(testIdentity())
	require.NoError(t, err)

	access, _, err := m.RefreshAccessToken(refresh, 2)
	require.NoError(t, err)

	claims, err := m.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, 2, claims.TokenVersion, "refresh must carry the current version from the database")
}

func TestRefreshAccessTokenRejectsAccessToken(t *testing.T) {
	m := testManager()

	access, _, err := m.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	_, _, err = m.RefreshAccessToken(access, 1)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetTokenExpiry(t *testing.T) {
	m := testManager()

	token, _, err := m.GenerateAccessToken(testIdentity())
	require.NoError(t, err)

	expiry, err := m.GetTokenExpiry(token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)
}
