package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cohorttools/cohort-api/internal/app/models"
)

func testUser() *models.User {
	return &models.User{ID: 42, Email: "student@example.com"}
}

func newTestService(secret string, exp time.Duration, now func() time.Time) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   secret,
		TokenExp:    exp,
		TokenIssuer: "cohort-tools.test",
		Now:         now,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService("test-secret", time.Hour, nil)

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "cohort-tools.test", claims.Issuer)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := newTestService("secret-one", time.Hour, nil)
	verifier := newTestService("secret-two", time.Hour, nil)

	token, err := issuer.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	issued := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock := issued

	svc := newTestService("test-secret", time.Hour, func() time.Time { return clock })

	token, err := svc.GenerateToken(testUser())
	require.NoError(t, err)

	// Still valid just before the hour is up
	clock = issued.Add(59 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.NoError(t, err)

	// Expired once past the window
	clock = issued.Add(61 * time.Minute)
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService("test-secret", time.Hour, nil)

	for _, tokenString := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	// Raw tokens without the prefix pass through
	token, err = ExtractBearerToken("abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
