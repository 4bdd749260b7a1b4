package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/averose/luxe-travel-cms/internal/model"
)

const testSecret = "unit-test-secret"

func testUser() *model.User {
	return &model.User{
		ID:       42,
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RoleEditor,
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	raw, err := IssueToken(testSecret, testUser())
	require.NoError(t, err)

	claims := VerifyToken(testSecret, raw)
	require.NotNil(t, claims)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "editor", claims.Role)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyTokenRejectsBadInput(t *testing.T) {
	raw, err := IssueToken(testSecret, testUser())
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		assert.Nil(t, VerifyToken("other-secret", raw))
	})

	t.Run("tampered payload", func(t *testing.T) {
		assert.Nil(t, VerifyToken(testSecret, raw[:len(raw)-4]+"AAAA"))
	})

	t.Run("garbage", func(t *testing.T) {
		assert.Nil(t, VerifyToken(testSecret, "not.a.jwt"))
		assert.Nil(t, VerifyToken(testSecret, ""))
	})
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(past.Add(-TokenTTL)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	assert.Nil(t, VerifyToken(testSecret, raw))
}

func TestVerifyTokenRejectsUnsignedAlg(t *testing.T) {
	claims := Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	assert.Nil(t, VerifyToken(testSecret, raw))
}
