package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens

	"github.com/averose/luxe-travel-cms/internal/model"
)

// TokenTTL is how long an issued access token stays valid. There is no
// refresh flow: the admin client simply logs in again after expiry.
const TokenTTL = 7 * 24 * time.Hour

// Claims is the payload embedded in every access token. Besides the
// registered claims it carries enough user identity for the admin UI to
// render without an extra round trip. The authoritative user record is
// still re-read from storage on every authenticated request, so stale
// role or email claims never grant access.
type Claims struct {
	UserID   uint64 `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken builds and signs an HS256 JWT for a user. The token expires
// TokenTTL after issuance.
func IssueToken(secret string, u *model.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// VerifyToken validates the signature and expiry of raw and returns its
// claims. It returns nil on any failure (malformed, expired, wrong
// algorithm, bad signature) so callers can treat "no claims" uniformly as
// unauthenticated instead of branching on error kinds.
func VerifyToken(secret, raw string) *Claims {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; an attacker
		// controlling the alg header must not downgrade verification.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil
	}
	return claims
}
