package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether token is a JWT whose expiry is already past.
//
// The client treats the session token as opaque and never verifies
// signatures; the only thing inspected is the exp claim, so an obviously
// dead session can be dropped at startup instead of failing the first
// authenticated call. Tokens that are not JWTs, or carry no exp, are assumed
// live.
func Expired(token string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
