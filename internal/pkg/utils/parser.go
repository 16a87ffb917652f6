package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenExpiry reads the exp claim from a bearer token without verifying
// the signature; the client has no signing secret and only needs the
// expiry to bound its persisted session mirror. Returns the zero time
// when the token is not a JWT or carries no exp claim.
func TokenExpiry(tokenString string) time.Time {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
