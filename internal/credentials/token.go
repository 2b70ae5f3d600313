package credentials

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expired reports whether token is a JWT whose exp claim is in the past.
// The signature is not checked; the client holds no signing secret, and a
// forged token is rejected by the server anyway. Opaque (non-JWT) tokens
// and tokens without an exp claim are never considered expired locally.
func Expired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}
