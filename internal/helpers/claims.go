package helpers

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the claims carried by the session cookie. The login
// behind it is a placeholder credential check, not a security boundary; the
// claims only gate navigation into the management routes.
type SessionClaims struct {
	Username  string `json:"username"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (sc *SessionClaims) IsAuthenticated() bool {
	return sc.Username != ""
}
