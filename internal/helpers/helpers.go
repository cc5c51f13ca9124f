package helpers

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const SessionCookieName = "session_token"

// GenerateSlug builds a URL-safe slug from the given parts: lowercase
// alphanumerics with single hyphens between words.
func GenerateSlug(parts ...string) string {
	var b strings.Builder
	lastHyphen := true
	for _, part := range parts {
		for _, r := range strings.ToLower(part) {
			if unicode.IsLower(r) || unicode.IsDigit(r) {
				b.WriteRune(r)
				lastHyphen = false
			} else if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// MintSessionToken issues a signed session token with a fresh session id.
func MintSessionToken(secret []byte, username string, ttl time.Duration) (string, *SessionClaims, error) {
	now := time.Now()
	claims := &SessionClaims{
		Username:  username,
		SessionID: uuid.New().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %v", err)
	}
	return token, claims, nil
}

// ValidateSessionToken parses and verifies a session token.
func ValidateSessionToken(secret []byte, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}
