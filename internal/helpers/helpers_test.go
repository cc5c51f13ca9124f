package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"simple title", []string{"Spring Summit 2026"}, "spring-summit-2026"},
		{"punctuation collapses", []string{"Lights, Camera… Action!"}, "lights-camera-action"},
		{"multiple parts", []string{"Annual Gala", "Paris"}, "annual-gala-paris"},
		{"already a slug", []string{"winter-gala"}, "winter-gala"},
		{"leading and trailing junk", []string{"  --Event-- "}, "event"},
		{"empty", []string{""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.parts...))
		})
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, claims, err := MintSessionToken(secret, "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, claims.SessionID)

	parsed, err := ValidateSessionToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "admin", parsed.Username)
	assert.Equal(t, claims.SessionID, parsed.SessionID)
	assert.True(t, parsed.IsAuthenticated())
}

func TestValidateSessionTokenRejectsTampering(t *testing.T) {
	token, _, err := MintSessionToken([]byte("secret-a"), "admin", time.Hour)
	require.NoError(t, err)

	_, err = ValidateSessionToken([]byte("secret-b"), token)
	assert.Error(t, err)

	_, err = ValidateSessionToken([]byte("secret-a"), token+"x")
	assert.Error(t, err)
}

func TestValidateSessionTokenRejectsExpired(t *testing.T) {
	token, _, err := MintSessionToken([]byte("secret"), "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateSessionToken([]byte("secret"), token)
	assert.Error(t, err)
}
