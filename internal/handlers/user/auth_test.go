package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGoogleToken_Valid(t *testing.T) {
	body := strings.NewReader(`{"access_token": "ya29.abc", "expires_in": 3599}`)

	token, err := decodeGoogleToken(body)
	require.NoError(t, err)
	assert.Equal(t, "ya29.abc", token)
}

func TestDecodeGoogleToken_MalformedBody(t *testing.T) {
	// Page d'erreur HTML renvoyée à la place du JSON attendu
	body := strings.NewReader("<html><body>Service Unavailable</body></html>")

	_, err := decodeGoogleToken(body)
	assert.Error(t, err)
}

func TestDecodeGoogleToken_MissingAccessToken(t *testing.T) {
	body := strings.NewReader(`{"error": "invalid_grant"}`)

	_, err := decodeGoogleToken(body)
	assert.Error(t, err)
}

func TestDecodeGoogleProfile_Valid(t *testing.T) {
	body := strings.NewReader(`{"id": "108", "email": "priya@example.in", "name": "Priya"}`)

	gu, err := decodeGoogleProfile(body)
	require.NoError(t, err)
	assert.Equal(t, "priya@example.in", gu.Email)
	assert.Equal(t, "Priya", gu.Name)
}

func TestDecodeGoogleProfile_MalformedBody(t *testing.T) {
	body := strings.NewReader("not json at all")

	_, err := decodeGoogleProfile(body)
	assert.Error(t, err)
}
