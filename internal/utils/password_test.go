package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("teak&rosewood")
	require.NoError(t, err)
	assert.True(t, IsArgon2Hash(hash))

	ok, err := VerifyPassword("teak&rosewood", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("mauvais mot de passe", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltVaries(t *testing.T) {
	h1, err := HashPassword("même mot de passe")
	require.NoError(t, err)
	h2, err := HashPassword("même mot de passe")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestVerifyPassword_BcryptLegacy(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("ancien-compte"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, IsBcryptHash(string(legacy)))

	ok, err := VerifyPassword("ancien-compte", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("faux", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "pas-un-hash")
	assert.Error(t, err)
}
