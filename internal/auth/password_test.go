package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret1")

	assert.True(t, CheckPassword("secret1", digest))
	assert.False(t, CheckPassword("secret2", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestCheckPassword_BadDigest(t *testing.T) {
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-digest"))
}
