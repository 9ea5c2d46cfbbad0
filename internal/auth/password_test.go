package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
}

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
	assert.False(t, CheckPasswordHash("secret123", "not-a-bcrypt-hash"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("short"))
	assert.Error(t, ValidatePassword(""))
}
