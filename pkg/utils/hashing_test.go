package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePasswords(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	assert.NoError(t, ComparePasswords(hash, "secret123"))
	assert.Error(t, ComparePasswords(hash, "wrong-pass"))
}

func TestHashPasswordNotDeterministic(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// bcrypt salts every hash, so equality checks must go through
	// ComparePasswords instead of string comparison
	assert.NotEqual(t, first, second)
}
