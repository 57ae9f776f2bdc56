package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3r$ecret", hash)

	assert.True(t, CheckPassword("Sup3r$ecret", hash))
	assert.False(t, CheckPassword("wrong-password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)
	second, err := HashPassword("Sup3r$ecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "two hashes of the same password should differ")
}

func TestCheckPasswordFailsClosedOnCorruptHash(t *testing.T) {
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
