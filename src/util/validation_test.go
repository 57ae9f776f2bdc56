package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("alice@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.example.co"))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
	assert.False(t, ValidateEmail(""))
}

func TestValidateUsername(t *testing.T) {
	assert.True(t, ValidateUsername("bob"))
	assert.False(t, ValidateUsername("ab"))
	assert.False(t, ValidateUsername("this-username-is-way-too-long-to-pass"))
}

func TestValidatePassword(t *testing.T) {
	assert.True(t, ValidatePassword("Passw0rd!"))
	assert.False(t, ValidatePassword("short1!"))
	assert.False(t, ValidatePassword("alllowercase1!"))
	assert.False(t, ValidatePassword("NoDigits!!"))
	assert.False(t, ValidatePassword("NoSpecial123"))
}

func TestValidateTransactionType(t *testing.T) {
	assert.True(t, ValidateTransactionType("income"))
	assert.True(t, ValidateTransactionType("expense"))
	assert.False(t, ValidateTransactionType("transfer"))
	assert.False(t, ValidateTransactionType(""))
}

func TestValidateAmount(t *testing.T) {
	assert.True(t, ValidateAmount(0))
	assert.True(t, ValidateAmount(12.34))
	assert.False(t, ValidateAmount(-0.01))
}
