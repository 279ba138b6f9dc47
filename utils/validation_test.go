package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	ok, _ := ValidateEmail("meera@gemnest.in")
	assert.True(t, ok)

	for _, email := range []string{"", "not-an-email", "user@", "@host.com", "a b@host.com"} {
		ok, msg := ValidateEmail(email)
		assert.False(t, ok, "email %q", email)
		assert.NotEmpty(t, msg)
	}
}

func TestValidateUsername(t *testing.T) {
	ok, _ := ValidateUsername("meera_08")
	assert.True(t, ok)

	for _, username := range []string{"ab", "has space", "bad!char", ""} {
		ok, _ := ValidateUsername(username)
		assert.False(t, ok, "username %q", username)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("Str0ng!pass")
	assert.True(t, ok)

	cases := map[string]string{
		"short":      "Ab1!",
		"no upper":   "weak1pass!",
		"no lower":   "WEAK1PASS!",
		"no digit":   "Weakpass!!",
		"no special": "Weakpass11",
	}
	for name, password := range cases {
		ok, _ := ValidatePassword(password)
		assert.False(t, ok, name)
	}
}

func TestValidatePhone(t *testing.T) {
	ok, normalized := ValidatePhone("+91 98765 43210")
	assert.True(t, ok)
	assert.Equal(t, "9876543210", normalized)

	ok, normalized = ValidatePhone("9876543210")
	assert.True(t, ok)
	assert.Equal(t, "9876543210", normalized)

	for _, phone := range []string{"12345", "1234567890", "98765432101234"} {
		ok, _ := ValidatePhone(phone)
		assert.False(t, ok, "phone %q", phone)
	}
}
