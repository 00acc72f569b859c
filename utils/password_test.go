package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePasswordAcceptsPolicyCompliant(t *testing.T) {
	assert.Empty(t, ValidatePassword("Password123!"))
	assert.Empty(t, ValidatePassword("Farmer123!"))
}

func TestValidatePasswordReportsEachViolation(t *testing.T) {
	// too short, no uppercase, no digit, no symbol
	assert.Len(t, ValidatePassword("abc"), 4)

	// only missing a symbol
	reasons := ValidatePassword("Password123")
	require.Len(t, reasons, 1)
	assert.Contains(t, reasons[0], "non-alphanumeric")
}

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Password123!")
	require.NoError(t, err)
	require.NotEqual(t, "Password123!", hashed)

	assert.NoError(t, CheckPassword(hashed, "Password123!"))
	assert.Error(t, CheckPassword(hashed, "Password123?"))
}
