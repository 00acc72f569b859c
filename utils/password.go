package utils

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

// CredentialPolicyError reports every policy rule a candidate password broke,
// so callers can surface each reason as its own inline error.
type CredentialPolicyError struct {
	Reasons []string
}

func (e *CredentialPolicyError) Error() string {
	return "password rejected: " + strings.Join(e.Reasons, "; ")
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a bcrypt hash against a plaintext candidate.
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// ValidatePassword checks the credential policy and returns every violation.
// An empty slice means the password is acceptable.
func ValidatePassword(password string) []string {
	var reasons []string

	if len(password) < 8 {
		reasons = append(reasons, "Passwords must be at least 8 characters.")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	if !hasUpper {
		reasons = append(reasons, "Passwords must have at least one uppercase letter.")
	}
	if !hasLower {
		reasons = append(reasons, "Passwords must have at least one lowercase letter.")
	}
	if !hasDigit {
		reasons = append(reasons, "Passwords must have at least one digit.")
	}
	if !hasSymbol {
		reasons = append(reasons, "Passwords must have at least one non-alphanumeric character.")
	}

	return reasons
}
