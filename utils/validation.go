package utils

import (
	"regexp"
	"strings"
	"unicode"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks basic email shape
func ValidateEmail(email string) (bool, string) {
	email = strings.TrimSpace(email)
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Please provide a valid email address"
	}
	return true, ""
}

// ValidateUsername requires 3-30 chars of letters, digits or underscores
func ValidateUsername(username string) (bool, string) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 30 {
		return false, "Username must be between 3 and 30 characters"
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false, "Username may only contain letters, digits and underscores"
		}
	}
	return true, ""
}

// ValidatePassword requires 8+ chars with upper, lower, digit and symbol
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return false, "Password must contain an uppercase letter, a lowercase letter, a digit and a special character"
	}
	return true, ""
}

// ValidateName checks a first/last name field
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "Name cannot be empty"
	}
	if len(name) > 50 {
		return false, "Name must be at most 50 characters"
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' && r != '-' && r != '\'' {
			return false, "Name may only contain letters, spaces, hyphens and apostrophes"
		}
	}
	return true, ""
}

// ValidatePhone checks an Indian mobile number and returns it normalized
// to 10 digits (without country code) when valid.
func ValidatePhone(phone string) (bool, string) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)

	if strings.HasPrefix(digits, "91") && len(digits) == 12 {
		digits = digits[2:]
	}
	if len(digits) != 10 {
		return false, "Phone number must have 10 digits"
	}
	if digits[0] < '6' {
		return false, "Please provide a valid mobile number"
	}
	return true, digits
}
