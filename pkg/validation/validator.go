package validation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]{3,20}$`)

// specialChars is the fixed set a password must draw at least one character from.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// Email reports whether s has a plausible local@domain.tld shape.
func Email(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// Username reports whether s is 3-20 characters of letters, digits and underscores.
func Username(s string) bool {
	return usernameRe.MatchString(s)
}

// Password checks password strength: minimum length plus uppercase,
// lowercase, digit and special character. All four classes are required;
// the first failed rule wins and its message is returned.
func Password(s string) error {
	if len(s) < 6 {
		return errors.New("Password must be at least 6 characters long")
	}
	if !containsFunc(s, unicode.IsUpper) {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !containsFunc(s, unicode.IsLower) {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !containsFunc(s, unicode.IsDigit) {
		return errors.New("Password must contain at least one number")
	}
	if !strings.ContainsAny(s, specialChars) {
		return errors.New("Password must contain at least one special character")
	}
	return nil
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
