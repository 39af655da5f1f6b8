package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRE = regexp.MustCompile(`^\+?[\d\s\-()]{7,20}$`)

	lowerRE = regexp.MustCompile(`[a-z]`)
	upperRE = regexp.MustCompile(`[A-Z]`)
	digitRE = regexp.MustCompile(`\d`)
)

// Check inspects one field value. It returns the value that continues
// downstream (normalizations like trim and lowercase are applied here) and an
// error message, empty on pass. Checks never touch other fields.
type Check func(value any) (normalized any, message string)

// FieldRule binds a field name to an ordered chain of checks. The first
// failing check determines the field's error message; later checks in the
// chain are skipped, but other fields are still evaluated.
type FieldRule struct {
	Field    string
	Optional bool // skip the chain entirely when the field is absent or empty
	Checks   []Check
}

// TrimmedLength trims the value and checks its rune count against [min, max].
// max <= 0 means unbounded. The trimmed value continues downstream.
func TrimmedLength(min, max int, message string) Check {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return value, message
		}
		s = strings.TrimSpace(s)
		n := utf8.RuneCountInString(s)
		if n < min || (max > 0 && n > max) {
			return s, message
		}
		return s, ""
	}
}

// Email checks syntax and normalizes: trimmed and lowercased. The normalized
// address continues downstream.
func Email(message string) Check {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return value, message
		}
		s = strings.ToLower(strings.TrimSpace(s))
		if !emailRE.MatchString(s) {
			return s, message
		}
		return s, ""
	}
}

// OneOf checks membership in an allowed set.
func OneOf(allowed []string, message string) Check {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return value, message
		}
		if _, found := set[s]; !found {
			return s, message
		}
		return s, ""
	}
}

// IntRange checks that the value is an integer in [min, max]. JSON numbers
// decode as float64, so both are accepted; fractional values fail.
func IntRange(min, max int, message string) Check {
	return func(value any) (any, string) {
		switch n := value.(type) {
		case int:
			if n < min || n > max {
				return n, message
			}
			return n, ""
		case float64:
			if n != float64(int(n)) || int(n) < min || int(n) > max {
				return n, message
			}
			return int(n), ""
		default:
			return value, message
		}
	}
}

// ArrayMinLen checks that the value is an array with at least min entries.
func ArrayMinLen(min int, message string) Check {
	return func(value any) (any, string) {
		arr, ok := value.([]any)
		if !ok || len(arr) < min {
			return value, message
		}
		return arr, ""
	}
}

// NotEmpty checks for a non-empty string without trimming it away.
func NotEmpty(message string) Check {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok || s == "" {
			return value, message
		}
		return s, ""
	}
}

// Password checks minimum length plus character-class requirements: at least
// one lowercase letter, one uppercase letter, and one digit.
func Password(minLen int) Check {
	message := fmt.Sprintf(
		"Password must be at least %d characters and contain an uppercase letter, a lowercase letter, and a number", minLen)
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return value, message
		}
		if utf8.RuneCountInString(s) < minLen {
			return s, message
		}
		if !lowerRE.MatchString(s) || !upperRE.MatchString(s) || !digitRE.MatchString(s) {
			return s, message
		}
		return s, ""
	}
}

// Phone checks a simple international number form: optional +, then 7 to 20
// digits, spaces, dashes, or parentheses.
func Phone(message string) Check {
	return func(value any) (any, string) {
		s, ok := value.(string)
		if !ok {
			return value, message
		}
		s = strings.TrimSpace(s)
		if !phoneRE.MatchString(s) {
			return s, message
		}
		return s, ""
	}
}
