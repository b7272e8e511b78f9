package validation

import (
	"strconv"
	"strings"
	"unicode"

	playground "github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pizza-backend/internal/models"
)

// defaultMessage mirrors the generic failure text used when a check
// carries no custom message.
const defaultMessage = "Invalid value"

var formats = playground.New()

// WithMessage replaces the failure message of a check.
func WithMessage(check Check, message string) Check {
	return func(v Value) (string, bool) {
		if _, ok := check(v); !ok {
			return message, false
		}
		return "", true
	}
}

// Exists requires the field to be present.
func Exists() Check {
	return func(v Value) (string, bool) {
		return defaultMessage, v.Present
	}
}

// NotEmpty requires a string that is non-empty after trimming.
func NotEmpty() Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		return defaultMessage, v.Present && ok && strings.TrimSpace(s) != ""
	}
}

// IsString requires a string value.
func IsString() Check {
	return func(v Value) (string, bool) {
		_, ok := v.String()
		return defaultMessage, v.Present && ok
	}
}

// IsNumeric accepts JSON numbers and numeric strings (route parameters
// arrive as strings).
func IsNumeric() Check {
	return func(v Value) (string, bool) {
		if !v.Present {
			return defaultMessage, false
		}
		switch raw := v.Raw.(type) {
		case float64:
			return "", true
		case string:
			_, err := strconv.ParseFloat(raw, 64)
			return defaultMessage, err == nil
		}
		return defaultMessage, false
	}
}

// IsEmail requires valid email syntax.
func IsEmail() Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok {
			return defaultMessage, false
		}
		return defaultMessage, formats.Var(s, "email") == nil
	}
}

// IsObjectID requires a well-formed store identifier. Format is checked
// here, before any lookup; whether the entity exists is the handler's
// concern.
func IsObjectID() Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok {
			return "Invalid ObjectId", false
		}
		_, err := primitive.ObjectIDFromHex(s)
		return "Invalid ObjectId", err == nil
	}
}

// IsObjectIDArray requires a non-empty array whose every element is a
// well-formed store identifier.
func IsObjectIDArray() Check {
	return func(v Value) (string, bool) {
		if !v.Present {
			return defaultMessage, false
		}
		items, ok := v.Raw.([]interface{})
		if !ok || len(items) == 0 {
			return defaultMessage, false
		}
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				return "Invalid ObjectId", false
			}
			if _, err := primitive.ObjectIDFromHex(s); err != nil {
				return "Invalid ObjectId", false
			}
		}
		return "", true
	}
}

// IsPizzaStatus requires membership in the status enumeration.
func IsPizzaStatus() Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok {
			return defaultMessage, false
		}
		return defaultMessage, models.PizzaStatus(s).Valid()
	}
}

// MaxLen caps the length of a string value.
func MaxLen(max int) Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok {
			return defaultMessage, false
		}
		return defaultMessage, len(s) <= max
	}
}

// LenBetween bounds the length of a string value.
func LenBetween(min, max int) Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok {
			return defaultMessage, false
		}
		return defaultMessage, len(s) >= min && len(s) <= max
	}
}

// IsAlphanumeric requires letters and digits only.
func IsAlphanumeric() Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok || s == "" {
			return defaultMessage, false
		}
		for _, r := range s {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return defaultMessage, false
			}
		}
		return "", true
	}
}

// IsStrongPassword requires at least eight characters with a lowercase
// letter, an uppercase letter, a digit, and a symbol.
func IsStrongPassword() Check {
	return func(v Value) (string, bool) {
		s, ok := v.String()
		if !v.Present || !ok || len(s) < 8 {
			return defaultMessage, false
		}
		var lower, upper, digit, symbol bool
		for _, r := range s {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			default:
				symbol = true
			}
		}
		return defaultMessage, lower && upper && digit && symbol
	}
}
