package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	// usPhoneRegex matches US numbers with an optional +1 country code
	// Formats: 555-123-4567, (555) 123-4567, +1 555.123.4567, 5551234567
	usPhoneRegex = regexp.MustCompile(`^(\+?1[\s.-]?)?(\([2-9][0-9]{2}\)|[2-9][0-9]{2})[\s.-]?[2-9][0-9]{2}[\s.-]?[0-9]{4}$`)
)

// ValidateUSPhone validates a US phone number
func ValidateUSPhone(fl validator.FieldLevel) bool {
	return usPhoneRegex.MatchString(fl.Field().String())
}
