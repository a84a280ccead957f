package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	personNameRegex = regexp.MustCompile(`^[a-zA-Z\s'-]{2,}$`)
	messageRegex    = regexp.MustCompile(`^[A-Za-z0-9\s.,!?'"-]{2,}$`)
)

// ValidatePersonName accepts letters, spaces, apostrophes and hyphens (2+ chars).
func ValidatePersonName(fl validator.FieldLevel) bool {
	return personNameRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

// ValidateMessage accepts plain sentences: letters, digits, spaces and basic punctuation.
func ValidateMessage(fl validator.FieldLevel) bool {
	return messageRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}
