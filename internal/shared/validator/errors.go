package validator

import (
	"errors"
	"fmt"

	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/go-playground/validator/v10"
)

// fieldMessages are the contact form messages shown on the site, keyed by struct field
var fieldMessages = map[string]string{
	"FirstName": "Please enter a valid first name.",
	"LastName":  "Please enter a valid last name.",
	"Message":   "Please enter a valid message.",
	"Phone":     "Please enter a valid US phone number.",
}

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// 첫 번째 validation error만 반환 (사용자 친화적)
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns user-friendly error message for validation error
func getErrorMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.StructField()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Please enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	case "usphone":
		return fieldMessages["Phone"]
	default:
		return fmt.Sprintf("'%s' is invalid.", fe.Field())
	}
}
