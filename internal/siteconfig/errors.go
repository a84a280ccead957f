package siteconfig

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
)

const (
	configNotFound = "SITE_CONFIG_NOT_FOUND" // errInfo
)

var (
	ErrConfigNotFound = sharedError.NewDomainError(configNotFound)
)

func init() {
	// a missing site setting is an operator problem, not a client one
	sharedError.RegisterDomainErrorResponse(configNotFound, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "CONFIG-001",
		Message: "An error occurred. Please try again.",
	})
}
