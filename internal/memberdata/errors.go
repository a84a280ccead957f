package memberdata

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
)

const (
	invalidMemberData = "INVALID_MEMBER_DATA" // errInfo
)

var (
	ErrInvalidMemberData = sharedError.NewDomainError(invalidMemberData)
)

func init() {
	sharedError.RegisterDomainErrorResponse(invalidMemberData, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "MEMBER-003",
		Message: "Invalid member data: memberid, email (valid string), and memberships (array) are required",
	})
}
