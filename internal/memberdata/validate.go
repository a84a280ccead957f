package memberdata

import (
	"context"
	"strings"

	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/logger"
)

// ValidateCoreMemberData reports whether input carries a member id, a non-blank
// email and at least one membership. Only the first failing check is logged.
func ValidateCoreMemberData(ctx context.Context, input *RawMemberInput) bool {
	log := logger.FromContext(ctx)

	if input == nil || input.MemberID == "" {
		log.Warn("필수 필드 누락 - memberid is mandatory", "field", "memberid")
		return false
	}

	if strings.TrimSpace(input.Email) == "" {
		log.Warn("필수 필드 누락 - email (valid string) is mandatory",
			"field", "email", "memberId", input.MemberID)
		return false
	}

	if len(input.Memberships) == 0 {
		log.Warn("필수 필드 누락 - memberships (non-empty array) is mandatory",
			"field", "memberships", "memberId", input.MemberID)
		return false
	}

	return true
}
