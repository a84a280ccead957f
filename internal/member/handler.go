package member

import (
	"net/http"
	"strings"

	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
	syncService   *SyncService
}

func NewMemberHandler(memberService *MemberService, syncService *SyncService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		syncService:   syncService,
	}
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID := strings.TrimSpace(c.Param("memberId"))
	if memberID == "" {
		handler.RespondError(c, ErrMemberNotFound, sharedError.InvalidRequest)
		return
	}

	record, err := h.memberService.GetMember(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondDomainError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (h *MemberHandler) SyncPage(c *gin.Context) {
	var request SyncPageRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.syncService.SyncPage(c.Request.Context(), &request)
	if err != nil {
		handler.RespondDomainError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
