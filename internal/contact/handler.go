package contact

import (
	"net/http"

	sharedError "github.com/changhyeonkim/member-directory/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/member-directory/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *ContactService
}

func NewContactHandler(contactService *ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var request ContactRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.contactService.Submit(c.Request.Context(), c.Param("memberId"), &request)
	if err != nil {
		handler.RespondDomainError(c, err, sharedError.InternalServerError)
		return
	}

	c.JSON(http.StatusOK, response)
}
