package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/consult-go/internal/application"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/repository"
	"github.com/linskybing/consult-go/pkg/response"
	"github.com/linskybing/consult-go/pkg/utils"
)

type RoomHandler struct {
	svc   *application.RoomService
	repos *repository.Repos
}

func NewRoomHandler(svc *application.RoomService, repos *repository.Repos) *RoomHandler {
	return &RoomHandler{svc: svc, repos: repos}
}

// Access godoc
// @Summary Issue a scoped room credential for an active ticket
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Param input body ticket.GuestTokenInput false "Guest token for anonymous tickets"
// @Success 200 {object} response.RoomAccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "ticket not active"
// @Failure 502 {object} response.ErrorResponse "room token service failure"
// @Router /tickets/{id}/room-access [post]
func (h *RoomHandler) Access(c *gin.Context) {
	var input ticket.GuestTokenInput
	_ = c.ShouldBind(&input)

	req := requesterFrom(c, input.GuestToken)
	access, err := h.svc.IssueAccess(req, c.Param("id"))
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "room_access", "ticket", c.Param("id"), nil, nil, "room credential issued", h.repos.Audit)
	c.JSON(http.StatusOK, response.RoomAccessResponse{
		Endpoint:    access.Endpoint,
		RoomName:    access.RoomName,
		AccessToken: access.AccessToken,
	})
}
