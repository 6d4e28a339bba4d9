package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/consult-go/internal/application"
	"github.com/linskybing/consult-go/internal/domain/advisor"
	"github.com/linskybing/consult-go/internal/repository"
	"github.com/linskybing/consult-go/pkg/response"
	"github.com/linskybing/consult-go/pkg/utils"
)

type PresenceHandler struct {
	svc   *application.PresenceService
	repos *repository.Repos
}

func NewPresenceHandler(svc *application.PresenceService, repos *repository.Repos) *PresenceHandler {
	return &PresenceHandler{svc: svc, repos: repos}
}

// SetOnline godoc
// @Summary Set the advisor's own online flag
// @Tags presence
// @Accept json
// @Produce json
// @Param input body advisor.SetOnlineInput true "Online flag"
// @Success 200 {object} advisor.Presence
// @Router /presence [put]
func (h *PresenceHandler) SetOnline(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		return
	}

	var input advisor.SetOnlineInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	p, err := h.svc.SetOnline(claims.UserID, *input.Online)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	utils.LogAuditWithConsole(c, "set_online", "presence", strconv.FormatUint(uint64(claims.UserID), 10), nil, p, "advisor presence changed", h.repos.Audit)
	c.JSON(http.StatusOK, p)
}

// Availability godoc
// @Summary Availability probe for one advisor
// @Tags presence
// @Produce json
// @Param id path int true "Advisor id"
// @Success 200 {object} response.AvailabilityResponse
// @Router /presence/{id} [get]
func (h *PresenceHandler) Availability(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid advisor id"})
		return
	}
	advisorID := uint(id64)

	online, busy, err := h.svc.Availability(advisorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response.AvailabilityResponse{
		AdvisorID: advisorID,
		Online:    online,
		Busy:      busy,
		Available: online && !busy,
	})
}
