package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/consult-go/internal/application"
	"github.com/linskybing/consult-go/pkg/response"
	"github.com/linskybing/consult-go/pkg/types"
	"github.com/linskybing/consult-go/pkg/utils"
)

// requesterFrom builds the acting identity for guest-capable routes:
// parsed JWT claims when present, otherwise a guest carrying only the
// presented bearer token.
func requesterFrom(c *gin.Context, guestToken string) application.Requester {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		return application.Requester{GuestToken: guestToken}
	}
	return application.Requester{
		UserID:     claims.UserID,
		Role:       claims.Role,
		GuestToken: guestToken,
	}
}

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

// writeMatchingError maps the engine's error taxonomy onto HTTP statuses.
// Conflicts and unavailability are distinguishable so clients retry the
// right step.
func writeMatchingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrCaseNotFound),
		errors.Is(err, application.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrForbidden):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotOnline),
		errors.Is(err, application.ErrAdvisorBusy),
		errors.Is(err, application.ErrAlreadyTaken),
		errors.Is(err, application.ErrStateChanged),
		errors.Is(err, application.ErrRoomNotActive):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrQueueEmpty):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrRoomUpstream):
		c.JSON(http.StatusBadGateway, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
