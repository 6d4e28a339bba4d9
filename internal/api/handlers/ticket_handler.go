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

type TicketHandler struct {
	svc   *application.MatchingService
	guest *application.GuestService
	repos *repository.Repos
}

func NewTicketHandler(svc *application.MatchingService, guest *application.GuestService, repos *repository.Repos) *TicketHandler {
	return &TicketHandler{svc: svc, guest: guest, repos: repos}
}

func ticketResponse(t ticket.Ticket, guestToken string) response.TicketResponse {
	return response.TicketResponse{
		TicketID:   t.ID,
		CaseID:     t.CaseID,
		Status:     string(t.Status),
		AdvisorID:  t.AdvisorID,
		RoomName:   t.RoomName,
		GuestToken: guestToken,
	}
}

// Join godoc
// @Summary Join the consultation queue for a case
// @Tags queue
// @Accept json
// @Produce json
// @Param input body ticket.JoinQueueInput true "Case to queue on; guest token when resuming a guest ticket"
// @Success 200 {object} response.TicketResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /queue/join [post]
func (h *TicketHandler) Join(c *gin.Context) {
	var input ticket.JoinQueueInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	req := requesterFrom(c, input.GuestToken)
	t, guestToken, err := h.svc.JoinQueue(req, input.CaseID)
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "join_queue", "ticket", t.ID, nil, t, "customer joined queue", h.repos.Audit)
	c.JSON(http.StatusOK, ticketResponse(t, guestToken))
}

// AcceptNext godoc
// @Summary Claim the oldest waiting ticket
// @Tags queue
// @Produce json
// @Success 200 {object} response.TicketResponse
// @Failure 404 {object} response.ErrorResponse "no waiting tickets"
// @Failure 409 {object} response.ErrorResponse "busy, not_online or already_taken"
// @Router /queue/accept-next [post]
func (h *TicketHandler) AcceptNext(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		return
	}

	t, err := h.svc.AcceptNext(claims.UserID)
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "accept_next", "ticket", t.ID, nil, t, "advisor claimed ticket", h.repos.Audit)
	c.JSON(http.StatusOK, ticketResponse(t, ""))
}

// StartAppointment godoc
// @Summary Start or resume the session for a scheduled appointment
// @Tags queue
// @Accept json
// @Produce json
// @Param input body ticket.AppointmentStartInput true "Case of the appointment"
// @Success 200 {object} response.TicketResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /queue/appointment [post]
func (h *TicketHandler) StartAppointment(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		return
	}

	var input ticket.AppointmentStartInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}

	t, err := h.svc.StartFromAppointment(claims.UserID, input.CaseID, claims.IsAdmin())
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "start_appointment", "ticket", t.ID, nil, t, "appointment session started", h.repos.Audit)
	c.JSON(http.StatusOK, ticketResponse(t, ""))
}

// End godoc
// @Summary End an active session or cancel a waiting ticket
// @Tags tickets
// @Accept json
// @Produce json
// @Param id path string true "Ticket id"
// @Param input body ticket.GuestTokenInput false "Guest token for anonymous tickets"
// @Success 200 {object} response.TicketResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id}/end [post]
func (h *TicketHandler) End(c *gin.Context) {
	var input ticket.GuestTokenInput
	_ = c.ShouldBind(&input)

	req := requesterFrom(c, input.GuestToken)
	t, err := h.svc.EndOrLeave(req, c.Param("id"))
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	utils.LogAuditWithConsole(c, "end_or_leave", "ticket", t.ID, nil, t, "ticket closed", h.repos.Audit)
	c.JSON(http.StatusOK, ticketResponse(t, ""))
}

// Leave godoc
// @Summary Leave the queue while still waiting
// @Tags queue
// @Accept json
// @Produce json
// @Param input body ticket.LeaveQueueInput true "Ticket or case to leave"
// @Success 200 {object} response.TicketResponse "cancelled, or the current state when already matched"
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /queue/leave [post]
func (h *TicketHandler) Leave(c *gin.Context) {
	var input ticket.LeaveQueueInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
		return
	}
	if input.TicketID == "" && input.CaseID == 0 {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "ticket_id or case_id required"})
		return
	}

	req := requesterFrom(c, input.GuestToken)
	t, err := h.svc.LeaveQueue(req, input.TicketID, input.CaseID)
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	if t.Status == ticket.StatusCancelled {
		utils.LogAuditWithConsole(c, "leave_queue", "ticket", t.ID, nil, t, "customer left queue", h.repos.Audit)
	}
	c.JSON(http.StatusOK, ticketResponse(t, ""))
}

// Get godoc
// @Summary Current ticket state (pull-based reconciliation)
// @Tags tickets
// @Produce json
// @Param id path string true "Ticket id"
// @Param guest_token query string false "Guest token for anonymous tickets"
// @Success 200 {object} response.TicketResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tickets/{id} [get]
func (h *TicketHandler) Get(c *gin.Context) {
	req := requesterFrom(c, c.Query("guest_token"))
	t, err := h.svc.GetTicket(req, c.Param("id"))
	if err != nil {
		writeMatchingError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticketResponse(t, ""))
}
