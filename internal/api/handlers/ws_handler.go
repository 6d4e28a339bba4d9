package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/linskybing/consult-go/internal/api/middleware"
	"github.com/linskybing/consult-go/internal/application"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/pkg/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusHandler streams ticket state transitions over a websocket. Push is
// best effort; the handler sends the current state on connect so a
// reconnecting client is consistent before any event arrives.
type StatusHandler struct {
	svc      *application.MatchingService
	notifier *application.Notifier
}

func NewStatusHandler(svc *application.MatchingService, notifier *application.Notifier) *StatusHandler {
	return &StatusHandler{svc: svc, notifier: notifier}
}

// requesterFromQuery authenticates websocket clients. Browsers cannot set
// headers on websocket dials, so the JWT rides in the query string; guests
// present their ticket token the same way.
func requesterFromQuery(c *gin.Context) (application.Requester, bool) {
	guestToken := c.Query("guest_token")
	tokenStr := c.Query("token")
	if tokenStr == "" {
		return application.Requester{GuestToken: guestToken}, true
	}
	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		return application.Requester{}, false
	}
	return application.Requester{
		UserID:     claims.UserID,
		Role:       claims.Role,
		GuestToken: guestToken,
	}, true
}

// Subscribe godoc
// @Summary Stream status events for one ticket
// @Tags tickets
// @Param id path string true "Ticket id"
// @Param token query string false "JWT for authenticated parties"
// @Param guest_token query string false "Guest token for anonymous tickets"
// @Router /ws/tickets/{id}/status [get]
func (h *StatusHandler) Subscribe(c *gin.Context) {
	req, ok := requesterFromQuery(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
		return
	}

	ticketID := c.Param("id")
	current, err := h.svc.GetTicket(req, ticketID)
	if err != nil {
		writeMatchingError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events, unsubscribe := h.notifier.Subscribe(ticketID)
	defer unsubscribe()

	writeChan := make(chan []byte, 16)

	go func() {
		defer conn.Close()
		for {
			select {
			case msg := <-writeChan:
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				msg, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				select {
				case writeChan <- msg:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Current state first so the client reconciles before any push.
	room := ""
	if current.RoomName != nil {
		room = *current.RoomName
	}
	initial, _ := json.Marshal(ticket.StatusEvent{
		TicketID:  current.ID,
		Status:    current.Status,
		AdvisorID: current.AdvisorID,
		RoomName:  room,
	})
	select {
	case writeChan <- initial:
	case <-ctx.Done():
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cancel()
			break
		}
	}
}
