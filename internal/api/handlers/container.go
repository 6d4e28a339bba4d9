package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/consult-go/internal/application"
	"github.com/linskybing/consult-go/internal/repository"
)

type Handlers struct {
	User     *UserHandler
	Ticket   *TicketHandler
	Presence *PresenceHandler
	Room     *RoomHandler
	Audit    *AuditHandler
	Status   *StatusHandler
	Router   *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		User:     NewUserHandler(svc.User),
		Ticket:   NewTicketHandler(svc.Matching, svc.Guest, repos),
		Presence: NewPresenceHandler(svc.Presence, repos),
		Room:     NewRoomHandler(svc.Room, repos),
		Audit:    NewAuditHandler(svc.Audit),
		Status:   NewStatusHandler(svc.Matching, svc.Notifier),
		Router:   router,
	}
	return h
}
