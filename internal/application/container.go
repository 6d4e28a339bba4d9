package application

import (
	"github.com/linskybing/consult-go/internal/repository"
)

type Services struct {
	User     *UserService
	Guest    *GuestService
	Matching *MatchingService
	Presence *PresenceService
	Room     *RoomService
	Audit    *AuditService
	Notifier *Notifier
}

func New(repos *repository.Repos) *Services {
	notifier := NewNotifier()
	guest := NewGuestService(repos)
	matching := NewMatchingService(repos, guest, notifier)
	return &Services{
		User:     NewUserService(repos),
		Guest:    guest,
		Matching: matching,
		Presence: NewPresenceService(repos),
		Room:     NewRoomService(repos, matching),
		Audit:    NewAuditService(repos),
		Notifier: notifier,
	}
}
