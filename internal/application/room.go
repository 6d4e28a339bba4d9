package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/linskybing/consult-go/internal/config"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/repository"
)

// ErrRoomUpstream marks failures of the room credential step so the UI can
// retry the room step alone without re-running matching.
var ErrRoomUpstream = errors.New("room token service failure")

var ErrRoomNotActive = errors.New("ticket is not in an active session")

// RoomClaims is the scoped grant embedded in a room access token: one room,
// one identity, publish/subscribe rights, short TTL.
type RoomClaims struct {
	Room         string `json:"room"`
	Identity     string `json:"identity"`
	CanPublish   bool   `json:"can_publish"`
	CanSubscribe bool   `json:"can_subscribe"`
	jwt.RegisteredClaims
}

type RoomAccess struct {
	Endpoint    string
	RoomName    string
	AccessToken string
}

// RoomService brokers access to the external real-time room. It never talks
// to the room transport itself; it only mints credentials scoped to the
// ticket's room once the ticket is active.
type RoomService struct {
	Repos    *repository.Repos
	Matching *MatchingService
}

func NewRoomService(repos *repository.Repos, matching *MatchingService) *RoomService {
	return &RoomService{
		Repos:    repos,
		Matching: matching,
	}
}

// IssueAccess mints a short-lived room credential for an authorized party
// on an active ticket, assigning the room name first-write-wins if a
// previous step somehow left it unset.
func (s *RoomService) IssueAccess(req Requester, ticketID string) (RoomAccess, error) {
	t, err := s.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return RoomAccess{}, ErrTicketNotFound
	}
	if err := s.Matching.authorize(req, t); err != nil {
		return RoomAccess{}, err
	}
	if t.Status != ticket.StatusActive {
		return RoomAccess{}, ErrRoomNotActive
	}

	room, err := s.ensureRoomName(t)
	if err != nil {
		return RoomAccess{}, err
	}

	token, err := s.mintToken(room, identityFor(req, t))
	if err != nil {
		return RoomAccess{}, fmt.Errorf("%w: %v", ErrRoomUpstream, err)
	}

	return RoomAccess{
		Endpoint:    config.RoomServiceURL,
		RoomName:    room,
		AccessToken: token,
	}, nil
}

func (s *RoomService) ensureRoomName(t ticket.Ticket) (string, error) {
	if t.RoomName != nil {
		return *t.RoomName, nil
	}
	room := "room-" + uuid.NewString()
	ok, err := s.Repos.Ticket.SetRoomName(t.ID, room)
	if err != nil {
		return "", err
	}
	if ok {
		return room, nil
	}
	current, err := s.Repos.Ticket.GetByID(t.ID)
	if err != nil || current.RoomName == nil {
		return "", ErrTicketNotFound
	}
	return *current.RoomName, nil
}

func (s *RoomService) mintToken(room, identity string) (string, error) {
	ttl := time.Duration(config.RoomTokenTTLMin) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	claims := &RoomClaims{
		Room:         room,
		Identity:     identity,
		CanPublish:   true,
		CanSubscribe: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    config.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.RoomTokenSecret))
}

// identityFor derives the in-room identity. Guests get a pseudo-identity
// built from the ticket id and a token fragment; the raw guest token never
// leaves this system.
func identityFor(req Requester, t ticket.Ticket) string {
	if !req.IsGuest() {
		if t.AdvisorID != nil && *t.AdvisorID == req.UserID {
			return fmt.Sprintf("advisor-%d", req.UserID)
		}
		return fmt.Sprintf("user-%d", req.UserID)
	}
	frag := req.GuestToken
	if len(frag) > 4 {
		frag = frag[:4]
	}
	id := t.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("guest-%s-%s", id, frag)
}
