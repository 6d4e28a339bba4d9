package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/domain/user"
	"github.com/linskybing/consult-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrCaseNotFound   = errors.New("case not found")
	ErrTicketNotFound = errors.New("ticket not found")
	ErrForbidden      = errors.New("not allowed to access this ticket")
	ErrNotOnline      = errors.New("advisor is not online")
	ErrAdvisorBusy    = errors.New("advisor already has an active consultation")
	ErrAlreadyTaken   = errors.New("ticket was claimed by another advisor")
	ErrQueueEmpty     = errors.New("no waiting tickets")
	ErrStateChanged   = errors.New("ticket state changed concurrently")
)

// Requester identifies who is acting on a ticket: an authenticated user
// (customer, advisor or admin) or a guest holding only a bearer token.
type Requester struct {
	UserID     uint
	Role       string
	GuestToken string
}

func (r Requester) IsGuest() bool {
	return r.UserID == 0
}

func (r Requester) IsAdmin() bool {
	return r.Role == string(user.RoleAdmin)
}

// how many waiting tickets a claimer inspects per pass, and how many fresh
// passes it makes before surfacing already_taken
const (
	acceptCandidateLimit = 5
	acceptPasses         = 2
	finishRetries        = 3
)

// MatchingService implements the queue state machine. There is no lock
// around any of these operations: every transition is a conditional write
// at the store and losing a race is handled by re-reading current state.
type MatchingService struct {
	Repos    *repository.Repos
	Guest    *GuestService
	Notifier *Notifier
}

func NewMatchingService(repos *repository.Repos, guest *GuestService, notifier *Notifier) *MatchingService {
	return &MatchingService{
		Repos:    repos,
		Guest:    guest,
		Notifier: notifier,
	}
}

// JoinQueue places the case's customer (or a guest) into the queue. It is
// idempotent per case: when an open ticket already exists it is returned
// instead of creating a second one. For guests the returned token is the
// one bound to the ticket; it is bound at creation time so no ticket is
// ever reachable without a credential.
func (s *MatchingService) JoinQueue(req Requester, caseID uint) (ticket.Ticket, string, error) {
	cs, err := s.Repos.Case.GetCaseByID(caseID)
	if err != nil {
		return ticket.Ticket{}, "", ErrCaseNotFound
	}
	if !req.IsGuest() && !req.IsAdmin() && req.UserID != cs.CustomerID {
		return ticket.Ticket{}, "", ErrForbidden
	}

	existing, err := s.Repos.Ticket.FindOpenByCase(caseID)
	if err == nil {
		return s.resumeTicket(req, existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Ticket{}, "", err
	}

	t := ticket.Ticket{
		ID:     uuid.NewString(),
		CaseID: caseID,
		Status: ticket.StatusWaiting,
	}
	var guestToken string
	if req.IsGuest() {
		guestToken, err = s.Guest.NewToken()
		if err != nil {
			return ticket.Ticket{}, "", err
		}
		t.GuestToken = &guestToken
	} else {
		customerID := cs.CustomerID
		t.CustomerID = &customerID
	}

	if err := s.Repos.Ticket.Create(&t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the insert race: another join created the open ticket.
			// Treat this insert as a no-op and return the winner.
			winner, rerr := s.Repos.Ticket.FindOpenByCase(caseID)
			if rerr != nil {
				return ticket.Ticket{}, "", rerr
			}
			return s.resumeTicket(req, winner)
		}
		return ticket.Ticket{}, "", err
	}

	s.publish(t)
	return t, guestToken, nil
}

// resumeTicket re-checks access on an existing open ticket and, for guests,
// hands back the bound token when they proved ownership of it.
func (s *MatchingService) resumeTicket(req Requester, t ticket.Ticket) (ticket.Ticket, string, error) {
	if err := s.authorize(req, t); err != nil {
		return ticket.Ticket{}, "", err
	}
	if req.IsGuest() {
		return t, req.GuestToken, nil
	}
	return t, "", nil
}

// AcceptNext claims the single oldest waiting ticket system-wide for the
// advisor. Candidates are walked oldest-first; each claim is a conditional
// write, so racing advisors settle on exactly one winner per ticket. A
// claimer that loses every candidate on a fresh pass reports already_taken;
// an empty queue reports unavailable.
func (s *MatchingService) AcceptNext(advisorID uint) (ticket.Ticket, error) {
	p, err := s.Repos.Presence.Get(advisorID)
	if err != nil || !p.IsOnline {
		return ticket.Ticket{}, ErrNotOnline
	}
	active, err := s.Repos.Ticket.CountActiveByAdvisor(advisorID)
	if err != nil {
		return ticket.Ticket{}, err
	}
	if active > 0 {
		return ticket.Ticket{}, ErrAdvisorBusy
	}

	for pass := 0; pass < acceptPasses; pass++ {
		candidates, err := s.Repos.Ticket.ListOldestWaiting(acceptCandidateLimit)
		if err != nil {
			return ticket.Ticket{}, err
		}
		if len(candidates) == 0 {
			return ticket.Ticket{}, ErrQueueEmpty
		}

		for _, cand := range candidates {
			claimed, err := s.claim(cand, advisorID, true)
			if err != nil {
				return ticket.Ticket{}, err
			}
			if claimed != nil {
				return *claimed, nil
			}
		}
	}
	return ticket.Ticket{}, ErrAlreadyTaken
}

// claim performs the guarded waiting -> active transition plus its side
// effects. Returns nil without error when the conditional write lost.
func (s *MatchingService) claim(cand ticket.Ticket, advisorID uint, guardBusy bool) (*ticket.Ticket, error) {
	room := newRoomName()
	if cand.RoomName != nil {
		room = *cand.RoomName
	}

	ok, err := s.Repos.Ticket.Claim(cand.ID, advisorID, room, time.Now().UTC(), guardBusy)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	// Retried joins may have piled up duplicate waiting tickets on the
	// case; exactly one survives into active.
	if err := s.Repos.Ticket.CancelSiblingWaiting(cand.CaseID, cand.ID, time.Now().UTC()); err != nil {
		return nil, err
	}

	claimed, err := s.Repos.Ticket.GetByID(cand.ID)
	if err != nil {
		return nil, err
	}
	s.publish(claimed)
	return &claimed, nil
}

// StartFromAppointment starts (or resumes) the session for a scheduled
// appointment on a specific case. Resolution order: running session wins,
// then a waiting ticket is claimed, then a fresh ticket is created directly
// in active with the advisor pre-assigned.
func (s *MatchingService) StartFromAppointment(advisorID uint, caseID uint, isAdmin bool) (ticket.Ticket, error) {
	cs, err := s.Repos.Case.GetCaseByID(caseID)
	if err != nil {
		return ticket.Ticket{}, ErrCaseNotFound
	}

	existing, err := s.Repos.Ticket.FindOpenByCase(caseID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ticket.Ticket{}, err
	}

	if err == nil && existing.Status == ticket.StatusActive {
		// Idempotent restart of a session that is already running.
		return existing, nil
	}

	if !isAdmin {
		active, err := s.Repos.Ticket.CountActiveByAdvisor(advisorID)
		if err != nil {
			return ticket.Ticket{}, err
		}
		if active > 0 {
			return ticket.Ticket{}, ErrAdvisorBusy
		}
	}

	var started ticket.Ticket
	if err == nil {
		// A waiting ticket exists for this case: claim that specific one.
		claimed, cerr := s.claim(existing, advisorID, !isAdmin)
		if cerr != nil {
			return ticket.Ticket{}, cerr
		}
		if claimed == nil {
			// Lost the race. One re-read resolves it: the winner either
			// activated this case's ticket (idempotent success) or the
			// ticket is gone from the open set.
			current, rerr := s.Repos.Ticket.FindOpenByCase(caseID)
			if rerr == nil && current.Status == ticket.StatusActive {
				return current, nil
			}
			return ticket.Ticket{}, ErrAlreadyTaken
		}
		started = *claimed
	} else {
		now := time.Now().UTC()
		room := newRoomName()
		customerID := cs.CustomerID
		started = ticket.Ticket{
			ID:         uuid.NewString(),
			CaseID:     caseID,
			CustomerID: &customerID,
			AdvisorID:  &advisorID,
			Status:     ticket.StatusActive,
			RoomName:   &room,
			AcceptedAt: &now,
		}
		if cerr := s.Repos.Ticket.Create(&started); cerr != nil {
			if errors.Is(cerr, gorm.ErrDuplicatedKey) {
				current, rerr := s.Repos.Ticket.FindOpenByCase(caseID)
				if rerr == nil && current.Status == ticket.StatusActive {
					return current, nil
				}
				return ticket.Ticket{}, ErrAlreadyTaken
			}
			return ticket.Ticket{}, cerr
		}
		s.publish(started)
	}

	if cs.AssignedAdvisorID == nil || *cs.AssignedAdvisorID != advisorID {
		if err := s.Repos.Case.SetAssignedAdvisor(caseID, advisorID); err != nil {
			return ticket.Ticket{}, err
		}
	}
	return started, nil
}

// EndOrLeave is the terminal transition: waiting becomes cancelled, active
// becomes ended. Ending an already-terminal ticket is a no-op success. When
// the guarded update loses a race the current state is re-read and the
// transition retried against it rather than surfacing an error.
func (s *MatchingService) EndOrLeave(req Requester, ticketID string) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	if err := s.authorize(req, t); err != nil {
		return ticket.Ticket{}, err
	}

	for i := 0; i < finishRetries; i++ {
		if t.IsTerminal() {
			return t, nil
		}

		target := ticket.StatusEnded
		if t.Status == ticket.StatusWaiting {
			target = ticket.StatusCancelled
		}

		ok, err := s.Repos.Ticket.Finish(t.ID, t.Status, target, time.Now().UTC())
		if err != nil {
			return ticket.Ticket{}, err
		}
		t, err = s.Repos.Ticket.GetByID(ticketID)
		if err != nil {
			return ticket.Ticket{}, err
		}
		if ok {
			s.publish(t)
			return t, nil
		}
	}
	return ticket.Ticket{}, ErrStateChanged
}

// LeaveQueue cancels a waiting ticket only. If the customer was matched
// concurrently the now-active session must not be torn down retroactively:
// the call degrades to a no-op and the caller learns the active state from
// the returned ticket (or the status stream).
func (s *MatchingService) LeaveQueue(req Requester, ticketID string, caseID uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	var err error
	if ticketID != "" {
		t, err = s.Repos.Ticket.GetByID(ticketID)
	} else {
		t, err = s.Repos.Ticket.FindOpenByCase(caseID)
	}
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	if err := s.authorize(req, t); err != nil {
		return ticket.Ticket{}, err
	}

	if t.Status == ticket.StatusWaiting {
		ok, err := s.Repos.Ticket.Finish(t.ID, ticket.StatusWaiting, ticket.StatusCancelled, time.Now().UTC())
		if err != nil {
			return ticket.Ticket{}, err
		}
		t, err = s.Repos.Ticket.GetByID(t.ID)
		if err != nil {
			return ticket.Ticket{}, err
		}
		if ok {
			s.publish(t)
		}
	}
	return t, nil
}

// GetTicket is the pull-based reconciliation path for subscribers.
func (s *MatchingService) GetTicket(req Requester, ticketID string) (ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return ticket.Ticket{}, ErrTicketNotFound
	}
	if err := s.authorize(req, t); err != nil {
		return ticket.Ticket{}, err
	}
	return t, nil
}

// authorize applies the shared access rule: the ticket's customer, its
// assigned advisor, a guest presenting the bound token, or an admin.
func (s *MatchingService) authorize(req Requester, t ticket.Ticket) error {
	if req.IsAdmin() {
		return nil
	}
	if !req.IsGuest() {
		if t.CustomerID != nil && *t.CustomerID == req.UserID {
			return nil
		}
		if t.AdvisorID != nil && *t.AdvisorID == req.UserID {
			return nil
		}
		return ErrForbidden
	}
	if s.Guest.Validate(t, req.GuestToken) {
		return nil
	}
	return ErrForbidden
}

func (s *MatchingService) publish(t ticket.Ticket) {
	room := ""
	if t.RoomName != nil {
		room = *t.RoomName
	}
	s.Notifier.Publish(ticket.StatusEvent{
		TicketID:  t.ID,
		Status:    t.Status,
		AdvisorID: t.AdvisorID,
		RoomName:  room,
	})
}

func newRoomName() string {
	return "room-" + uuid.NewString()
}
