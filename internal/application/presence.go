package application

import (
	"errors"
	"time"

	"github.com/linskybing/consult-go/internal/domain/advisor"
	"github.com/linskybing/consult-go/internal/repository"
	"gorm.io/gorm"
)

// PresenceService tracks the advisor-controlled online flag and derives
// busy/available from live ticket data. The matching engine never writes
// presence; going offline mid-session leaves the active ticket untouched.
type PresenceService struct {
	Repos *repository.Repos
}

func NewPresenceService(repos *repository.Repos) *PresenceService {
	return &PresenceService{
		Repos: repos,
	}
}

func (s *PresenceService) SetOnline(advisorID uint, online bool) (advisor.Presence, error) {
	return s.Repos.Presence.SetOnline(advisorID, online, time.Now().UTC())
}

func (s *PresenceService) IsBusy(advisorID uint) (bool, error) {
	n, err := s.Repos.Ticket.CountActiveByAdvisor(advisorID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *PresenceService) IsAvailable(advisorID uint) (bool, error) {
	p, err := s.Repos.Presence.Get(advisorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if !p.IsOnline {
		return false, nil
	}
	busy, err := s.IsBusy(advisorID)
	if err != nil {
		return false, err
	}
	return !busy, nil
}

// Availability bundles the derived flags for the probe endpoint.
func (s *PresenceService) Availability(advisorID uint) (online, busy bool, err error) {
	p, err := s.Repos.Presence.Get(advisorID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false, err
	}
	busy, berr := s.IsBusy(advisorID)
	if berr != nil {
		return false, false, berr
	}
	return p.IsOnline, busy, nil
}
