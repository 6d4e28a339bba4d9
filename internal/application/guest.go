package application

import (
	"crypto/subtle"

	"github.com/linskybing/consult-go/internal/config"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/repository"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const defaultGuestTokenLen = 32

// GuestService mints and checks the opaque bearer tokens that let an
// unauthenticated customer resume their own ticket across requests.
type GuestService struct {
	Repos *repository.Repos
}

func NewGuestService(repos *repository.Repos) *GuestService {
	return &GuestService{
		Repos: repos,
	}
}

// NewToken generates a fresh high-entropy token without binding it.
func (s *GuestService) NewToken() (string, error) {
	length := config.GuestTokenLen
	if length <= 0 {
		length = defaultGuestTokenLen
	}
	return gonanoid.New(length)
}

// Issue binds a token to the ticket first-write-wins and returns whichever
// token ends up bound. Concurrent issuers all observe the same winner; a
// token a client has already seen is never overwritten.
func (s *GuestService) Issue(t ticket.Ticket) (string, error) {
	if t.GuestToken != nil {
		return *t.GuestToken, nil
	}

	token, err := s.NewToken()
	if err != nil {
		return "", err
	}

	ok, err := s.Repos.Ticket.SetGuestToken(t.ID, token)
	if err != nil {
		return "", err
	}
	if ok {
		return token, nil
	}

	// Lost the compare-and-set: another issuer bound first. Return theirs.
	current, err := s.Repos.Ticket.GetByID(t.ID)
	if err != nil {
		return "", err
	}
	if current.GuestToken == nil {
		return "", ErrForbidden
	}
	return *current.GuestToken, nil
}

// Validate reports whether the presented token matches the one bound to the
// ticket. A ticket without a bound token never validates.
func (s *GuestService) Validate(t ticket.Ticket, presented string) bool {
	if t.GuestToken == nil || presented == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(*t.GuestToken), []byte(presented)) == 1
}
