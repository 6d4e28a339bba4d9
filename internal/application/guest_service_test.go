package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/repository"
	"github.com/linskybing/consult-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGuestServiceMocks(t *testing.T) (*GuestService, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Ticket: mockTicket,
	}
	return NewGuestService(repos), mockTicket
}

func TestNewToken_HighEntropy(t *testing.T) {
	svc, _ := setupGuestServiceMocks(t)

	a, err := svc.NewToken()
	require.NoError(t, err)
	b, err := svc.NewToken()
	require.NoError(t, err)

	assert.Len(t, a, defaultGuestTokenLen)
	assert.NotEqual(t, a, b)
}

func TestIssue_AlreadyBoundReturnsExisting(t *testing.T) {
	svc, _ := setupGuestServiceMocks(t)

	bound := "existing-token"
	tk := ticket.Ticket{ID: "t1", GuestToken: &bound}

	got, err := svc.Issue(tk)
	require.NoError(t, err)
	assert.Equal(t, bound, got)
}

func TestIssue_BindsWhenUnset(t *testing.T) {
	svc, mockTicket := setupGuestServiceMocks(t)

	mockTicket.EXPECT().SetGuestToken("t1", gomock.Any()).Return(true, nil)

	got, err := svc.Issue(ticket.Ticket{ID: "t1"})
	require.NoError(t, err)
	assert.Len(t, got, defaultGuestTokenLen)
}

func TestIssue_LostRaceReturnsWinner(t *testing.T) {
	svc, mockTicket := setupGuestServiceMocks(t)

	winner := "winner-token"
	mockTicket.EXPECT().SetGuestToken("t1", gomock.Any()).Return(false, nil)
	mockTicket.EXPECT().GetByID("t1").Return(ticket.Ticket{ID: "t1", GuestToken: &winner}, nil)

	got, err := svc.Issue(ticket.Ticket{ID: "t1"})
	require.NoError(t, err)
	assert.Equal(t, winner, got)
}

func TestValidate(t *testing.T) {
	svc, _ := setupGuestServiceMocks(t)

	bound := "the-token"
	tk := ticket.Ticket{ID: "t1", GuestToken: &bound}

	assert.True(t, svc.Validate(tk, "the-token"))
	assert.False(t, svc.Validate(tk, "other"))
	assert.False(t, svc.Validate(tk, ""))
	assert.False(t, svc.Validate(ticket.Ticket{ID: "t2"}, "the-token"))
}

func TestConcurrentIssue_AllSeeSameToken(t *testing.T) {
	// Against the CAS-faithful in-memory repo, concurrent issuers must all
	// converge on whichever token was bound first.
	tickets := newMemTicketRepo()
	repos := &repository.Repos{Ticket: tickets}
	svc := NewGuestService(repos)

	require.NoError(t, tickets.Create(&ticket.Ticket{ID: "t1", CaseID: 1, Status: ticket.StatusWaiting}))

	const n = 16
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() {
			tk, _ := tickets.GetByID("t1")
			token, err := svc.Issue(tk)
			assert.NoError(t, err)
			results <- token
		}()
	}

	first := <-results
	for i := 1; i < n; i++ {
		assert.Equal(t, first, <-results)
	}
}
