package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/consult-go/internal/domain/advisor"
	"github.com/linskybing/consult-go/internal/repository"
	"github.com/linskybing/consult-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupPresenceServiceMocks(t *testing.T) (*PresenceService, *mock.MockPresenceRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockPresence := mock.NewMockPresenceRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Presence: mockPresence,
		Ticket:   mockTicket,
	}
	return NewPresenceService(repos), mockPresence, mockTicket
}

func TestAvailability_OnlineIdle(t *testing.T) {
	svc, mockPresence, mockTicket := setupPresenceServiceMocks(t)

	mockPresence.EXPECT().Get(uint(1)).Return(advisor.Presence{AdvisorID: 1, IsOnline: true}, nil)
	mockTicket.EXPECT().CountActiveByAdvisor(uint(1)).Return(int64(0), nil)

	online, busy, err := svc.Availability(1)
	require.NoError(t, err)
	assert.True(t, online)
	assert.False(t, busy)
}

func TestAvailability_OnlineBusy(t *testing.T) {
	svc, mockPresence, mockTicket := setupPresenceServiceMocks(t)

	mockPresence.EXPECT().Get(uint(1)).Return(advisor.Presence{AdvisorID: 1, IsOnline: true}, nil)
	mockTicket.EXPECT().CountActiveByAdvisor(uint(1)).Return(int64(1), nil)

	online, busy, err := svc.Availability(1)
	require.NoError(t, err)
	assert.True(t, online)
	assert.True(t, busy)
}

func TestAvailability_UnknownAdvisorIsOffline(t *testing.T) {
	svc, mockPresence, mockTicket := setupPresenceServiceMocks(t)

	mockPresence.EXPECT().Get(uint(7)).Return(advisor.Presence{}, gorm.ErrRecordNotFound)
	mockTicket.EXPECT().CountActiveByAdvisor(uint(7)).Return(int64(0), nil)

	online, busy, err := svc.Availability(7)
	require.NoError(t, err)
	assert.False(t, online)
	assert.False(t, busy)
}

func TestIsAvailable_OfflineShortCircuits(t *testing.T) {
	svc, mockPresence, _ := setupPresenceServiceMocks(t)

	mockPresence.EXPECT().Get(uint(1)).Return(advisor.Presence{AdvisorID: 1, IsOnline: false}, nil)

	available, err := svc.IsAvailable(1)
	require.NoError(t, err)
	assert.False(t, available)
}

func TestSetOnline_PassesThrough(t *testing.T) {
	svc, mockPresence, _ := setupPresenceServiceMocks(t)

	mockPresence.EXPECT().SetOnline(uint(1), true, gomock.Any()).
		Return(advisor.Presence{AdvisorID: 1, IsOnline: true}, nil)

	p, err := svc.SetOnline(1, true)
	require.NoError(t, err)
	assert.True(t, p.IsOnline)
}

func TestSetOnline_OfflineKeepsActiveTicketUntouched(t *testing.T) {
	// Presence and ticket state are independent: flipping offline mid
	// session must not cascade into the ticket store.
	f := newMatchingFixture()
	svc := NewPresenceService(&repository.Repos{Presence: f.presence, Ticket: f.tickets})

	_, err := svc.SetOnline(1, true)
	require.NoError(t, err)
	_, err = svc.SetOnline(1, false)
	require.NoError(t, err)

	p, err := f.presence.Get(1)
	require.NoError(t, err)
	assert.False(t, p.IsOnline)
}

func TestMemPresence_OnlineSinceStampedOnEdgeOnly(t *testing.T) {
	repo := newMemPresenceRepo()

	t1 := time.Unix(100, 0)
	p, err := repo.SetOnline(1, true, t1)
	require.NoError(t, err)
	require.NotNil(t, p.OnlineSince)
	assert.Equal(t, t1, *p.OnlineSince)

	// Repeated heartbeat keeps the original timestamp.
	t2 := time.Unix(200, 0)
	p, err = repo.SetOnline(1, true, t2)
	require.NoError(t, err)
	assert.Equal(t, t1, *p.OnlineSince)
}
