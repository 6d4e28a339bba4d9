package application

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/consult-go/internal/config"
	"github.com/linskybing/consult-go/internal/domain/caseref"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoomFixture(t *testing.T) (*RoomService, *matchingFixture) {
	t.Helper()

	oldSecret := config.RoomTokenSecret
	oldURL := config.RoomServiceURL
	config.RoomTokenSecret = "unit-test-room-secret"
	config.RoomServiceURL = "wss://rooms.test"
	t.Cleanup(func() {
		config.RoomTokenSecret = oldSecret
		config.RoomServiceURL = oldURL
	})

	f := newMatchingFixture(caseref.Case{CID: 1, CustomerID: 10})
	repos := f.svc.Repos
	return NewRoomService(repos, f.svc), f
}

func activeTicket(t *testing.T, f *matchingFixture) ticket.Ticket {
	t.Helper()
	f.online(100)
	_, _, err := f.svc.JoinQueue(customerReq(10), 1)
	require.NoError(t, err)
	claimed, err := f.svc.AcceptNext(100)
	require.NoError(t, err)
	return claimed
}

func parseRoomToken(t *testing.T, tokenString string) *RoomClaims {
	t.Helper()
	claims := &RoomClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte(config.RoomTokenSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	return claims
}

func TestIssueAccess_ActiveTicket(t *testing.T) {
	svc, f := setupRoomFixture(t)
	tk := activeTicket(t, f)

	access, err := svc.IssueAccess(customerReq(10), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, "wss://rooms.test", access.Endpoint)
	assert.Equal(t, *tk.RoomName, access.RoomName)

	claims := parseRoomToken(t, access.AccessToken)
	assert.Equal(t, access.RoomName, claims.Room)
	assert.Equal(t, "user-10", claims.Identity)
	assert.True(t, claims.CanPublish)
	assert.True(t, claims.CanSubscribe)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestIssueAccess_AdvisorIdentity(t *testing.T) {
	svc, f := setupRoomFixture(t)
	tk := activeTicket(t, f)

	access, err := svc.IssueAccess(advisorReq(100), tk.ID)
	require.NoError(t, err)

	claims := parseRoomToken(t, access.AccessToken)
	assert.Equal(t, "advisor-100", claims.Identity)
}

func TestIssueAccess_GuestPseudoIdentity(t *testing.T) {
	svc, f := setupRoomFixture(t)

	// A guest joins and the ticket goes active.
	tk, token, err := f.svc.JoinQueue(Requester{}, 1)
	require.NoError(t, err)
	f.online(100)
	_, err = f.svc.AcceptNext(100)
	require.NoError(t, err)

	access, err := svc.IssueAccess(Requester{GuestToken: token}, tk.ID)
	require.NoError(t, err)

	claims := parseRoomToken(t, access.AccessToken)
	// The pseudo-identity leaks at most a 4-char token fragment.
	assert.Contains(t, claims.Identity, "guest-")
	assert.NotContains(t, claims.Identity, token)
}

func TestIssueAccess_WaitingTicketRefused(t *testing.T) {
	svc, f := setupRoomFixture(t)

	tk, _, err := f.svc.JoinQueue(customerReq(10), 1)
	require.NoError(t, err)

	_, err = svc.IssueAccess(customerReq(10), tk.ID)
	assert.ErrorIs(t, err, ErrRoomNotActive)
}

func TestIssueAccess_EndedTicketRefused(t *testing.T) {
	svc, f := setupRoomFixture(t)
	tk := activeTicket(t, f)

	_, err := f.svc.EndOrLeave(advisorReq(100), tk.ID)
	require.NoError(t, err)

	_, err = svc.IssueAccess(customerReq(10), tk.ID)
	assert.ErrorIs(t, err, ErrRoomNotActive)
}

func TestIssueAccess_StrangerForbidden(t *testing.T) {
	svc, f := setupRoomFixture(t)
	tk := activeTicket(t, f)

	_, err := svc.IssueAccess(customerReq(11), tk.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestIssueAccess_TicketNotFound(t *testing.T) {
	svc, _ := setupRoomFixture(t)

	_, err := svc.IssueAccess(customerReq(10), "missing")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestIssueAccess_RepeatedCallsSameRoom(t *testing.T) {
	svc, f := setupRoomFixture(t)
	tk := activeTicket(t, f)

	first, err := svc.IssueAccess(customerReq(10), tk.ID)
	require.NoError(t, err)
	second, err := svc.IssueAccess(customerReq(10), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, first.RoomName, second.RoomName)
}
