package application

import (
	"sort"
	"sync"
	"time"

	"github.com/linskybing/consult-go/internal/domain/advisor"
	"github.com/linskybing/consult-go/internal/domain/caseref"
	"github.com/linskybing/consult-go/internal/domain/ticket"
	"github.com/linskybing/consult-go/internal/repository"
	"gorm.io/gorm"
)

// memTicketRepo is an in-memory ticket store that keeps the same
// conditional-write contracts as the SQL implementation: guarded updates
// report whether they matched, the open-ticket-per-case rule surfaces as
// gorm.ErrDuplicatedKey, and everything is safe under concurrent callers.
type memTicketRepo struct {
	mu   sync.Mutex
	seq  int
	rows map[string]*ticket.Ticket
}

func newMemTicketRepo() *memTicketRepo {
	return &memTicketRepo{rows: make(map[string]*ticket.Ticket)}
}

func (r *memTicketRepo) Create(t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.Status == ticket.StatusWaiting || t.Status == ticket.StatusActive {
		for _, row := range r.rows {
			if row.CaseID == t.CaseID &&
				(row.Status == ticket.StatusWaiting || row.Status == ticket.StatusActive) {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	r.seq++
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Unix(0, int64(r.seq)*int64(time.Millisecond))
	}
	cp := *t
	r.rows[t.ID] = &cp
	return nil
}

func (r *memTicketRepo) GetByID(id string) (ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return ticket.Ticket{}, gorm.ErrRecordNotFound
	}
	return *row, nil
}

func (r *memTicketRepo) FindOpenByCase(caseID uint) (ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var open []*ticket.Ticket
	for _, row := range r.rows {
		if row.CaseID == caseID &&
			(row.Status == ticket.StatusWaiting || row.Status == ticket.StatusActive) {
			open = append(open, row)
		}
	}
	if len(open) == 0 {
		return ticket.Ticket{}, gorm.ErrRecordNotFound
	}
	sort.Slice(open, func(i, j int) bool {
		if (open[i].Status == ticket.StatusActive) != (open[j].Status == ticket.StatusActive) {
			return open[i].Status == ticket.StatusActive
		}
		return open[i].CreatedAt.Before(open[j].CreatedAt)
	})
	return *open[0], nil
}

func (r *memTicketRepo) ListOldestWaiting(limit int) ([]ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var waiting []*ticket.Ticket
	for _, row := range r.rows {
		if row.Status == ticket.StatusWaiting {
			waiting = append(waiting, row)
		}
	}
	sort.Slice(waiting, func(i, j int) bool {
		if !waiting[i].CreatedAt.Equal(waiting[j].CreatedAt) {
			return waiting[i].CreatedAt.Before(waiting[j].CreatedAt)
		}
		return waiting[i].ID < waiting[j].ID
	})
	out := make([]ticket.Ticket, 0, limit)
	for _, row := range waiting {
		if len(out) == limit {
			break
		}
		out = append(out, *row)
	}
	return out, nil
}

func (r *memTicketRepo) CountActiveByAdvisor(advisorID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countActiveLocked(advisorID), nil
}

func (r *memTicketRepo) countActiveLocked(advisorID uint) int64 {
	var n int64
	for _, row := range r.rows {
		if row.Status == ticket.StatusActive && row.AdvisorID != nil && *row.AdvisorID == advisorID {
			n++
		}
	}
	return n
}

func (r *memTicketRepo) Claim(id string, advisorID uint, roomName string, at time.Time, guardBusy bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.Status != ticket.StatusWaiting {
		return false, nil
	}
	if guardBusy && r.countActiveLocked(advisorID) > 0 {
		return false, nil
	}
	row.Status = ticket.StatusActive
	row.AdvisorID = &advisorID
	acceptedAt := at
	row.AcceptedAt = &acceptedAt
	if row.RoomName == nil {
		room := roomName
		row.RoomName = &room
	}
	return true, nil
}

func (r *memTicketRepo) Finish(id string, from, to ticket.Status, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.Status != from {
		return false, nil
	}
	row.Status = to
	endedAt := at
	row.EndedAt = &endedAt
	return true, nil
}

func (r *memTicketRepo) CancelSiblingWaiting(caseID uint, keepID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.CaseID == caseID && row.Status == ticket.StatusWaiting && row.ID != keepID {
			row.Status = ticket.StatusCancelled
			endedAt := at
			row.EndedAt = &endedAt
		}
	}
	return nil
}

func (r *memTicketRepo) SetGuestToken(id, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.GuestToken != nil {
		return false, nil
	}
	tok := token
	row.GuestToken = &tok
	return true, nil
}

func (r *memTicketRepo) SetRoomName(id, roomName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.RoomName != nil {
		return false, nil
	}
	room := roomName
	row.RoomName = &room
	return true, nil
}

func (r *memTicketRepo) WithTx(tx *gorm.DB) repository.TicketRepo { return r }

type memCaseRepo struct {
	mu    sync.Mutex
	cases map[uint]caseref.Case
}

func newMemCaseRepo(cases ...caseref.Case) *memCaseRepo {
	r := &memCaseRepo{cases: make(map[uint]caseref.Case)}
	for _, c := range cases {
		r.cases[c.CID] = c
	}
	return r
}

func (r *memCaseRepo) GetCaseByID(id uint) (caseref.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok {
		return caseref.Case{}, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *memCaseRepo) SetAssignedAdvisor(id, advisorID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cases[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.AssignedAdvisorID = &advisorID
	r.cases[id] = c
	return nil
}

func (r *memCaseRepo) WithTx(tx *gorm.DB) repository.CaseRepo { return r }

type memPresenceRepo struct {
	mu   sync.Mutex
	rows map[uint]advisor.Presence
}

func newMemPresenceRepo() *memPresenceRepo {
	return &memPresenceRepo{rows: make(map[uint]advisor.Presence)}
}

func (r *memPresenceRepo) Get(advisorID uint) (advisor.Presence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.rows[advisorID]
	if !ok {
		return advisor.Presence{}, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *memPresenceRepo) SetOnline(advisorID uint, online bool, at time.Time) (advisor.Presence, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.rows[advisorID]
	p.AdvisorID = advisorID
	if online && !p.IsOnline {
		since := at
		p.OnlineSince = &since
	}
	p.IsOnline = online
	p.UpdatedAt = at
	r.rows[advisorID] = p
	return p, nil
}

func (r *memPresenceRepo) WithTx(tx *gorm.DB) repository.PresenceRepo { return r }

// matchingFixture wires the services against the in-memory repos.
type matchingFixture struct {
	tickets  *memTicketRepo
	cases    *memCaseRepo
	presence *memPresenceRepo
	svc      *MatchingService
	guest    *GuestService
	notifier *Notifier
}

func newMatchingFixture(cases ...caseref.Case) *matchingFixture {
	f := &matchingFixture{
		tickets:  newMemTicketRepo(),
		cases:    newMemCaseRepo(cases...),
		presence: newMemPresenceRepo(),
		notifier: NewNotifier(),
	}
	repos := &repository.Repos{
		Ticket:   f.tickets,
		Case:     f.cases,
		Presence: f.presence,
	}
	f.guest = NewGuestService(repos)
	f.svc = NewMatchingService(repos, f.guest, f.notifier)
	return f
}

func (f *matchingFixture) online(advisorID uint) {
	_, _ = f.presence.SetOnline(advisorID, true, time.Now().UTC())
}
