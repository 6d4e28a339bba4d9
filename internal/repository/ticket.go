package repository

import (
	"time"

	"github.com/linskybing/consult-go/internal/domain/ticket"
	"gorm.io/gorm"
)

// TicketRepo is the ticket store. All state-changing methods that return a
// bool are conditional writes: false means zero rows matched the guard and
// the caller lost a race. Correctness of the matching engine rests on these
// guards executing inside the database, never in application code.
type TicketRepo interface {
	Create(t *ticket.Ticket) error
	GetByID(id string) (ticket.Ticket, error)
	FindOpenByCase(caseID uint) (ticket.Ticket, error)
	ListOldestWaiting(limit int) ([]ticket.Ticket, error)
	CountActiveByAdvisor(advisorID uint) (int64, error)
	Claim(id string, advisorID uint, roomName string, at time.Time, guardBusy bool) (bool, error)
	Finish(id string, from, to ticket.Status, at time.Time) (bool, error)
	CancelSiblingWaiting(caseID uint, keepID string, at time.Time) error
	SetGuestToken(id, token string) (bool, error)
	SetRoomName(id, roomName string) (bool, error)
	WithTx(tx *gorm.DB) TicketRepo
}

type DBTicketRepo struct {
	db *gorm.DB
}

func NewTicketRepo(db *gorm.DB) *DBTicketRepo {
	return &DBTicketRepo{
		db: db,
	}
}

func (r *DBTicketRepo) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *DBTicketRepo) GetByID(id string) (ticket.Ticket, error) {
	var t ticket.Ticket
	if err := r.db.Where("id = ?", id).First(&t).Error; err != nil {
		return t, err
	}
	return t, nil
}

// FindOpenByCase returns the case's waiting or active ticket, if any.
// Active wins over waiting so an idempotent restart sees the live session.
func (r *DBTicketRepo) FindOpenByCase(caseID uint) (ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.
		Where("case_id = ? AND status IN ?", caseID, []ticket.Status{ticket.StatusWaiting, ticket.StatusActive}).
		Order("CASE status WHEN 'active' THEN 0 ELSE 1 END, created_at ASC").
		First(&t).Error
	if err != nil {
		return t, err
	}
	return t, nil
}

// ListOldestWaiting orders by created_at then id so concurrent claimers
// walk the same deterministic FIFO candidate list.
func (r *DBTicketRepo) ListOldestWaiting(limit int) ([]ticket.Ticket, error) {
	var tickets []ticket.Ticket
	err := r.db.
		Where("status = ?", ticket.StatusWaiting).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&tickets).Error
	return tickets, err
}

func (r *DBTicketRepo) CountActiveByAdvisor(advisorID uint) (int64, error) {
	var n int64
	err := r.db.Model(&ticket.Ticket{}).
		Where("advisor_id = ? AND status = ?", advisorID, ticket.StatusActive).
		Count(&n).Error
	return n, err
}

// Claim is the waiting -> active transition. The status guard makes at most
// one concurrent claim win. With guardBusy the NOT EXISTS clause keeps the
// busy rule true even when the same advisor races two claims; admins claim
// without it. Room name is assigned lazily here and only if still unset.
func (r *DBTicketRepo) Claim(id string, advisorID uint, roomName string, at time.Time, guardBusy bool) (bool, error) {
	query := `
		UPDATE tickets
		SET status = ?, advisor_id = ?, accepted_at = ?, room_name = COALESCE(room_name, ?)
		WHERE id = ? AND status = ?`
	args := []interface{}{
		ticket.StatusActive, advisorID, at, roomName,
		id, ticket.StatusWaiting,
	}
	if guardBusy {
		query += `
		  AND NOT EXISTS (
			SELECT 1 FROM tickets t2 WHERE t2.advisor_id = ? AND t2.status = ?
		  )`
		args = append(args, advisorID, ticket.StatusActive)
	}

	res := r.db.Exec(query, args...)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Finish moves a ticket into a terminal state, guarded by the expected
// current status.
func (r *DBTicketRepo) Finish(id string, from, to ticket.Status, at time.Time) (bool, error) {
	res := r.db.Model(&ticket.Ticket{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":   to,
			"ended_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CancelSiblingWaiting cancels stale duplicate waiting tickets left on a
// case by retried joins, keeping only the one that was claimed.
func (r *DBTicketRepo) CancelSiblingWaiting(caseID uint, keepID string, at time.Time) error {
	return r.db.Model(&ticket.Ticket{}).
		Where("case_id = ? AND status = ? AND id <> ?", caseID, ticket.StatusWaiting, keepID).
		Updates(map[string]interface{}{
			"status":   ticket.StatusCancelled,
			"ended_at": at,
		}).Error
}

// SetGuestToken binds the guest token first-write-wins. A concurrent issuer
// that loses must re-read and return the bound token, never overwrite it.
func (r *DBTicketRepo) SetGuestToken(id, token string) (bool, error) {
	res := r.db.Model(&ticket.Ticket{}).
		Where("id = ? AND guest_token IS NULL", id).
		Update("guest_token", token)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SetRoomName assigns the room first-write-wins, same discipline as tokens.
func (r *DBTicketRepo) SetRoomName(id, roomName string) (bool, error) {
	res := r.db.Model(&ticket.Ticket{}).
		Where("id = ? AND room_name IS NULL", id).
		Update("room_name", roomName)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DBTicketRepo) WithTx(tx *gorm.DB) TicketRepo {
	if tx == nil {
		return r
	}
	return &DBTicketRepo{
		db: tx,
	}
}
