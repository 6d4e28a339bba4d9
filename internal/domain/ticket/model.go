package ticket

import "time"

// Status is the ticket state machine. Terminal states are never left.
type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusActive    Status = "active"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
)

// Ticket is one customer's place in the consultation queue for one case.
// A case has at most one ticket in waiting or active at a time; the
// partial unique index on case_id enforces it at the store level.
type Ticket struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`
	CaseID     uint       `gorm:"not null;index" json:"case_id"`
	CustomerID *uint      `gorm:"column:customer_id" json:"customer_id,omitempty"`
	AdvisorID  *uint      `gorm:"column:advisor_id;index" json:"advisor_id,omitempty"`
	Status     Status     `gorm:"size:16;not null;default:'waiting';index" json:"status"`
	RoomName   *string    `gorm:"size:64" json:"room_name,omitempty"`
	GuestToken *string    `gorm:"size:64" json:"-"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
}

// TableName specifies the database table name
func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) IsTerminal() bool {
	return t.Status == StatusEnded || t.Status == StatusCancelled
}

func (t *Ticket) IsGuest() bool {
	return t.CustomerID == nil
}
