package ticket

type JoinQueueInput struct {
	CaseID     uint   `json:"case_id" form:"case_id" binding:"required"`
	GuestToken string `json:"guest_token" form:"guest_token"`
}

type AppointmentStartInput struct {
	CaseID        uint   `json:"case_id" form:"case_id" binding:"required"`
	AppointmentID string `json:"appointment_id" form:"appointment_id"`
}

type LeaveQueueInput struct {
	TicketID   string `json:"ticket_id" form:"ticket_id"`
	CaseID     uint   `json:"case_id" form:"case_id"`
	GuestToken string `json:"guest_token" form:"guest_token"`
}

type GuestTokenInput struct {
	GuestToken string `json:"guest_token" form:"guest_token"`
}

// StatusEvent is what the notifier pushes to subscribers of a ticket.
type StatusEvent struct {
	TicketID  string `json:"ticket_id"`
	Status    Status `json:"status"`
	AdvisorID *uint  `json:"advisor_id,omitempty"`
	RoomName  string `json:"room_name,omitempty"`
}
