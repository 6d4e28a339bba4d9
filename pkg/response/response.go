package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token    string `json:"token"`
	UID      uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type TicketResponse struct {
	TicketID   string  `json:"ticket_id"`
	CaseID     uint    `json:"case_id"`
	Status     string  `json:"status"`
	AdvisorID  *uint   `json:"advisor_id,omitempty"`
	RoomName   *string `json:"room_name,omitempty"`
	GuestToken string  `json:"guest_token,omitempty"`
}

type RoomAccessResponse struct {
	Endpoint    string `json:"endpoint"`
	RoomName    string `json:"room_name"`
	AccessToken string `json:"access_token"`
}

type AvailabilityResponse struct {
	AdvisorID uint `json:"advisor_id"`
	Online    bool `json:"online"`
	Busy      bool `json:"busy"`
	Available bool `json:"available"`
}
