package advisor

import "time"

// Presence holds the advisor-controlled online flag. Busy is derived from
// live ticket data, never stored, so a crash cannot leave a stale counter.
type Presence struct {
	AdvisorID   uint       `gorm:"primaryKey;column:advisor_id" json:"advisor_id"`
	IsOnline    bool       `gorm:"not null;default:false" json:"is_online"`
	OnlineSince *time.Time `json:"online_since,omitempty"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the database table name
func (Presence) TableName() string {
	return "advisor_presence"
}

type SetOnlineInput struct {
	Online *bool `json:"online" form:"online" binding:"required"`
}
