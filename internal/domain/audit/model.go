package audit

import "time"

// AuditLog is the append-only trail of ticket transitions and account
// actions. Tickets are never deleted; this records who moved them.
type AuditLog struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Action       string    `gorm:"size:50;not null" json:"action"`
	ResourceType string    `gorm:"size:50;index" json:"resource_type"`
	ResourceID   string    `gorm:"size:64;index" json:"resource_id"`
	OldData      []byte    `gorm:"type:jsonb" json:"old_data,omitempty"`
	NewData      []byte    `gorm:"type:jsonb" json:"new_data,omitempty"`
	IPAddress    string    `gorm:"size:45" json:"ip_address"`
	UserAgent    string    `gorm:"size:255" json:"user_agent"`
	Description  string    `gorm:"type:text" json:"description"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName specifies the database table name
func (AuditLog) TableName() string {
	return "audit_logs"
}
