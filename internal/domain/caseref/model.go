package caseref

import "time"

// Case is the engine's read-mostly view of a consultation case. The engine
// only authorizes against CustomerID and, after an appointment claim,
// persists AssignedAdvisorID back.
type Case struct {
	CID               uint      `gorm:"primaryKey;column:c_id;autoIncrement" json:"case_id"`
	CustomerID        uint      `gorm:"not null;index" json:"customer_id"`
	AssignedAdvisorID *uint     `gorm:"column:assigned_advisor_id" json:"assigned_advisor_id,omitempty"`
	Subject           string    `gorm:"size:200" json:"subject"`
	CreatedAt         time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the database table name
func (Case) TableName() string {
	return "case_list"
}
