package user

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdvisor  Role = "advisor"
	RoleAdmin    Role = "admin"
)

type User struct {
	UID       uint      `gorm:"primaryKey;column:u_id;autoIncrement"`
	Username  string    `gorm:"size:50;not null;unique" json:"Username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Email     *string   `gorm:"size:100"`
	FullName  *string   `gorm:"size:50"`
	Role      string    `gorm:"size:16;default:'customer';not null"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime"`
}

// TableName specifies the database table name
func (User) TableName() string {
	return "users"
}
