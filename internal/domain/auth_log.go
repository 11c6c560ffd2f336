package domain

import "time"

// Auth log actions.
const (
	AuthActionLogin    = "login"
	AuthActionRegister = "register"
	AuthActionLogout   = "logout"
)

// AuthLog records one authentication attempt for auditing. Rows are
// pruned by the daily cleanup job.
type AuthLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"size:255;index" json:"email"`
	Action    string    `gorm:"size:16" json:"action"`
	ClientIP  string    `gorm:"size:64" json:"client_ip"`
	Result    string    `gorm:"size:16" json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName Specify table name
func (AuthLog) TableName() string {
	return "auth_log"
}
