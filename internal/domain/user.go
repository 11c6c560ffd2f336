package domain

import "time"

// User is a registered storefront account. The stored credential is a
// bcrypt hash and is never serialized to API responses.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName Specify table name
func (User) TableName() string {
	return "users"
}
