package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account that owns tickets and reviews and takes part in
// follow and block edges. The password hash never leaves the server.
type User struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid"`
	Username  string     `json:"username" gorm:"uniqueIndex;size:150;not null"`
	Password  string     `json:"-" gorm:"column:password_hash;not null"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate assigns a random UUID unless the caller picked one.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (User) TableName() string {
	return "users"
}
