package models

import "time"

// UserBlock hides BlockedUserID's content from UserID's feed.
type UserBlock struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_blocks_pair"`
	BlockedUserID string    `json:"blocked_user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_blocks_pair"`
	CreatedAt     time.Time `json:"created_at"`

	// Associations
	User        User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	BlockedUser User `json:"-" gorm:"foreignKey:BlockedUserID;constraint:OnDelete:CASCADE;"`
}

func (UserBlock) TableName() string {
	return "user_blocks"
}
