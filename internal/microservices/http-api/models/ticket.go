package models

import "time"

// Ticket is a request for a review of a work (book, article...).
type Ticket struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:128;not null"`
	Description string    `json:"description" gorm:"size:2048"`
	Image       *string   `json:"image,omitempty" gorm:"size:255"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	TimeCreated time.Time `json:"time_created" gorm:"autoCreateTime;index"`

	// Associations
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
}

func (Ticket) TableName() string {
	return "tickets"
}
