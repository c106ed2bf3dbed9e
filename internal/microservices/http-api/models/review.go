package models

import "time"

const (
	MinRating = 0
	MaxRating = 5
)

type Review struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TicketID    int64     `json:"ticket_id" gorm:"not null;index"`
	Rating      int       `json:"rating" gorm:"not null;check:rating >= 0 AND rating <= 5"`
	UserID      string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Headline    string    `json:"headline" gorm:"size:128;not null"`
	Body        string    `json:"body" gorm:"size:8192"`
	TimeCreated time.Time `json:"time_created" gorm:"autoCreateTime;index"`

	// Associations
	User   User   `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Ticket Ticket `json:"ticket,omitempty" gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
