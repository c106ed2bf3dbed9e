package dto

import (
	"time"

	"litreview/internal/microservices/http-api/models"
)

// ReviewFieldsDTO holds the user-editable review fields.
// Rating is a pointer so that 0 passes the required check.
type ReviewFieldsDTO struct {
	Rating   *int   `json:"rating" form:"rating" binding:"required,min=0,max=5"`
	Headline string `json:"headline" form:"headline" binding:"required,max=128"`
	Body     string `json:"body" form:"body" binding:"max=8192"`
}

type UpdateReviewDTO = ReviewFieldsDTO

// CreateReviewDTO for the generic review form, which names the ticket
type CreateReviewDTO struct {
	TicketID int64 `json:"ticket_id" form:"ticket_id" binding:"required,min=1"`
	ReviewFieldsDTO
}

// CreateTicketReviewDTO creates a ticket and its first review in one action
type CreateTicketReviewDTO struct {
	CreateTicketDTO
	ReviewFieldsDTO
}

// ReviewResponse for returning review information
type ReviewResponse struct {
	ID          int64           `json:"id"`
	TicketID    int64           `json:"ticket_id"`
	Rating      int             `json:"rating"`
	Headline    string          `json:"headline"`
	Body        string          `json:"body"`
	UserID      string          `json:"user_id"`
	Username    string          `json:"username"`
	TimeCreated time.Time       `json:"time_created"`
	Ticket      *TicketResponse `json:"ticket,omitempty"`
}

// FromModelToReviewResponse converts a Review model to ReviewResponse DTO.
// The ticket is embedded when it was loaded with the review.
func FromModelToReviewResponse(review *models.Review) *ReviewResponse {
	resp := &ReviewResponse{
		ID:          review.ID,
		TicketID:    review.TicketID,
		Rating:      review.Rating,
		Headline:    review.Headline,
		Body:        review.Body,
		UserID:      review.UserID,
		Username:    review.User.Username,
		TimeCreated: review.TimeCreated,
	}
	if review.Ticket.ID != 0 {
		resp.Ticket = FromModelToTicketResponse(&review.Ticket)
	}
	return resp
}

// TicketReviewResponse is returned by the combined creation
type TicketReviewResponse struct {
	Ticket TicketResponse `json:"ticket"`
	Review ReviewResponse `json:"review"`
}
