package dto

import (
	"time"

	"litreview/internal/microservices/http-api/models"
)

// CreateTicketDTO for creating a ticket; also used as the full replacement on update
type CreateTicketDTO struct {
	Title       string  `json:"title" form:"title" binding:"required,max=128"`
	Description string  `json:"description" form:"description" binding:"max=2048"`
	Image       *string `json:"image" form:"image" binding:"omitempty,max=255"`
}

type UpdateTicketDTO = CreateTicketDTO

// TicketResponse for returning ticket information
type TicketResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       *string   `json:"image,omitempty"`
	UserID      string    `json:"user_id"`
	Username    string    `json:"username"`
	TimeCreated time.Time `json:"time_created"`
}

// TicketDetailResponse is a ticket together with its reviews
type TicketDetailResponse struct {
	TicketResponse
	Reviews []ReviewResponse `json:"reviews"`
}

// FromModelToTicketResponse converts a Ticket model to TicketResponse DTO
func FromModelToTicketResponse(ticket *models.Ticket) *TicketResponse {
	return &TicketResponse{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Image:       ticket.Image,
		UserID:      ticket.UserID,
		Username:    ticket.User.Username,
		TimeCreated: ticket.TimeCreated,
	}
}
