package dto

import "time"

const (
	FeedKindTicket = "ticket"
	FeedKindReview = "review"
)

// FeedItem is either a ticket or a review
type FeedItem struct {
	Kind        string          `json:"kind"`
	ID          int64           `json:"id"`
	TimeCreated time.Time       `json:"time_created"`
	Ticket      *TicketResponse `json:"ticket,omitempty"`
	Review      *ReviewResponse `json:"review,omitempty"`
}

// PaginatedFeedResponse for returning a page of feed items
type PaginatedFeedResponse struct {
	Data       []FeedItem `json:"data"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
}

// NewPaginatedFeedResponse creates a paginated feed response
func NewPaginatedFeedResponse(data []FeedItem, total, page, pageSize int) *PaginatedFeedResponse {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	return &PaginatedFeedResponse{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// FeedQuery holds the pagination query parameters; zero means default
type FeedQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}
