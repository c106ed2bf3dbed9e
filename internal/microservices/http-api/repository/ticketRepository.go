package repository

import (
	"context"
	"fmt"

	"litreview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	CreateWithReview(ctx context.Context, ticket *models.Ticket, review *models.Review) error
	Update(ctx context.Context, ticket *models.Ticket) error
	Delete(ctx context.Context, ticketID int64) error
	GetByID(ctx context.Context, ticketID int64) (*models.Ticket, error)
	ListByOwners(ctx context.Context, ownerIDs []string) ([]models.Ticket, error)
}

type ticketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{db: db}
}

// Create a new ticket; GORM populates ID and TimeCreated
func (r *ticketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(ticket).Error; err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

// CreateWithReview inserts a ticket and its first review in one transaction.
func (r *ticketRepository) CreateWithReview(ctx context.Context, ticket *models.Ticket, review *models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("User").Create(ticket).Error; err != nil {
			return fmt.Errorf("create ticket: %w", err)
		}
		review.TicketID = ticket.ID
		if err := tx.Omit("User", "Ticket").Create(review).Error; err != nil {
			return fmt.Errorf("create review: %w", err)
		}
		return nil
	})
}

// Update writes the editable fields of a ticket
func (r *ticketRepository) Update(ctx context.Context, ticket *models.Ticket) error {
	err := r.db.WithContext(ctx).
		Model(ticket).
		Select("title", "description", "image").
		Updates(ticket).Error
	if err != nil {
		return fmt.Errorf("update ticket: %w", err)
	}
	return nil
}

// Delete removes a ticket and its reviews. The FK cascade covers the
// reviews too; deleting them here keeps the result independent of it.
func (r *ticketRepository) Delete(ctx context.Context, ticketID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.Review{}).Error; err != nil {
			return fmt.Errorf("delete ticket reviews: %w", err)
		}
		result := tx.Delete(&models.Ticket{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByID retrieves a ticket with its owner
func (r *ticketRepository) GetByID(ctx context.Context, ticketID int64) (*models.Ticket, error) {
	var ticket models.Ticket
	if err := r.db.WithContext(ctx).Preload("User").First(&ticket, ticketID).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// ListByOwners retrieves every ticket owned by one of ownerIDs, newest first
func (r *ticketRepository) ListByOwners(ctx context.Context, ownerIDs []string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	if len(ownerIDs) == 0 {
		return tickets, nil
	}
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN ?", ownerIDs).
		Order("time_created DESC, id DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return tickets, nil
}
