package repository

import (
	"context"
	"fmt"

	"litreview/internal/microservices/http-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, reviewID int64) error
	GetByID(ctx context.Context, reviewID int64) (*models.Review, error)
	ListByTicket(ctx context.Context, ticketID int64) ([]models.Review, error)
	ListByAuthor(ctx context.Context, userID string) ([]models.Review, error)
	ListForFeed(ctx context.Context, ticketOwnerIDs, authorIDs []string) ([]models.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Ticket").
		Preload("Ticket.User")
}

// Create a new review
func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Omit("User", "Ticket").Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// Update writes the editable fields of a review
func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	err := r.db.WithContext(ctx).
		Model(review).
		Select("rating", "headline", "body").
		Updates(review).Error
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete a review by ID
func (r *reviewRepository) Delete(ctx context.Context, reviewID int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		return fmt.Errorf("delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByID retrieves a review with its author and ticket
func (r *reviewRepository) GetByID(ctx context.Context, reviewID int64) (*models.Review, error) {
	var review models.Review
	if err := r.withAssociations(ctx).First(&review, reviewID).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByTicket retrieves the reviews of one ticket, newest first
func (r *reviewRepository) ListByTicket(ctx context.Context, ticketID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("ticket_id = ?", ticketID).
		Order("time_created DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list ticket reviews: %w", err)
	}
	return reviews, nil
}

// ListByAuthor retrieves every review written by userID
func (r *reviewRepository) ListByAuthor(ctx context.Context, userID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.withAssociations(ctx).
		Where("user_id = ?", userID).
		Order("time_created DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}
	return reviews, nil
}

// ListForFeed retrieves reviews attached to a ticket owned by one of
// ticketOwnerIDs, plus reviews written by one of authorIDs.
func (r *reviewRepository) ListForFeed(ctx context.Context, ticketOwnerIDs, authorIDs []string) ([]models.Review, error) {
	var reviews []models.Review
	if len(ticketOwnerIDs) == 0 && len(authorIDs) == 0 {
		return reviews, nil
	}

	ownedTickets := r.db.WithContext(ctx).
		Model(&models.Ticket{}).
		Select("id").
		Where("user_id IN ?", ticketOwnerIDs)

	err := r.withAssociations(ctx).
		Where("ticket_id IN (?) OR user_id IN ?", ownedTickets, authorIDs).
		Order("time_created DESC, id DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list feed reviews: %w", err)
	}
	return reviews, nil
}
