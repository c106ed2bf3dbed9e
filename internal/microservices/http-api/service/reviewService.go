package service

import (
	"context"
	"errors"
	"log/slog"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/models"
	"litreview/internal/microservices/http-api/repository"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(ctx context.Context, authorID string, ticketID int64, in ReviewInput) (*dto.ReviewResponse, error)
	CreateTicketWithReview(ctx context.Context, ownerID string, ticketIn TicketInput, reviewIn ReviewInput) (*dto.TicketReviewResponse, error)
	UpdateReview(ctx context.Context, reviewID int64, editorID string, in ReviewInput) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID int64, requesterID string) error
	GetReview(ctx context.Context, reviewID int64) (*dto.ReviewResponse, error)
	GetReviewForEdit(ctx context.Context, reviewID int64, editorID string) (*dto.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	ticketRepo repository.TicketRepository
	logger     *slog.Logger
}

func NewReviewService(reviewRepo repository.ReviewRepository, ticketRepo repository.TicketRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		ticketRepo: ticketRepo,
		logger:     slog.Default(),
	}
}

// CreateReview attaches a review to an existing ticket.
func (s *reviewService) CreateReview(ctx context.Context, authorID string, ticketID int64, in ReviewInput) (*dto.ReviewResponse, error) {
	in.normalize()
	var v ValidationError
	in.validate(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	if _, err := s.ticketRepo.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	review := &models.Review{
		TicketID: ticketID,
		Rating:   in.Rating,
		Headline: in.Headline,
		Body:     in.Body,
		UserID:   authorID,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	s.logger.Info("review_created", "review_id", review.ID, "ticket_id", ticketID, "user_id", authorID)
	return s.reload(ctx, review.ID)
}

// CreateTicketWithReview creates a ticket and its first review atomically.
// Both inputs are validated before anything is written.
func (s *reviewService) CreateTicketWithReview(ctx context.Context, ownerID string, ticketIn TicketInput, reviewIn ReviewInput) (*dto.TicketReviewResponse, error) {
	ticketIn.normalize()
	reviewIn.normalize()
	var v ValidationError
	ticketIn.validate(&v)
	reviewIn.validate(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:       ticketIn.Title,
		Description: ticketIn.Description,
		Image:       ticketIn.Image,
		UserID:      ownerID,
	}
	review := &models.Review{
		Rating:   reviewIn.Rating,
		Headline: reviewIn.Headline,
		Body:     reviewIn.Body,
		UserID:   ownerID,
	}
	if err := s.ticketRepo.CreateWithReview(ctx, ticket, review); err != nil {
		return nil, err
	}

	s.logger.Info("ticket_review_created", "ticket_id", ticket.ID, "review_id", review.ID, "user_id", ownerID)

	created, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModelToReviewResponse(created)
	out := &dto.TicketReviewResponse{Review: *resp}
	if resp.Ticket != nil {
		out.Ticket = *resp.Ticket
	}
	out.Review.Ticket = nil
	return out, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID int64, editorID string, in ReviewInput) (*dto.ReviewResponse, error) {
	review, err := s.ownedReview(ctx, reviewID, editorID)
	if err != nil {
		return nil, err
	}

	in.normalize()
	var v ValidationError
	in.validate(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	review.Rating = in.Rating
	review.Headline = in.Headline
	review.Body = in.Body
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID int64, requesterID string) error {
	if _, err := s.ownedReview(ctx, reviewID, requesterID); err != nil {
		return err
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	s.logger.Info("review_deleted", "review_id", reviewID, "user_id", requesterID)
	return nil
}

func (s *reviewService) GetReview(ctx context.Context, reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) GetReviewForEdit(ctx context.Context, reviewID int64, editorID string) (*dto.ReviewResponse, error) {
	review, err := s.ownedReview(ctx, reviewID, editorID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}

func (s *reviewService) ownedReview(ctx context.Context, reviewID int64, userID string) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}
	return review, nil
}

func (s *reviewService) reload(ctx context.Context, reviewID int64) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToReviewResponse(review), nil
}
