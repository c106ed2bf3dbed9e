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

type TicketService interface {
	CreateTicket(ctx context.Context, ownerID string, in TicketInput) (*dto.TicketResponse, error)
	UpdateTicket(ctx context.Context, ticketID int64, editorID string, in TicketInput) (*dto.TicketResponse, error)
	DeleteTicket(ctx context.Context, ticketID int64, requesterID string) error
	GetTicket(ctx context.Context, ticketID int64) (*dto.TicketDetailResponse, error)
	GetTicketForEdit(ctx context.Context, ticketID int64, editorID string) (*dto.TicketResponse, error)
}

type ticketService struct {
	ticketRepo repository.TicketRepository
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

func NewTicketService(ticketRepo repository.TicketRepository, reviewRepo repository.ReviewRepository) TicketService {
	return &ticketService{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		logger:     slog.Default(),
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, ownerID string, in TicketInput) (*dto.TicketResponse, error) {
	in.normalize()
	var v ValidationError
	in.validate(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	ticket := &models.Ticket{
		Title:       in.Title,
		Description: in.Description,
		Image:       in.Image,
		UserID:      ownerID,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.logger.Info("ticket_created", "ticket_id", ticket.ID, "user_id", ownerID)
	return s.reload(ctx, ticket.ID)
}

func (s *ticketService) UpdateTicket(ctx context.Context, ticketID int64, editorID string, in TicketInput) (*dto.TicketResponse, error) {
	ticket, err := s.ownedTicket(ctx, ticketID, editorID)
	if err != nil {
		return nil, err
	}

	in.normalize()
	var v ValidationError
	in.validate(&v)
	if err := v.err(); err != nil {
		return nil, err
	}

	ticket.Title = in.Title
	ticket.Description = in.Description
	ticket.Image = in.Image
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	return dto.FromModelToTicketResponse(ticket), nil
}

// DeleteTicket removes the ticket together with every review of it.
func (s *ticketService) DeleteTicket(ctx context.Context, ticketID int64, requesterID string) error {
	if _, err := s.ownedTicket(ctx, ticketID, requesterID); err != nil {
		return err
	}

	if err := s.ticketRepo.Delete(ctx, ticketID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTicketNotFound
		}
		return err
	}

	s.logger.Info("ticket_deleted", "ticket_id", ticketID, "user_id", requesterID)
	return nil
}

func (s *ticketService) GetTicket(ctx context.Context, ticketID int64) (*dto.TicketDetailResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	detail := &dto.TicketDetailResponse{
		TicketResponse: *dto.FromModelToTicketResponse(ticket),
		Reviews:        make([]dto.ReviewResponse, 0, len(reviews)),
	}
	for i := range reviews {
		detail.Reviews = append(detail.Reviews, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	return detail, nil
}

// GetTicketForEdit returns the current values to prefill the change form.
func (s *ticketService) GetTicketForEdit(ctx context.Context, ticketID int64, editorID string) (*dto.TicketResponse, error) {
	ticket, err := s.ownedTicket(ctx, ticketID, editorID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToTicketResponse(ticket), nil
}

func (s *ticketService) ownedTicket(ctx context.Context, ticketID int64, userID string) (*models.Ticket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, ErrForbidden
	}
	return ticket, nil
}

func (s *ticketService) reload(ctx context.Context, ticketID int64) (*dto.TicketResponse, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	return dto.FromModelToTicketResponse(ticket), nil
}
