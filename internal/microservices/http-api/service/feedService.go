package service

import (
	"context"
	"log/slog"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/repository"
)

const MaxFeedPageSize = 100

type FeedService interface {
	ViewerFeed(ctx context.Context, viewerID string, page, pageSize int) (*dto.PaginatedFeedResponse, error)
	PersonalFeed(ctx context.Context, viewerID string, page, pageSize int) (*dto.PaginatedFeedResponse, error)
}

type feedService struct {
	relations       RelationResolver
	ticketRepo      repository.TicketRepository
	reviewRepo      repository.ReviewRepository
	policy          FeedPolicy
	defaultPageSize int
	logger          *slog.Logger
}

func NewFeedService(
	relations RelationResolver,
	ticketRepo repository.TicketRepository,
	reviewRepo repository.ReviewRepository,
	policy FeedPolicy,
	defaultPageSize int,
) FeedService {
	if defaultPageSize <= 0 || defaultPageSize > MaxFeedPageSize {
		defaultPageSize = 20
	}
	return &feedService{
		relations:       relations,
		ticketRepo:      ticketRepo,
		reviewRepo:      reviewRepo,
		policy:          policy,
		defaultPageSize: defaultPageSize,
		logger:          slog.Default(),
	}
}

// ViewerFeed shows the viewer's own content and that of followed users,
// plus every review posted on one of those users' tickets.
func (s *feedService) ViewerFeed(ctx context.Context, viewerID string, page, pageSize int) (*dto.PaginatedFeedResponse, error) {
	followed, err := s.relations.FollowedBy(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var blocked []string
	if s.policy.HonorBlocks {
		if blocked, err = s.relations.BlockedBy(ctx, viewerID); err != nil {
			return nil, err
		}
	}

	owners := make([]string, 0, len(followed)+1)
	owners = append(owners, viewerID)
	for _, id := range followed {
		if id != viewerID {
			owners = append(owners, id)
		}
	}

	tickets, err := s.ticketRepo.ListByOwners(ctx, owners)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListForFeed(ctx, owners, owners)
	if err != nil {
		return nil, err
	}

	items := assembleFeed(tickets, reviews, blocked, s.policy)
	s.logger.Debug("feed_assembled",
		"viewer_id", viewerID,
		"followed", len(followed),
		"blocked", len(blocked),
		"items", len(items),
	)
	return s.page(items, page, pageSize), nil
}

// PersonalFeed shows only the viewer's own tickets and reviews.
func (s *feedService) PersonalFeed(ctx context.Context, viewerID string, page, pageSize int) (*dto.PaginatedFeedResponse, error) {
	tickets, err := s.ticketRepo.ListByOwners(ctx, []string{viewerID})
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByAuthor(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	items := assembleFeed(tickets, reviews, nil, FeedPolicy{})
	return s.page(items, page, pageSize), nil
}

func (s *feedService) page(items []dto.FeedItem, page, pageSize int) *dto.PaginatedFeedResponse {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	pageSize = min(pageSize, MaxFeedPageSize)
	return dto.NewPaginatedFeedResponse(paginate(items, page, pageSize), len(items), page, pageSize)
}
