package service

import (
	"context"
	"errors"
	"log/slog"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RelationResolver answers read-only questions about the social graph.
type RelationResolver interface {
	FollowedBy(ctx context.Context, userID string) ([]string, error)
	FollowersOf(ctx context.Context, userID string) ([]string, error)
	BlockedBy(ctx context.Context, userID string) ([]string, error)
}

type RelationService interface {
	RelationResolver
	FollowUser(ctx context.Context, followerID, targetUsername string) (*dto.FollowEdgeResponse, error)
	UnfollowUser(ctx context.Context, edgeID int64, requesterID string) error
	ListFollows(ctx context.Context, userID string) (*dto.FollowPageResponse, error)
	BlockUser(ctx context.Context, blockerID, targetUserID string) error
	UnblockUser(ctx context.Context, blockerID, targetUserID string) error
}

type relationService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	blockRepo  repository.BlockRepository
	cache      repository.RelationCache
	logger     *slog.Logger
}

// NewRelationService builds the follow/block service. cache may be nil.
func NewRelationService(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
	blockRepo repository.BlockRepository,
	cache repository.RelationCache,
) RelationService {
	return &relationService{
		userRepo:   userRepo,
		followRepo: followRepo,
		blockRepo:  blockRepo,
		cache:      cache,
		logger:     slog.Default(),
	}
}

func (s *relationService) FollowedBy(ctx context.Context, userID string) ([]string, error) {
	return s.cached(ctx, userID, repository.RelationFollowing, s.followRepo.FollowedIDs)
}

func (s *relationService) FollowersOf(ctx context.Context, userID string) ([]string, error) {
	return s.followRepo.FollowerIDs(ctx, userID)
}

func (s *relationService) BlockedBy(ctx context.Context, userID string) ([]string, error) {
	return s.cached(ctx, userID, repository.RelationBlocked, s.blockRepo.BlockedIDs)
}

// cached is a cache-aside read. Cache errors are logged and the database
// answers instead.
func (s *relationService) cached(
	ctx context.Context,
	userID, kind string,
	load func(context.Context, string) ([]string, error),
) ([]string, error) {
	if s.cache != nil {
		ids, ok, err := s.cache.Get(ctx, userID, kind)
		if err != nil {
			s.logger.Warn("relation_cache_get_failed", "user_id", userID, "kind", kind, "error", err)
		} else if ok {
			return ids, nil
		}
	}

	ids, err := load(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, kind, ids); err != nil {
			s.logger.Warn("relation_cache_set_failed", "user_id", userID, "kind", kind, "error", err)
		}
	}
	return ids, nil
}

func (s *relationService) invalidate(ctx context.Context, userID, kind string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID, kind); err != nil {
		s.logger.Warn("relation_cache_invalidate_failed", "user_id", userID, "kind", kind, "error", err)
	}
}

// FollowUser creates the edge follower -> target. A repeated follow
// reports ErrAlreadyFollowing and leaves exactly one edge.
func (s *relationService) FollowUser(ctx context.Context, followerID, targetUsername string) (*dto.FollowEdgeResponse, error) {
	target, err := s.userRepo.FindByUsername(ctx, targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if target.ID == followerID {
		return nil, ErrSelfFollow
	}

	edge, created, err := s.followRepo.GetOrCreate(ctx, followerID, target.ID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrAlreadyFollowing
	}

	s.invalidate(ctx, followerID, repository.RelationFollowing)
	s.logger.Info("user_followed", "user_id", followerID, "followed_user_id", target.ID)

	return &dto.FollowEdgeResponse{
		ID:       edge.ID,
		UserID:   target.ID,
		Username: target.Username,
	}, nil
}

// UnfollowUser deletes an edge; only the follower may delete it.
func (s *relationService) UnfollowUser(ctx context.Context, edgeID int64, requesterID string) error {
	edge, err := s.followRepo.GetByID(ctx, edgeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFollowNotFound
		}
		return err
	}
	if edge.UserID != requesterID {
		return ErrForbidden
	}

	if err := s.followRepo.Delete(ctx, edgeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFollowNotFound
		}
		return err
	}

	s.invalidate(ctx, requesterID, repository.RelationFollowing)
	s.logger.Info("user_unfollowed", "user_id", requesterID, "followed_user_id", edge.FollowedUserID)
	return nil
}

func (s *relationService) ListFollows(ctx context.Context, userID string) (*dto.FollowPageResponse, error) {
	following, err := s.followRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := &dto.FollowPageResponse{
		Following:  make([]dto.FollowEdgeResponse, 0, len(following)),
		FollowedBy: make([]dto.FollowEdgeResponse, 0, len(followers)),
	}
	for i := range following {
		page.Following = append(page.Following, dto.FromModelToFollowingResponse(&following[i]))
	}
	for i := range followers {
		page.FollowedBy = append(page.FollowedBy, dto.FromModelToFollowerResponse(&followers[i]))
	}
	return page, nil
}

// BlockUser is idempotent: blocking twice keeps one edge and succeeds.
func (s *relationService) BlockUser(ctx context.Context, blockerID, targetUserID string) error {
	if err := s.userExists(ctx, targetUserID); err != nil {
		return err
	}
	if blockerID == targetUserID {
		return ErrSelfBlock
	}

	created, err := s.blockRepo.GetOrCreate(ctx, blockerID, targetUserID)
	if err != nil {
		return err
	}

	s.invalidate(ctx, blockerID, repository.RelationBlocked)
	if created {
		s.logger.Info("user_blocked", "user_id", blockerID, "blocked_user_id", targetUserID)
	}
	return nil
}

// UnblockUser removes the edge if any.
func (s *relationService) UnblockUser(ctx context.Context, blockerID, targetUserID string) error {
	if err := s.userExists(ctx, targetUserID); err != nil {
		return err
	}

	if err := s.blockRepo.Delete(ctx, blockerID, targetUserID); err != nil {
		return err
	}

	s.invalidate(ctx, blockerID, repository.RelationBlocked)
	s.logger.Info("user_unblocked", "user_id", blockerID, "blocked_user_id", targetUserID)
	return nil
}

func (s *relationService) userExists(ctx context.Context, userID string) error {
	// ids are uuid columns; anything else cannot name a user
	if _, err := uuid.Parse(userID); err != nil {
		return ErrUserNotFound
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
