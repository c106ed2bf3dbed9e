package handler

import (
	"context"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/models"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*models.User), args.Error(3)
}

func (m *MockAuthService) RefreshAccessToken(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) RevokeToken(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

// MockTicketService mocks the TicketService interface
type MockTicketService struct {
	mock.Mock
}

func (m *MockTicketService) CreateTicket(ctx context.Context, ownerID string, in service.TicketInput) (*dto.TicketResponse, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TicketResponse), args.Error(1)
}

func (m *MockTicketService) UpdateTicket(ctx context.Context, ticketID int64, editorID string, in service.TicketInput) (*dto.TicketResponse, error) {
	args := m.Called(ctx, ticketID, editorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TicketResponse), args.Error(1)
}

func (m *MockTicketService) DeleteTicket(ctx context.Context, ticketID int64, requesterID string) error {
	args := m.Called(ctx, ticketID, requesterID)
	return args.Error(0)
}

func (m *MockTicketService) GetTicket(ctx context.Context, ticketID int64) (*dto.TicketDetailResponse, error) {
	args := m.Called(ctx, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TicketDetailResponse), args.Error(1)
}

func (m *MockTicketService) GetTicketForEdit(ctx context.Context, ticketID int64, editorID string) (*dto.TicketResponse, error) {
	args := m.Called(ctx, ticketID, editorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TicketResponse), args.Error(1)
}

// MockReviewService mocks the ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) CreateReview(ctx context.Context, authorID string, ticketID int64, in service.ReviewInput) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, authorID, ticketID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) CreateTicketWithReview(ctx context.Context, ownerID string, ticketIn service.TicketInput, reviewIn service.ReviewInput) (*dto.TicketReviewResponse, error) {
	args := m.Called(ctx, ownerID, ticketIn, reviewIn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TicketReviewResponse), args.Error(1)
}

func (m *MockReviewService) UpdateReview(ctx context.Context, reviewID int64, editorID string, in service.ReviewInput) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, reviewID, editorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) DeleteReview(ctx context.Context, reviewID int64, requesterID string) error {
	args := m.Called(ctx, reviewID, requesterID)
	return args.Error(0)
}

func (m *MockReviewService) GetReview(ctx context.Context, reviewID int64) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) GetReviewForEdit(ctx context.Context, reviewID int64, editorID string) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, reviewID, editorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

// MockRelationService mocks the RelationService interface
type MockRelationService struct {
	mock.Mock
}

func (m *MockRelationService) FollowedBy(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRelationService) FollowersOf(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRelationService) BlockedBy(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRelationService) FollowUser(ctx context.Context, followerID, targetUsername string) (*dto.FollowEdgeResponse, error) {
	args := m.Called(ctx, followerID, targetUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FollowEdgeResponse), args.Error(1)
}

func (m *MockRelationService) UnfollowUser(ctx context.Context, edgeID int64, requesterID string) error {
	args := m.Called(ctx, edgeID, requesterID)
	return args.Error(0)
}

func (m *MockRelationService) ListFollows(ctx context.Context, userID string) (*dto.FollowPageResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FollowPageResponse), args.Error(1)
}

func (m *MockRelationService) BlockUser(ctx context.Context, blockerID, targetUserID string) error {
	args := m.Called(ctx, blockerID, targetUserID)
	return args.Error(0)
}

func (m *MockRelationService) UnblockUser(ctx context.Context, blockerID, targetUserID string) error {
	args := m.Called(ctx, blockerID, targetUserID)
	return args.Error(0)
}

// MockFeedService mocks the FeedService interface
type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) ViewerFeed(ctx context.Context, viewerID string, page, pageSize int) (*dto.PaginatedFeedResponse, error) {
	args := m.Called(ctx, viewerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedFeedResponse), args.Error(1)
}

func (m *MockFeedService) PersonalFeed(ctx context.Context, viewerID string, page, pageSize int) (*dto.PaginatedFeedResponse, error) {
	args := m.Called(ctx, viewerID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaginatedFeedResponse), args.Error(1)
}

const (
	testViewerID = "00000000-0000-0000-0000-00000000a11c"
	otherUserID  = "00000000-0000-0000-0000-000000000b0b"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()
	return gin.New()
}

// asViewer stands in for RequireViewer in handler tests
func asViewer(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}
