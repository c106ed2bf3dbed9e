package handler

import (
	"errors"
	"net/http"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	relationService service.RelationService
}

func NewFollowHandler(relationService service.RelationService) *FollowHandler {
	return &FollowHandler{relationService: relationService}
}

// RegisterRoutes registers follow routes (viewer already authenticated)
func (h *FollowHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/review/follow/", h.List)
	router.POST("/review/follow/", h.Follow)
	router.POST("/review/follow/:id/delete/", h.Unfollow)
}

// List handles GET /review/follow/
func (h *FollowHandler) List(c *gin.Context) {
	page, err := h.relationService.ListFollows(c.Request.Context(), middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": dto.FollowForm(), "follows": page})
}

// Follow handles POST /review/follow/. Following yourself or someone you
// already follow is not an error: the page is shown again with a message.
func (h *FollowHandler) Follow(c *gin.Context) {
	var req dto.FollowUserDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	viewerID := middleware.ViewerID(c)

	status := http.StatusCreated
	var message string
	edge, err := h.relationService.FollowUser(ctx, viewerID, req.Username)
	switch {
	case err == nil:
		message = "you are now following " + edge.Username
	case errors.Is(err, service.ErrSelfFollow), errors.Is(err, service.ErrAlreadyFollowing):
		status = http.StatusOK
		message = err.Error()
	default:
		respondError(c, err)
		return
	}

	page, err := h.relationService.ListFollows(ctx, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}
	page.Message = message

	c.JSON(status, gin.H{"form": dto.FollowForm(), "follows": page})
}

// Unfollow handles POST /review/follow/:id/delete/
func (h *FollowHandler) Unfollow(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrFollowNotFound)
	if !ok {
		return
	}

	if err := h.relationService.UnfollowUser(c.Request.Context(), id, middleware.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}
