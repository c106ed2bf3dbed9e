package handler

import (
	"net/http"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedService service.FeedService
}

func NewFeedHandler(feedService service.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterRoutes registers the feed routes (viewer already authenticated)
func (h *FeedHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/flux/", h.ViewerFeed)
	router.GET("/posts/", h.PersonalFeed)
}

// ViewerFeed handles GET /flux/
func (h *FeedHandler) ViewerFeed(c *gin.Context) {
	var q dto.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	feed, err := h.feedService.ViewerFeed(c.Request.Context(), middleware.ViewerID(c), q.Page, q.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}

// PersonalFeed handles GET /posts/
func (h *FeedHandler) PersonalFeed(c *gin.Context) {
	var q dto.FeedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}

	feed, err := h.feedService.PersonalFeed(c.Request.Context(), middleware.ViewerID(c), q.Page, q.PageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}
