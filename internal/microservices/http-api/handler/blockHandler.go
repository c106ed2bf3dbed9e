package handler

import (
	"net/http"

	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type BlockHandler struct {
	relationService service.RelationService
}

func NewBlockHandler(relationService service.RelationService) *BlockHandler {
	return &BlockHandler{relationService: relationService}
}

// RegisterRoutes registers block routes. GET mutates too, so that plain
// links work from the pages that list users.
func (h *BlockHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/block_user/:userId/", h.Block)
	router.POST("/block_user/:userId/", h.Block)
	router.GET("/unblock_user/:userId/", h.Unblock)
	router.POST("/unblock_user/:userId/", h.Unblock)
}

// Block handles GET and POST /block_user/:userId/
func (h *BlockHandler) Block(c *gin.Context) {
	targetID := c.Param("userId")
	if err := h.relationService.BlockUser(c.Request.Context(), middleware.ViewerID(c), targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user blocked", "user_id": targetID})
}

// Unblock handles GET and POST /unblock_user/:userId/
func (h *BlockHandler) Unblock(c *gin.Context) {
	targetID := c.Param("userId")
	if err := h.relationService.UnblockUser(c.Request.Context(), middleware.ViewerID(c), targetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "user unblocked", "user_id": targetID})
}
