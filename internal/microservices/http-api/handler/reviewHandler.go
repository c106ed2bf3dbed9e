package handler

import (
	"net/http"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
	ticketService service.TicketService
}

func NewReviewHandler(reviewService service.ReviewService, ticketService service.TicketService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		ticketService: ticketService,
	}
}

// RegisterRoutes registers review routes (viewer already authenticated)
func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/review/creation/", h.CreateForm)
	router.POST("/review/creation/", h.Create)
	router.GET("/review/:id/", h.Get)
	router.GET("/review/:id/change/", h.EditForm)
	router.POST("/review/:id/change/", h.Update)
	router.POST("/review/:id/delete/", h.Delete)

	router.GET("/create_review/:ticketId/", h.CreateForTicketForm)
	router.POST("/create_review/:ticketId/", h.CreateForTicket)

	router.GET("/ticketReview/creation/", h.CreateWithTicketForm)
	router.POST("/ticketReview/creation/", h.CreateWithTicket)
}

// binding guarantees Rating is set
func reviewInput(req dto.ReviewFieldsDTO) service.ReviewInput {
	in := service.ReviewInput{Headline: req.Headline, Body: req.Body}
	if req.Rating != nil {
		in.Rating = *req.Rating
	}
	return in
}

// CreateForm handles GET /review/creation/
func (h *ReviewHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ReviewWithTicketIDForm())
}

// Create handles POST /review/creation/, the ticket is named in the body
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), middleware.ViewerID(c), req.TicketID, reviewInput(req.ReviewFieldsDTO))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// CreateForTicketForm handles GET /create_review/:ticketId/ and shows the
// ticket being reviewed
func (h *ReviewHandler) CreateForTicketForm(c *gin.Context) {
	ticketID, ok := pathID(c, "ticketId", service.ErrTicketNotFound)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": dto.ReviewForm(), "ticket": ticket})
}

// CreateForTicket handles POST /create_review/:ticketId/
func (h *ReviewHandler) CreateForTicket(c *gin.Context) {
	ticketID, ok := pathID(c, "ticketId", service.ErrTicketNotFound)
	if !ok {
		return
	}

	var req dto.ReviewFieldsDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), middleware.ViewerID(c), ticketID, reviewInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// CreateWithTicketForm handles GET /ticketReview/creation/
func (h *ReviewHandler) CreateWithTicketForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TicketReviewForm())
}

// CreateWithTicket handles POST /ticketReview/creation/
func (h *ReviewHandler) CreateWithTicket(c *gin.Context) {
	var req dto.CreateTicketReviewDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.reviewService.CreateTicketWithReview(
		c.Request.Context(),
		middleware.ViewerID(c),
		ticketInput(req.CreateTicketDTO),
		reviewInput(req.ReviewFieldsDTO),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// EditForm handles GET /review/:id/change/
func (h *ReviewHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrReviewNotFound)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReviewForEdit(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": dto.ReviewForm(), "review": review})
}

// Update handles POST /review/:id/change/
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrReviewNotFound)
	if !ok {
		return
	}

	var req dto.UpdateReviewDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	review, err := h.reviewService.UpdateReview(c.Request.Context(), id, middleware.ViewerID(c), reviewInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// Delete handles POST /review/:id/delete/
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrReviewNotFound)
	if !ok {
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), id, middleware.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}

// Get handles GET /review/:id/
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrReviewNotFound)
	if !ok {
		return
	}

	review, err := h.reviewService.GetReview(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}
