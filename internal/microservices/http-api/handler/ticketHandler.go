package handler

import (
	"net/http"

	"litreview/internal/microservices/http-api/dto"
	"litreview/internal/microservices/http-api/middleware"
	"litreview/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketService service.TicketService
}

func NewTicketHandler(ticketService service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// RegisterRoutes registers ticket routes (viewer already authenticated)
func (h *TicketHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/ticket/creation/", h.CreateForm)
	router.POST("/ticket/creation/", h.Create)
	router.GET("/ticket/:id/", h.Get)
	router.GET("/ticket/:id/change/", h.EditForm)
	router.POST("/ticket/:id/change/", h.Update)
	router.POST("/ticket/:id/delete/", h.Delete)
}

func ticketInput(req dto.CreateTicketDTO) service.TicketInput {
	return service.TicketInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
	}
}

// CreateForm handles GET /ticket/creation/
func (h *TicketHandler) CreateForm(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TicketForm())
}

// Create handles POST /ticket/creation/
func (h *TicketHandler) Create(c *gin.Context) {
	var req dto.CreateTicketDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ticket, err := h.ticketService.CreateTicket(c.Request.Context(), middleware.ViewerID(c), ticketInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ticket)
}

// EditForm handles GET /ticket/:id/change/ and returns the current values
func (h *TicketHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrTicketNotFound)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicketForEdit(c.Request.Context(), id, middleware.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"form": dto.TicketForm(), "ticket": ticket})
}

// Update handles POST /ticket/:id/change/
func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrTicketNotFound)
	if !ok {
		return
	}

	var req dto.UpdateTicketDTO
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ticket, err := h.ticketService.UpdateTicket(c.Request.Context(), id, middleware.ViewerID(c), ticketInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// Delete handles POST /ticket/:id/delete/
func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrTicketNotFound)
	if !ok {
		return
	}

	if err := h.ticketService.DeleteTicket(c.Request.Context(), id, middleware.ViewerID(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ticket deleted"})
}

// Get handles GET /ticket/:id/
func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", service.ErrTicketNotFound)
	if !ok {
		return
	}

	ticket, err := h.ticketService.GetTicket(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ticket)
}
