package support

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(authed, staff *gin.RouterGroup) {
	authed.POST("/support/tickets", h.Open)
	authed.GET("/support/tickets", h.ListMine)
	authed.POST("/support/tickets/:id/close", h.Close)

	staff.GET("/admin/support/tickets", h.ListAll)
	staff.POST("/admin/support/tickets/:id/reply", h.Reply)
}

type openTicketRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required"`
}

type replyRequest struct {
	Reply string `json:"reply" binding:"required"`
}

func (h *Handler) Open(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req openTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ticket, err := h.service.Open(c.Request.Context(), userID, req.Subject, req.Message)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to open ticket")
		return
	}
	response.Success(c, http.StatusCreated, ticket)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	tickets, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list tickets")
		return
	}
	response.Success(c, http.StatusOK, tickets)
}

func (h *Handler) ListAll(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := domain.TicketStatus(c.Query("status"))

	tickets, total, err := h.service.ListAll(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list tickets")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tickets": tickets, "total": total})
}

func (h *Handler) Reply(c *gin.Context) {
	adminID := c.GetInt64("user_id")

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid ticket id")
		return
	}

	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	ticket, err := h.service.Reply(c.Request.Context(), ticketID, adminID, req.Reply)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "TICKET_NOT_FOUND", "ticket not found")
	case errors.Is(err, ErrTicketClosed):
		response.Error(c, http.StatusConflict, "TICKET_CLOSED", "ticket is already closed")
	case errors.Is(err, ErrEmptyReply):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "reply is required")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to reply")
	default:
		response.Success(c, http.StatusOK, ticket)
	}
}

func (h *Handler) Close(c *gin.Context) {
	actorID := c.GetInt64("user_id")
	role := domain.UserRole(c.GetString("role"))

	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid ticket id")
		return
	}

	ticket, err := h.service.Close(c.Request.Context(), ticketID, actorID, role.IsStaff())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "TICKET_NOT_FOUND", "ticket not found")
	case errors.Is(err, ErrNotTicketUser):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "not your ticket")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to close ticket")
	default:
		response.Success(c, http.StatusOK, ticket)
	}
}
