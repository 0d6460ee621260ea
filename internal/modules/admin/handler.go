package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/moderation"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already guarded by auth + StaffOnly.
// superAdmin is additionally guarded by SuperAdminOnly.
func (h *Handler) RegisterRoutes(staff, superAdmin *gin.RouterGroup) {
	staff.GET("/admin/places", h.ListPlaces)
	staff.GET("/admin/places/pending", h.PendingPlaces)
	staff.PATCH("/admin/places/:id/status", h.ChangeStatus)
	staff.DELETE("/admin/places/:id", h.DeletePlace)
	staff.GET("/admin/statistics", h.Statistics)

	superAdmin.GET("/admin/users", h.ListUsers)
	superAdmin.PATCH("/admin/users/:id/role", h.ChangeRole)
	superAdmin.DELETE("/admin/users/:id", h.DeleteUser)
}

func actor(c *gin.Context) (int64, domain.UserRole) {
	return c.GetInt64("user_id"), domain.UserRole(c.GetString("role"))
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// PendingPlaces handles GET /api/v1/admin/places/pending
func (h *Handler) PendingPlaces(c *gin.Context) {
	actorID, actorRole := actor(c)
	page, limit := pageParams(c)

	list, total, err := h.service.PendingPlaces(c.Request.Context(), actorID, actorRole, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load pending places")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"places": list,
		"total":  total,
	})
}

// ListPlaces handles GET /api/v1/admin/places?status=
func (h *Handler) ListPlaces(c *gin.Context) {
	actorID, actorRole := actor(c)
	page, limit := pageParams(c)

	status := domain.PlaceStatus(c.Query("status"))
	if status != "" && !domain.ValidStatus(status) {
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown place status")
		return
	}

	list, total, err := h.service.ListPlaces(c.Request.Context(), actorID, actorRole, status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load places")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"places": list,
		"total":  total,
	})
}

// ChangeStatus handles PATCH /api/v1/admin/places/:id/status
func (h *Handler) ChangeStatus(c *gin.Context) {
	actorID, actorRole := actor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid place ID")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	place, err := h.service.ChangePlaceStatus(c.Request.Context(), actorID, actorRole, id, domain.PlaceStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, moderation.ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown place status")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only manage places you created")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to change place status")
		}
		return
	}

	response.Success(c, http.StatusOK, place)
}

// DeletePlace handles DELETE /api/v1/admin/places/:id
func (h *Handler) DeletePlace(c *gin.Context) {
	actorID, actorRole := actor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid place ID")
		return
	}

	if err := h.service.DeletePlace(c.Request.Context(), actorID, actorRole, id); err != nil {
		switch {
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete places you created")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete place")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListUsers handles GET /api/v1/admin/users
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := pageParams(c)

	filter := UserListFilter{
		Role:  c.Query("role"),
		Query: c.Query("q"),
	}

	users, total, err := h.service.ListUsers(c.Request.Context(), filter, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load users")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"users": users,
		"total": total,
	})
}

// ChangeRole handles PATCH /api/v1/admin/users/:id/role
func (h *Handler) ChangeRole(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.service.ChangeRole(c.Request.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Unknown role")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to change user role")
		}
		return
	}

	response.Success(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/admin/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	actorID, _ := actor(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), actorID, id); err != nil {
		switch {
		case errors.Is(err, ErrSelfDelete):
			response.Error(c, http.StatusConflict, "SELF_DELETE", "You cannot delete your own account")
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Statistics handles GET /api/v1/admin/statistics
func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
