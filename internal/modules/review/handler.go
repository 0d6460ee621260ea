package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/response"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/places/:slug/reviews", h.ListByPlace)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/places/:slug/reviews", h.Create)
	r.DELETE("/reviews/:id", h.Delete)
}

// ListByPlace handles GET /api/v1/places/:slug/reviews
func (h *Handler) ListByPlace(c *gin.Context) {
	place, err := h.service.placeRepo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	reviews, total, err := h.service.ListByPlace(c.Request.Context(), place.ID, limit, (page-1)*limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load reviews")
		return
	}

	avg, count, err := h.service.Rating(c.Request.Context(), place.ID)
	if err != nil {
		avg, count = 0, 0
	}

	response.Success(c, http.StatusOK, gin.H{
		"reviews": reviews,
		"total":   total,
		"rating":  gin.H{"average": avg, "count": count},
	})
}

// Create handles POST /api/v1/places/:slug/reviews
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	place, err := h.service.placeRepo.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	review, err := h.service.Create(c.Request.Context(), userID, place.ID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ErrPlaceNotActive):
			response.Error(c, http.StatusConflict, "PLACE_NOT_ACTIVE", "This place cannot be reviewed")
		case errors.Is(err, ErrAlreadyReviewed):
			response.Error(c, http.StatusConflict, "ALREADY_REVIEWED", "You already reviewed this place")
		case errors.Is(err, ErrInvalidRating):
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create review")
		}
		return
	}

	response.Success(c, http.StatusCreated, review)
}

// Delete handles DELETE /api/v1/reviews/:id
func (h *Handler) Delete(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}

	role := domain.UserRole(c.GetString("role"))
	isStaff := role == domain.RoleAdmin || role == domain.RoleSuperAdmin

	if err := h.service.Delete(c.Request.Context(), id, userID, isStaff); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You can only delete your own review")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete review")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
