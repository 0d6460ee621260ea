package places

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/moderation"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/response"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/validator"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/places", h.List)
	r.GET("/places/:slug", h.GetBySlug)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/places", h.Submit)
	r.GET("/my-places", h.ListMine)
	r.PUT("/places/:id", h.Update)
}

// List handles GET /api/v1/places with filters
func (h *Handler) List(c *gin.Context) {
	var f repository.PlaceFilters

	f.Type = c.Query("type")
	f.Query = c.Query("q")

	if v := c.Query("category_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.CategoryID = id
		}
	}
	if v := c.Query("area_id"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.AreaID = id
		}
	}

	f.Limit = 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 100 {
			f.Limit = parsed
		}
	}
	f.Offset = 0
	if v := c.Query("page"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			f.Offset = (parsed - 1) * f.Limit
		}
	}

	list, total, err := h.service.ListActive(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load places")
		return
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit
	currentPage := (f.Offset / f.Limit) + 1

	response.Success(c, http.StatusOK, gin.H{
		"places": list,
		"pagination": gin.H{
			"page":        currentPage,
			"limit":       f.Limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// GetBySlug handles GET /api/v1/places/:slug
func (h *Handler) GetBySlug(c *gin.Context) {
	place, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load place")
		return
	}
	response.Success(c, http.StatusOK, place)
}

// Submit handles POST /api/v1/places
func (h *Handler) Submit(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req SubmitPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid field values", fieldErrs)
		return
	}

	place, err := h.service.Submit(c.Request.Context(), req, userID)
	if err != nil {
		var verr *moderation.ValidationError
		switch {
		case errors.As(err, &verr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", verr.Error(), verr.Fields)
		case errors.Is(err, repository.ErrSlugTaken):
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "This slug is already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to submit place")
		}
		return
	}

	response.Success(c, http.StatusCreated, place)
}

// ListMine handles GET /api/v1/my-places
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load your places")
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Update handles PUT /api/v1/places/:id
func (h *Handler) Update(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid place ID")
		return
	}

	var req UpdatePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	place, err := h.service.UpdateContent(c.Request.Context(), userID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You don't own this place")
		case errors.Is(err, repository.ErrSlugTaken):
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "This slug is already in use")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update place")
		}
		return
	}

	response.Success(c, http.StatusOK, place)
}
