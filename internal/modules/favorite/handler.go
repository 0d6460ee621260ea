package favorite

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/response"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type Handler struct {
	favoriteRepo *repository.FavoriteRepository
	placeRepo    *repository.PlaceRepository
}

func NewHandler(favoriteRepo *repository.FavoriteRepository, placeRepo *repository.PlaceRepository) *Handler {
	return &Handler{favoriteRepo: favoriteRepo, placeRepo: placeRepo}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/favorites/:placeId", h.Toggle)
	r.GET("/favorites", h.List)
}

// Toggle handles POST /api/v1/favorites/:placeId
func (h *Handler) Toggle(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	placeID, err := strconv.ParseInt(c.Param("placeId"), 10, 64)
	if err != nil || placeID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid place ID")
		return
	}

	if _, err := h.placeRepo.GetByID(c.Request.Context(), placeID); err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Place not found")
		return
	}

	favorited, err := h.favoriteRepo.Toggle(c.Request.Context(), userID, placeID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "TOGGLE_FAILED", "Failed to toggle favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"place_id":  placeID,
		"favorited": favorited,
	})
}

// List handles GET /api/v1/favorites
func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	places, err := h.favoriteRepo.ListPlacesByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load favorites")
		return
	}

	response.Success(c, http.StatusOK, places)
}
