package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/response"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.GET("/categories", h.ListCategories)
	r.GET("/areas", h.ListAreas)
	r.GET("/events", h.UpcomingEvents)
	r.GET("/articles", h.ListArticles)
	r.GET("/articles/:slug", h.GetArticle)
}

// RegisterAdminRoutes expects a group guarded by auth + StaffOnly
func (h *Handler) RegisterAdminRoutes(r *gin.RouterGroup) {
	r.POST("/admin/categories", h.CreateCategory)
	r.PUT("/admin/categories/:id", h.UpdateCategory)
	r.DELETE("/admin/categories/:id", h.DeleteCategory)

	r.POST("/admin/areas", h.CreateArea)
	r.DELETE("/admin/areas/:id", h.DeleteArea)

	r.POST("/admin/events", h.CreateEvent)
	r.PUT("/admin/events/:id", h.UpdateEvent)
	r.DELETE("/admin/events/:id", h.DeleteEvent)

	r.POST("/admin/articles", h.CreateArticle)
	r.PUT("/admin/articles/:id", h.UpdateArticle)
	r.DELETE("/admin/articles/:id", h.DeleteArticle)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

/* ---------- CATEGORIES ---------- */

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update category")
		return
	}
	response.Success(c, http.StatusOK, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrCategoryInUse) {
			response.Error(c, http.StatusConflict, "CATEGORY_IN_USE", "Category still has places attached")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete category")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- AREAS ---------- */

func (h *Handler) ListAreas(c *gin.Context) {
	areas, err := h.service.ListAreas(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load areas")
		return
	}
	response.Success(c, http.StatusOK, areas)
}

func (h *Handler) CreateArea(c *gin.Context) {
	var req CreateAreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	area, err := h.service.CreateArea(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create area")
		return
	}
	response.Success(c, http.StatusCreated, area)
}

func (h *Handler) DeleteArea(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteArea(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrAreaInUse) {
			response.Error(c, http.StatusConflict, "AREA_IN_USE", "Area still has places attached")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete area")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- EVENTS ---------- */

func (h *Handler) UpcomingEvents(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	events, err := h.service.UpcomingEvents(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load events")
		return
	}
	response.Success(c, http.StatusOK, events)
}

func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create event")
		return
	}
	response.Success(c, http.StatusCreated, event)
}

func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update event")
		return
	}
	response.Success(c, http.StatusOK, event)
}

func (h *Handler) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete event")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- ARTICLES ---------- */

func (h *Handler) ListArticles(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	articles, total, err := h.service.ListArticles(c.Request.Context(), limit, (page-1)*limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load articles")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"articles": articles,
		"total":    total,
	})
}

func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.service.GetArticle(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Article not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load article")
		return
	}
	if !article.Published {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Article not found")
		return
	}
	response.Success(c, http.StatusOK, article)
}

func (h *Handler) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	article, err := h.service.CreateArticle(c.Request.Context(), req, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create article")
		return
	}
	response.Success(c, http.StatusCreated, article)
}

func (h *Handler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	article, err := h.service.UpdateArticle(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Article not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update article")
		return
	}
	response.Success(c, http.StatusOK, article)
}

func (h *Handler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteArticle(c.Request.Context(), id); err != nil {
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete article")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
