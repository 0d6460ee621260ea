package catalog

import (
	"context"
	"time"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/pkg/utils"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type Service struct {
	categoryRepo *repository.CategoryRepository
	areaRepo     *repository.AreaRepository
	eventRepo    *repository.EventRepository
	articleRepo  *repository.ArticleRepository
}

func NewService(
	categoryRepo *repository.CategoryRepository,
	areaRepo *repository.AreaRepository,
	eventRepo *repository.EventRepository,
	articleRepo *repository.ArticleRepository,
) *Service {
	return &Service{categoryRepo, areaRepo, eventRepo, articleRepo}
}

/* ---------- CATEGORIES ---------- */

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	category := &domain.Category{
		Name:      req.Name,
		Slug:      slug,
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.categoryRepo.Delete(ctx, id)
}

/* ---------- AREAS ---------- */

func (s *Service) ListAreas(ctx context.Context) ([]domain.Area, error) {
	return s.areaRepo.GetAll(ctx)
}

func (s *Service) CreateArea(ctx context.Context, req CreateAreaRequest) (*domain.Area, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	area := &domain.Area{Name: req.Name, Slug: slug}
	if err := s.areaRepo.Create(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *Service) DeleteArea(ctx context.Context, id int64) error {
	return s.areaRepo.Delete(ctx, id)
}

/* ---------- EVENTS ---------- */

func (s *Service) UpcomingEvents(ctx context.Context, limit int) ([]domain.Event, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return s.eventRepo.GetUpcoming(ctx, limit)
}

func (s *Service) CreateEvent(ctx context.Context, req CreateEventRequest, createdBy int64) (*domain.Event, error) {
	event := &domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Image:       req.Image,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		CreatedBy:   createdBy,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) UpdateEvent(ctx context.Context, id int64, req UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	return s.eventRepo.Delete(ctx, id)
}

/* ---------- ARTICLES ---------- */

func (s *Service) ListArticles(ctx context.Context, limit, offset int) ([]domain.Article, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.articleRepo.GetPublished(ctx, limit, offset)
}

func (s *Service) GetArticle(ctx context.Context, slug string) (*domain.Article, error) {
	return s.articleRepo.GetBySlug(ctx, slug)
}

func (s *Service) CreateArticle(ctx context.Context, req CreateArticleRequest, createdBy int64) (*domain.Article, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}

	article := &domain.Article{
		Title:      req.Title,
		Slug:       slug,
		Body:       req.Body,
		CoverImage: req.CoverImage,
		Published:  req.Published,
		CreatedBy:  createdBy,
	}
	if article.Published {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *Service) UpdateArticle(ctx context.Context, id int64, req UpdateArticleRequest) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Body != nil {
		article.Body = *req.Body
	}
	if req.CoverImage != nil {
		article.CoverImage = *req.CoverImage
	}
	if req.Published != nil {
		wasPublished := article.Published
		article.Published = *req.Published
		if article.Published && !wasPublished {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *Service) DeleteArticle(ctx context.Context, id int64) error {
	return s.articleRepo.Delete(ctx, id)
}
