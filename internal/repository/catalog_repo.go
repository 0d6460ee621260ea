package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

// ErrCategoryInUse is returned when deleting a category that still has places
var ErrCategoryInUse = errors.New("category still referenced by places")

// ErrAreaInUse is returned when deleting an area that still has places
var ErrAreaInUse = errors.New("area still referenced by places")

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) DB() *gorm.DB { return r.db }

func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete refuses to remove a category that still has places attached
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Place{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return r.db.WithContext(ctx).Delete(&domain.Category{}, id).Error
}

type AreaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) *AreaRepository {
	return &AreaRepository{db: db}
}

func (r *AreaRepository) DB() *gorm.DB { return r.db }

func (r *AreaRepository) GetAll(ctx context.Context) ([]domain.Area, error) {
	var areas []domain.Area
	err := r.db.WithContext(ctx).Order("name ASC").Find(&areas).Error
	return areas, err
}

func (r *AreaRepository) GetByID(ctx context.Context, id int64) (*domain.Area, error) {
	var area domain.Area
	if err := r.db.WithContext(ctx).First(&area, id).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *AreaRepository) Create(ctx context.Context, a *domain.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AreaRepository) Update(ctx context.Context, a *domain.Area) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AreaRepository) Delete(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Place{}).
		Where("area_id = ?", id).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAreaInUse
	}
	return r.db.WithContext(ctx).Delete(&domain.Area{}, id).Error
}

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) DB() *gorm.DB { return r.db }

// GetUpcoming returns events that have not ended yet, earliest first
func (r *EventRepository) GetUpcoming(ctx context.Context, limit int) ([]domain.Event, error) {
	var events []domain.Event
	now := time.Now()
	err := r.db.WithContext(ctx).
		Where("starts_at >= ? OR (ends_at IS NOT NULL AND ends_at >= ?)", now, now).
		Order("starts_at ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

func (r *EventRepository) GetAll(ctx context.Context, limit, offset int) ([]domain.Event, int64, error) {
	var events []domain.Event
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Event{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("starts_at DESC").Limit(limit).Offset(offset).Find(&events).Error
	return events, total, err
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var event domain.Event
	if err := r.db.WithContext(ctx).First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Event{}, id).Error
}

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

func (r *ArticleRepository) DB() *gorm.DB { return r.db }

func (r *ArticleRepository) GetPublished(ctx context.Context, limit, offset int) ([]domain.Article, int64, error) {
	var articles []domain.Article
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("published = ?", true)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("published_at DESC").Limit(limit).Offset(offset).Find(&articles).Error
	return articles, total, err
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) GetByID(ctx context.Context, id int64) (*domain.Article, error) {
	var article domain.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ArticleRepository) Update(ctx context.Context, a *domain.Article) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Article{}, id).Error
}
