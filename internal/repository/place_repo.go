package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

// ErrSlugTaken is returned when a place insert/update hits the unique slug
// index. Callers branch on this instead of matching driver error text.
var ErrSlugTaken = errors.New("slug already taken")

type PlaceFilters struct {
	Status     domain.PlaceStatus
	CategoryID int64
	AreaID     int64
	Type       string
	Query      string
	CreatedBy  int64
	Limit      int
	Offset     int
}

type PlaceRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) DB() *gorm.DB {
	return r.db
}

// GetAll returns places matching the filters, newest first
func (r *PlaceRepository) GetAll(ctx context.Context, f PlaceFilters) ([]domain.Place, int64, error) {
	var places []domain.Place
	var total int64

	q := r.db.WithContext(ctx).Model(&domain.Place{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.AreaID > 0 {
		q = q.Where("area_id = ?", f.AreaID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.CreatedBy > 0 {
		q = q.Where("created_by = ?", f.CreatedBy)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		sv := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", sv, sv)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&places).Error

	return places, total, err
}

func (r *PlaceRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	var place domain.Place
	err := r.db.WithContext(ctx).First(&place, id).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) GetBySlug(ctx context.Context, slug string) (*domain.Place, error) {
	var place domain.Place
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&place).Error
	if err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *PlaceRepository) Create(ctx context.Context, place *domain.Place) error {
	if err := r.db.WithContext(ctx).Create(place).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrSlugTaken, place.Slug)
		}
		return err
	}
	return nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *domain.Place) error {
	if err := r.db.WithContext(ctx).Save(place).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrSlugTaken, place.Slug)
		}
		return err
	}
	return nil
}

// DeleteCascade removes a place together with the rows that reference it
// (reviews, favorites, notifications deep-linking to it) in one transaction
func (r *PlaceRepository) DeleteCascade(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("place_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("place_id = ?", id).Delete(&domain.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM notifications WHERE link = ?", fmt.Sprintf("/places/%d", id)).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Place{}, id).Error
	})
}

// isUniqueViolation recognizes unique index violations from both backends:
// gorm translated errors, raw pgx errors (23505) and the sqlite message.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
