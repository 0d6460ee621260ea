package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var review domain.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) GetByPlaceID(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, int64, error) {
	var reviews []domain.Review
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("place_id = ?", placeID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reviews).Error
	return reviews, total, err
}

func (r *ReviewRepository) GetByPlaceAndUser(ctx context.Context, placeID, userID int64) (*domain.Review, error) {
	var review domain.Review
	err := r.db.WithContext(ctx).
		Where("place_id = ? AND user_id = ?", placeID, userID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Review{}, id).Error
}

// AverageRating returns the mean rating and review count for a place
func (r *ReviewRepository) AverageRating(ctx context.Context, placeID int64) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("place_id = ?", placeID).
		Scan(&result).Error
	return result.Avg, result.Count, err
}
