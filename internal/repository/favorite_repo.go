package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) DB() *gorm.DB { return r.db }

// Toggle adds the favorite if absent, removes it if present.
// Returns true when the place is now favorited.
func (r *FavoriteRepository) Toggle(ctx context.Context, userID, placeID int64) (bool, error) {
	var fav domain.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		First(&fav).Error

	if err == nil {
		if err := r.db.WithContext(ctx).Delete(&fav).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav = domain.Favorite{UserID: userID, PlaceID: placeID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *FavoriteRepository) ListPlacesByUser(ctx context.Context, userID int64) ([]domain.Place, error) {
	var places []domain.Place
	err := r.db.WithContext(ctx).
		Joins("JOIN favorites ON favorites.place_id = places.id").
		Where("favorites.user_id = ? AND places.status = ?", userID, domain.StatusActive).
		Order("favorites.created_at DESC").
		Find(&places).Error
	return places, err
}

func (r *FavoriteRepository) IsFavorited(ctx context.Context, userID, placeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Favorite{}).
		Where("user_id = ? AND place_id = ?", userID, placeID).
		Count(&count).Error
	return count > 0, err
}
