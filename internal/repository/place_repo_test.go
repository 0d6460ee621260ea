package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/database"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
)

func setupPlaceRepo(t *testing.T) (*PlaceRepository, *gorm.DB) {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewPlaceRepository(db), db
}

func place(name, slug string, status domain.PlaceStatus, createdBy int64) *domain.Place {
	return &domain.Place{
		Name:       name,
		Slug:       slug,
		Type:       domain.PlaceTypeBusiness,
		CategoryID: 1,
		Status:     status,
		CreatedBy:  createdBy,
	}
}

func TestCreate_DuplicateSlug(t *testing.T) {
	repo, _ := setupPlaceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, place("First", "same-slug", domain.StatusPending, 1)))

	err := repo.Create(ctx, place("Second", "same-slug", domain.StatusPending, 2))
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestUpdate_DuplicateSlug(t *testing.T) {
	repo, _ := setupPlaceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, place("First", "first", domain.StatusPending, 1)))
	second := place("Second", "second", domain.StatusPending, 1)
	require.NoError(t, repo.Create(ctx, second))

	second.Slug = "first"
	assert.ErrorIs(t, repo.Update(ctx, second), ErrSlugTaken)
}

func TestGetAll_Filters(t *testing.T) {
	repo, _ := setupPlaceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, place("مطعم النورس", "seagull", domain.StatusActive, 1)))
	require.NoError(t, repo.Create(ctx, place("قهوة الميناء", "port-cafe", domain.StatusActive, 2)))
	require.NoError(t, repo.Create(ctx, place("ورشة الأمانة", "amana", domain.StatusPending, 1)))

	t.Run("by status", func(t *testing.T) {
		list, total, err := repo.GetAll(ctx, PlaceFilters{Status: domain.StatusActive, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, list, 2)
	})

	t.Run("by creator", func(t *testing.T) {
		_, total, err := repo.GetAll(ctx, PlaceFilters{CreatedBy: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("text search matches name", func(t *testing.T) {
		list, total, err := repo.GetAll(ctx, PlaceFilters{Query: "الميناء", Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "port-cafe", list[0].Slug)
	})

	t.Run("pagination", func(t *testing.T) {
		list, total, err := repo.GetAll(ctx, PlaceFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, list, 1)
	})
}

func TestGetBySlug(t *testing.T) {
	repo, _ := setupPlaceRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, place("مطعم النورس", "seagull", domain.StatusActive, 1)))

	found, err := repo.GetBySlug(ctx, "seagull")
	require.NoError(t, err)
	assert.Equal(t, "مطعم النورس", found.Name)

	_, err = repo.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestGetByID_RepeatedReadsAgree(t *testing.T) {
	repo, _ := setupPlaceRepo(t)
	ctx := context.Background()

	created := place("مطعم النورس", "seagull", domain.StatusActive, 1)
	require.NoError(t, repo.Create(ctx, created))

	first, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	second, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second, "reading with no intervening write must not change anything")
}

func TestDeleteCascade(t *testing.T) {
	repo, db := setupPlaceRepo(t)
	ctx := context.Background()

	p := place("مطعم النورس", "seagull", domain.StatusActive, 1)
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, db.Create(&domain.Review{PlaceID: p.ID, UserID: 2, Rating: 5}).Error)
	require.NoError(t, db.Create(&domain.Favorite{PlaceID: p.ID, UserID: 2}).Error)

	linkedTo := fmt.Sprintf("/places/%d", p.ID)
	other := "/my-places"
	require.NoError(t, db.Create(&notification.Notification{
		UserID: 2, Type: notification.TypePlaceApproval, Title: "t", Message: "m", Link: &linkedTo,
	}).Error)
	require.NoError(t, db.Create(&notification.Notification{
		UserID: 2, Type: notification.TypeSystem, Title: "t", Message: "m", Link: &other,
	}).Error)

	require.NoError(t, repo.DeleteCascade(ctx, p.ID))

	var reviews, favorites, placeRows, remaining int64
	db.Model(&domain.Review{}).Count(&reviews)
	db.Model(&domain.Favorite{}).Count(&favorites)
	db.Model(&domain.Place{}).Count(&placeRows)
	db.Model(&notification.Notification{}).Count(&remaining)

	assert.Zero(t, reviews)
	assert.Zero(t, favorites)
	assert.Zero(t, placeRows)
	assert.Equal(t, int64(1), remaining, "unrelated notifications survive")
}
