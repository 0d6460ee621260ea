package admin

import (
	"context"

	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
	DB() *gorm.DB
}

// NotificationCleaner removes a user's inbox when the account goes away.
// Implemented by notification.Repository.
type NotificationCleaner interface {
	DeleteByUser(ctx context.Context, userID int64) error
}

type PlaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
	GetAll(ctx context.Context, f repository.PlaceFilters) ([]domain.Place, int64, error)
	DeleteCascade(ctx context.Context, id int64) error
	DB() *gorm.DB
}

// StatusChanger is the moderation workflow entry point the console drives
type StatusChanger interface {
	ChangeStatus(ctx context.Context, placeID int64, newStatus domain.PlaceStatus, actorID int64) (*domain.Place, error)
}
