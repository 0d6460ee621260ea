package moderation

import (
	"context"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
)

// ListingStore is the persistence collaborator holding place rows.
// Implemented by repository.PlaceRepository.
type ListingStore interface {
	Create(ctx context.Context, place *domain.Place) error
	Update(ctx context.Context, place *domain.Place) error
	GetByID(ctx context.Context, id int64) (*domain.Place, error)
}

// NotificationSink writes per-recipient notification rows.
// Implemented by notification.Service.
type NotificationSink interface {
	Insert(ctx context.Context, userID int64, title, message string, t notification.Type, link string) error
}

// RoleDirectory enumerates users by role, used to address the
// new-submission fan-out. Implemented by repository.UserRepository.
type RoleDirectory interface {
	ListIDsByRole(ctx context.Context, role domain.UserRole) ([]int64, error)
}
