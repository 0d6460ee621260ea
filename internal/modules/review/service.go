package review

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

var (
	ErrPlaceNotActive  = errors.New("place is not active")
	ErrAlreadyReviewed = errors.New("you already reviewed this place")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotOwner        = errors.New("you can only delete your own review")
)

// NotificationSender lets the place owner hear about new reviews, best-effort
type NotificationSender interface {
	Insert(ctx context.Context, userID int64, title, message string, t notification.Type, link string) error
}

type Service struct {
	reviewRepo *repository.ReviewRepository
	placeRepo  *repository.PlaceRepository
	notifs     NotificationSender
}

func NewService(reviewRepo *repository.ReviewRepository, placeRepo *repository.PlaceRepository, notifs NotificationSender) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		placeRepo:  placeRepo,
		notifs:     notifs,
	}
}

// Create adds a review on an active place, one per user per place
func (s *Service) Create(ctx context.Context, userID, placeID int64, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place.Status != domain.StatusActive {
		return nil, ErrPlaceNotActive
	}

	if _, err := s.reviewRepo.GetByPlaceAndUser(ctx, placeID, userID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &domain.Review{
		PlaceID: placeID,
		UserID:  userID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if s.notifs != nil && place.CreatedBy != userID {
		err := s.notifs.Insert(ctx, place.CreatedBy,
			"تقييم جديد",
			fmt.Sprintf("حصل \"%s\" على تقييم جديد (%d/5)", place.Name, rating),
			notification.TypeSystem,
			fmt.Sprintf("/places/%s", place.Slug),
		)
		if err != nil {
			log.Printf("notify_failed user_id=%d type=%s error=%v", place.CreatedBy, notification.TypeSystem, err)
		}
	}

	return review, nil
}

func (s *Service) ListByPlace(ctx context.Context, placeID int64, limit, offset int) ([]domain.Review, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reviewRepo.GetByPlaceID(ctx, placeID, limit, offset)
}

// Rating returns the average rating and review count for the place header
func (s *Service) Rating(ctx context.Context, placeID int64) (float64, int64, error) {
	return s.reviewRepo.AverageRating(ctx, placeID)
}

// Delete removes the caller's own review; staff can remove any
func (s *Service) Delete(ctx context.Context, reviewID, userID int64, isStaff bool) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID && !isStaff {
		return ErrNotOwner
	}
	return s.reviewRepo.Delete(ctx, reviewID)
}
