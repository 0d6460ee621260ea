package moderation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/notification"
)

const (
	linkMyPlaces        = "/my-places"
	linkModerationQueue = "/admin/places?status=pending"
)

// Service orchestrates the side effects around a place submission or status
// change: the authoritative place write first, then best-effort notification
// fan-out. Notification failures never roll back or surface to the caller.
type Service struct {
	places ListingStore
	notifs NotificationSink
	roles  RoleDirectory
}

func NewService(places ListingStore, notifs NotificationSink, roles RoleDirectory) *Service {
	return &Service{
		places: places,
		notifs: notifs,
		roles:  roles,
	}
}

// SubmitPlace validates the submission, forces it into pending and stores it,
// then notifies the submitter and every super admin.
//
// The status is forced server-side regardless of what the client sent:
// a submitter must never be able to self-approve.
func (s *Service) SubmitPlace(ctx context.Context, place *domain.Place, submitterID int64) (*domain.Place, error) {
	var missing []string
	if strings.TrimSpace(place.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(place.Slug) == "" {
		missing = append(missing, "slug")
	}
	if place.CategoryID <= 0 {
		missing = append(missing, "category_id")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Fields: missing}
	}

	place.CreatedBy = submitterID
	place.Status = domain.StatusPending

	if err := s.places.Create(ctx, place); err != nil {
		return nil, err
	}

	s.notify(ctx, submitterID,
		"تم استلام طلبك",
		fmt.Sprintf("طلب إضافة \"%s\" قيد المراجعة من فريق دليل السويس", place.Name),
		notification.TypeSystem,
		linkMyPlaces,
	)

	admins, err := s.roles.ListIDsByRole(ctx, domain.RoleSuperAdmin)
	if err != nil {
		log.Printf("fanout_skipped place_id=%d error=%v", place.ID, err)
		return place, nil
	}
	for _, adminID := range admins {
		s.notify(ctx, adminID,
			"طلب جديد بانتظار المراجعة",
			fmt.Sprintf("تمت إضافة \"%s\" وهو بانتظار الموافقة", place.Name),
			notification.TypePlaceApproval,
			linkModerationQueue,
		)
	}

	return place, nil
}

// ChangeStatus moves a place to newStatus and notifies the owner when the
// place becomes visible (active) or is taken down (inactive). Transitions
// into pending and same-status writes stay silent.
//
// The old status is read before the write so the transition can be compared.
// Two concurrent calls for the same place can both observe the same old
// value; with a handful of admins this race is accepted rather than locked.
func (s *Service) ChangeStatus(ctx context.Context, placeID int64, newStatus domain.PlaceStatus, actorID int64) (*domain.Place, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}

	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}

	oldStatus := place.Status
	place.Status = newStatus

	if err := s.places.Update(ctx, place); err != nil {
		return nil, err
	}

	log.Printf("place_status_changed place_id=%d old=%s new=%s actor_id=%d",
		place.ID, oldStatus, newStatus, actorID)

	switch {
	case newStatus == domain.StatusActive && oldStatus != domain.StatusActive:
		s.notify(ctx, place.CreatedBy,
			"تم تفعيل مكانك",
			fmt.Sprintf("تهانينا! أصبح \"%s\" ظاهراً الآن في دليل السويس", place.Name),
			notification.TypePlaceApproval,
			linkMyPlaces,
		)
	case newStatus == domain.StatusInactive && oldStatus != domain.StatusInactive:
		s.notify(ctx, place.CreatedBy,
			"تم إيقاف مكانك",
			fmt.Sprintf("تم إيقاف \"%s\" من قبل الإدارة", place.Name),
			notification.TypeAlert,
			linkMyPlaces,
		)
	}

	return place, nil
}

// notify writes one notification row. Failures are logged and swallowed:
// a lost notification must not fail the business action that caused it.
func (s *Service) notify(ctx context.Context, userID int64, title, message string, t notification.Type, link string) {
	if err := s.notifs.Insert(ctx, userID, title, message, t, link); err != nil {
		log.Printf("notify_failed user_id=%d type=%s error=%v", userID, t, err)
	}
}
