package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

var (
	ErrForbidden   = errors.New("forbidden")
	ErrInvalidRole = errors.New("invalid role")
	ErrSelfDelete  = errors.New("cannot delete your own account")
)

type Service struct {
	userRepo   UserRepository
	placeRepo  PlaceRepository
	moderation StatusChanger
	notifs     NotificationCleaner
}

func NewService(userRepo UserRepository, placeRepo PlaceRepository, mod StatusChanger, notifs NotificationCleaner) *Service {
	return &Service{
		userRepo:   userRepo,
		placeRepo:  placeRepo,
		moderation: mod,
		notifs:     notifs,
	}
}

// scopeFor restricts queries for plain admins to the places they created.
// A super_admin sees everything.
func scopeFor(actorID int64, actorRole domain.UserRole, f repository.PlaceFilters) repository.PlaceFilters {
	if actorRole != domain.RoleSuperAdmin {
		f.CreatedBy = actorID
	}
	return f
}

/* -------------------- Moderation queue -------------------- */

// PendingPlaces returns the moderation queue, oldest context first
func (s *Service) PendingPlaces(ctx context.Context, actorID int64, actorRole domain.UserRole, page, limit int) ([]domain.Place, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	f := scopeFor(actorID, actorRole, repository.PlaceFilters{
		Status: domain.StatusPending,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})

	return s.placeRepo.GetAll(ctx, f)
}

// ListPlaces returns every place visible to the actor, optionally by status
func (s *Service) ListPlaces(ctx context.Context, actorID int64, actorRole domain.UserRole, status domain.PlaceStatus, page, limit int) ([]domain.Place, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	f := scopeFor(actorID, actorRole, repository.PlaceFilters{
		Status: status,
		Limit:  limit,
		Offset: (page - 1) * limit,
	})

	return s.placeRepo.GetAll(ctx, f)
}

// ChangePlaceStatus authorizes the actor against the place, then delegates
// the write and the owner notification to the moderation workflow.
func (s *Service) ChangePlaceStatus(ctx context.Context, actorID int64, actorRole domain.UserRole, placeID int64, newStatus domain.PlaceStatus) (*domain.Place, error) {
	if actorRole != domain.RoleSuperAdmin {
		place, err := s.placeRepo.GetByID(ctx, placeID)
		if err != nil {
			return nil, err
		}
		if place.CreatedBy != actorID {
			return nil, ErrForbidden
		}
	}

	return s.moderation.ChangeStatus(ctx, placeID, newStatus, actorID)
}

// DeletePlace removes a place and everything referencing it
func (s *Service) DeletePlace(ctx context.Context, actorID int64, actorRole domain.UserRole, placeID int64) error {
	if actorRole != domain.RoleSuperAdmin {
		place, err := s.placeRepo.GetByID(ctx, placeID)
		if err != nil {
			return err
		}
		if place.CreatedBy != actorID {
			return ErrForbidden
		}
	}

	return s.placeRepo.DeleteCascade(ctx, placeID)
}

/* -------------------- Users -------------------- */

// ListUsers supports simple filters + pagination
func (s *Service) ListUsers(ctx context.Context, filter UserListFilter, page, limit int) ([]domain.User, int, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	q := s.userRepo.DB().WithContext(ctx).Table("users")

	if strings.TrimSpace(filter.Role) != "" {
		q = q.Where("role = ?", strings.TrimSpace(filter.Role))
	}
	if strings.TrimSpace(filter.Query) != "" {
		sv := "%" + strings.ToLower(strings.TrimSpace(filter.Query)) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(name) LIKE ?", sv, sv)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []domain.User
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	// safety: never return the hash
	for i := range users {
		users[i].PasswordHash = ""
	}

	return users, int(total), nil
}

// ChangeRole updates a user's role. Routes restrict this to super_admin.
func (s *Service) ChangeRole(ctx context.Context, userID int64, newRole domain.UserRole) (*domain.User, error) {
	switch newRole {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleSuperAdmin:
	default:
		return nil, ErrInvalidRole
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.Role = newRole
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

// DeleteUser removes an account and its inbox. Places the user created
// stay in the directory; created_by keeps pointing at the removed id.
func (s *Service) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return ErrSelfDelete
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.notifs.DeleteByUser(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, userID)
}

/* -------------------- Statistics -------------------- */

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	var totalUsers int64
	if err := s.userRepo.DB().WithContext(ctx).Table("users").Count(&totalUsers).Error; err != nil {
		return nil, err
	}

	var totalPlaces int64
	if err := s.placeRepo.DB().WithContext(ctx).Table("places").Count(&totalPlaces).Error; err != nil {
		return nil, err
	}

	var activePlaces int64
	if err := s.placeRepo.DB().WithContext(ctx).
		Table("places").
		Where("status = ?", domain.StatusActive).
		Count(&activePlaces).Error; err != nil {
		return nil, err
	}

	var pendingPlaces int64
	if err := s.placeRepo.DB().WithContext(ctx).
		Table("places").
		Where("status = ?", domain.StatusPending).
		Count(&pendingPlaces).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	var todaySubmissions int64
	if err := s.placeRepo.DB().WithContext(ctx).
		Table("places").
		Where("created_at >= ? AND created_at < ?", start, end).
		Count(&todaySubmissions).Error; err != nil {
		return nil, err
	}

	var openTickets int64
	if err := s.placeRepo.DB().WithContext(ctx).
		Table("tickets").
		Where("status = ?", domain.TicketOpen).
		Count(&openTickets).Error; err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		TotalUsers:       int(totalUsers),
		TotalPlaces:      int(totalPlaces),
		ActivePlaces:     int(activePlaces),
		PendingPlaces:    int(pendingPlaces),
		TodaySubmissions: int(todaySubmissions),
		OpenTickets:      int(openTickets),
	}, nil
}
