package places

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/modules/moderation"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type Service struct {
	placeRepo  *repository.PlaceRepository
	moderation *moderation.Service
}

func NewService(placeRepo *repository.PlaceRepository, mod *moderation.Service) *Service {
	return &Service{placeRepo: placeRepo, moderation: mod}
}

/* ---------- PUBLIC ---------- */

// ListActive returns publicly visible places matching the filters
func (s *Service) ListActive(ctx context.Context, f repository.PlaceFilters) ([]domain.Place, int64, error) {
	f.Status = domain.StatusActive
	f.CreatedBy = 0
	return s.placeRepo.GetAll(ctx, f)
}

// GetBySlug returns an active place for the public detail page
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Place, error) {
	place, err := s.placeRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if place.Status != domain.StatusActive {
		// non-active places look like they don't exist to the public
		return nil, ErrNotFound
	}
	return place, nil
}

/* ---------- OWNER ---------- */

// Submit runs the moderation workflow for a new listing
func (s *Service) Submit(ctx context.Context, req SubmitPlaceRequest, submitterID int64) (*domain.Place, error) {
	place := &domain.Place{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Address:       req.Address,
		Images:        req.Images,
		Type:          domain.PlaceType(req.Type),
		CategoryID:    req.CategoryID,
		AreaID:        req.AreaID,
		Phone:         req.Phone,
		Whatsapp:      req.Whatsapp,
		Website:       req.Website,
		SocialLinks:   req.SocialLinks,
		GoogleMapsURL: req.GoogleMapsURL,
		OpensAt:       req.OpensAt,
		ClosesAt:      req.ClosesAt,
		Status:        domain.PlaceStatus(req.Status),
	}
	if place.Type == "" {
		place.Type = domain.PlaceTypeBusiness
	}
	return s.moderation.SubmitPlace(ctx, place, submitterID)
}

// ListMine returns all places created by the user, whatever their status
func (s *Service) ListMine(ctx context.Context, userID int64) ([]domain.Place, error) {
	list, _, err := s.placeRepo.GetAll(ctx, repository.PlaceFilters{
		CreatedBy: userID,
		Limit:     100,
	})
	return list, err
}

// UpdateContent lets the owner edit content fields. Status, slug and
// created_by are untouchable here; status moves only through moderation.
func (s *Service) UpdateContent(ctx context.Context, userID, placeID int64, req UpdatePlaceRequest) (*domain.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if place.CreatedBy != userID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Images != nil {
		place.Images = *req.Images
	}
	if req.Type != nil {
		place.Type = domain.PlaceType(*req.Type)
	}
	if req.CategoryID != nil {
		place.CategoryID = *req.CategoryID
	}
	if req.AreaID != nil {
		place.AreaID = req.AreaID
	}
	if req.Phone != nil {
		place.Phone = *req.Phone
	}
	if req.Whatsapp != nil {
		place.Whatsapp = *req.Whatsapp
	}
	if req.Website != nil {
		place.Website = *req.Website
	}
	if req.SocialLinks != nil {
		place.SocialLinks = *req.SocialLinks
	}
	if req.GoogleMapsURL != nil {
		place.GoogleMapsURL = *req.GoogleMapsURL
	}
	if req.OpensAt != nil {
		place.OpensAt = req.OpensAt
	}
	if req.ClosesAt != nil {
		place.ClosesAt = req.ClosesAt
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}
