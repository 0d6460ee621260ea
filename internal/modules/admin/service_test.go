package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/repository"
)

type fakePlaces struct {
	places      map[int64]*domain.Place
	lastFilters repository.PlaceFilters
	deleted     []int64
}

func newFakePlaces(places ...*domain.Place) *fakePlaces {
	f := &fakePlaces{places: map[int64]*domain.Place{}}
	for _, p := range places {
		f.places[p.ID] = p
	}
	return f
}

func (f *fakePlaces) GetByID(_ context.Context, id int64) (*domain.Place, error) {
	if p, ok := f.places[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePlaces) GetAll(_ context.Context, filters repository.PlaceFilters) ([]domain.Place, int64, error) {
	f.lastFilters = filters
	var out []domain.Place
	for _, p := range f.places {
		if filters.Status != "" && p.Status != filters.Status {
			continue
		}
		if filters.CreatedBy != 0 && p.CreatedBy != filters.CreatedBy {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakePlaces) DeleteCascade(_ context.Context, id int64) error {
	delete(f.places, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakePlaces) DB() *gorm.DB { return nil }

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) DB() *gorm.DB { return nil }

type fakeNotifCleaner struct {
	cleaned []int64
}

func (f *fakeNotifCleaner) DeleteByUser(_ context.Context, userID int64) error {
	f.cleaned = append(f.cleaned, userID)
	return nil
}

type fakeModeration struct {
	calls []int64
}

func (f *fakeModeration) ChangeStatus(_ context.Context, placeID int64, newStatus domain.PlaceStatus, actorID int64) (*domain.Place, error) {
	f.calls = append(f.calls, placeID)
	return &domain.Place{ID: placeID, Status: newStatus}, nil
}

func TestPendingPlaces_PlainAdminIsScoped(t *testing.T) {
	places := newFakePlaces(
		&domain.Place{ID: 1, Status: domain.StatusPending, CreatedBy: 10},
		&domain.Place{ID: 2, Status: domain.StatusPending, CreatedBy: 20},
	)
	svc := NewService(&fakeUserRepo{}, places, &fakeModeration{}, &fakeNotifCleaner{})

	list, total, err := svc.PendingPlaces(context.Background(), 10, domain.RoleAdmin, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	assert.Equal(t, int64(10), list[0].CreatedBy)
	assert.Equal(t, int64(10), places.lastFilters.CreatedBy)
}

func TestPendingPlaces_SuperAdminSeesEverything(t *testing.T) {
	places := newFakePlaces(
		&domain.Place{ID: 1, Status: domain.StatusPending, CreatedBy: 10},
		&domain.Place{ID: 2, Status: domain.StatusPending, CreatedBy: 20},
	)
	svc := NewService(&fakeUserRepo{}, places, &fakeModeration{}, &fakeNotifCleaner{})

	_, total, err := svc.PendingPlaces(context.Background(), 99, domain.RoleSuperAdmin, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Zero(t, places.lastFilters.CreatedBy)
}

func TestChangePlaceStatus_OwnershipCheck(t *testing.T) {
	places := newFakePlaces(&domain.Place{ID: 5, Status: domain.StatusPending, CreatedBy: 10})
	mod := &fakeModeration{}
	svc := NewService(&fakeUserRepo{}, places, mod, &fakeNotifCleaner{})

	t.Run("plain admin cannot touch another admin's place", func(t *testing.T) {
		_, err := svc.ChangePlaceStatus(context.Background(), 20, domain.RoleAdmin, 5, domain.StatusActive)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Empty(t, mod.calls, "moderation must not be reached")
	})

	t.Run("plain admin can moderate their own place", func(t *testing.T) {
		place, err := svc.ChangePlaceStatus(context.Background(), 10, domain.RoleAdmin, 5, domain.StatusActive)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusActive, place.Status)
	})

	t.Run("super admin skips the ownership check", func(t *testing.T) {
		_, err := svc.ChangePlaceStatus(context.Background(), 999, domain.RoleSuperAdmin, 5, domain.StatusInactive)
		assert.NoError(t, err)
	})

	t.Run("missing place", func(t *testing.T) {
		_, err := svc.ChangePlaceStatus(context.Background(), 10, domain.RoleAdmin, 404, domain.StatusActive)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDeletePlace_OwnershipCheck(t *testing.T) {
	places := newFakePlaces(&domain.Place{ID: 7, CreatedBy: 10})
	svc := NewService(&fakeUserRepo{}, places, &fakeModeration{}, &fakeNotifCleaner{})

	err := svc.DeletePlace(context.Background(), 20, domain.RoleAdmin, 7)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, places.deleted)

	require.NoError(t, svc.DeletePlace(context.Background(), 10, domain.RoleAdmin, 7))
	assert.Equal(t, []int64{7}, places.deleted)
}

func TestChangeRole(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Email: "a@test.com", Role: domain.RoleUser, PasswordHash: "hash"},
	}}
	svc := NewService(users, newFakePlaces(), &fakeModeration{}, &fakeNotifCleaner{})

	t.Run("promote to admin", func(t *testing.T) {
		u, err := svc.ChangeRole(context.Background(), 1, domain.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, u.Role)
		assert.Empty(t, u.PasswordHash, "hash never leaves the service")
		assert.Equal(t, domain.RoleAdmin, users.users[1].Role)
	})

	t.Run("unknown role is rejected", func(t *testing.T) {
		_, err := svc.ChangeRole(context.Background(), 1, "moderator")
		assert.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.ChangeRole(context.Background(), 404, domain.RoleAdmin)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		1: {ID: 1, Email: "super@test.com", Role: domain.RoleSuperAdmin},
		2: {ID: 2, Email: "b@test.com", Role: domain.RoleUser},
	}}
	cleaner := &fakeNotifCleaner{}
	svc := NewService(users, newFakePlaces(), &fakeModeration{}, cleaner)

	t.Run("self delete is rejected", func(t *testing.T) {
		err := svc.DeleteUser(context.Background(), 1, 1)
		assert.ErrorIs(t, err, ErrSelfDelete)
		assert.Empty(t, cleaner.cleaned)
	})

	t.Run("missing user", func(t *testing.T) {
		err := svc.DeleteUser(context.Background(), 1, 404)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("removes the user and their inbox", func(t *testing.T) {
		require.NoError(t, svc.DeleteUser(context.Background(), 1, 2))
		assert.Equal(t, []int64{2}, cleaner.cleaned)
		_, ok := users.users[2]
		assert.False(t, ok)
	})
}
