package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/database"
	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

func setupUserRepo(t *testing.T) *UserRepository {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewUserRepository(db)
}

func TestUserCreate_NormalizesEmail(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	u := &domain.User{Email: "  Ahmed@Test.com ", Name: "أحمد", Role: domain.RoleUser}
	require.NoError(t, repo.Create(ctx, u))
	assert.Equal(t, "ahmed@test.com", u.Email)

	found, err := repo.GetByEmail(ctx, "AHMED@test.COM")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)
}

func TestUserDelete(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	u := &domain.User{Email: "gone@test.com", Role: domain.RoleUser}
	require.NoError(t, repo.Create(ctx, u))
	require.NoError(t, repo.Delete(ctx, u.ID))

	_, err := repo.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListIDsByRole(t *testing.T) {
	repo := setupUserRepo(t)
	ctx := context.Background()

	for _, u := range []*domain.User{
		{Email: "a@test.com", Role: domain.RoleSuperAdmin},
		{Email: "b@test.com", Role: domain.RoleSuperAdmin},
		{Email: "c@test.com", Role: domain.RoleUser},
	} {
		require.NoError(t, repo.Create(ctx, u))
	}

	ids, err := repo.ListIDsByRole(ctx, domain.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	ids, err = repo.ListIDsByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Empty(t, ids, "no admins seeded")
}
