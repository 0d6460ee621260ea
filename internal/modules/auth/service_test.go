package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

type fakeUsers struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*domain.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	u.ID = f.nextID
	f.nextID++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeIssuer struct{}

func (fakeIssuer) GenerateToken(userID int64, role domain.UserRole) (string, error) {
	return "token", nil
}

func TestRegister_AlwaysPlainUser(t *testing.T) {
	users := newFakeUsers()
	svc := NewService(users, fakeIssuer{})

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Ahmed@Test.com",
		Password: "Password123!",
		Name:     "Ahmed",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "ahmed@test.com", user.Email, "email is normalized")
	assert.NotEmpty(t, token)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password123!")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := newFakeUsers()
	svc := NewService(users, fakeIssuer{})

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@test.com", Password: "Password123!", Name: "A",
	})
	require.NoError(t, err)

	_, _, err = svc.Register(context.Background(), RegisterRequest{
		Email: "a@test.com", Password: "OtherPass123!", Name: "B",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	users := newFakeUsers()
	svc := NewService(users, fakeIssuer{})

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Email: "a@test.com", Password: "Password123!", Name: "A",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, token, err := svc.Login(context.Background(), LoginRequest{
			Email: "a@test.com", Password: "Password123!",
		})
		require.NoError(t, err)
		assert.Equal(t, "a@test.com", user.Email)
		assert.Equal(t, "token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), LoginRequest{
			Email: "a@test.com", Password: "nope",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(context.Background(), LoginRequest{
			Email: "missing@test.com", Password: "Password123!",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
