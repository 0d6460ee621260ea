package auth

import (
	"context"

	"github.com/Shabanaly/daleel-al-suez-sub000/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type tokenIssuer interface {
	GenerateToken(userID int64, role domain.UserRole) (string, error)
}
