package user

import (
	"context"

	"github.com/Raimguhinov/alarmlog/internal/domain"
)

// Repository is the User Store. Lookups of absent users return domain.ErrNotFound,
// Create of a taken name returns domain.ErrUserExists.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
	SetPrivilege(ctx context.Context, id int64, p domain.Privilege) error
}
