package ports

import (
	"context"

	"github.com/mkargin/shop-registry/internal/domain"
)

// UserService — прикладные операции над пользователями (контракт для транспорта).
type UserService interface {
	CreateUser(ctx context.Context, in *domain.NewUser) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, id int64, patch *domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
