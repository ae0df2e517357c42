package ports

import (
	"context"

	"github.com/mkargin/shop-registry/internal/domain"
)

// UserRepository — хранилище пользователей (источник истины).
// Отсутствие записи сигнализируется domain.ErrNotFound,
// дубликат email — domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, in *domain.NewUser) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, patch *domain.UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
