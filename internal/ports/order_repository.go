package ports

import (
	"context"

	"github.com/mkargin/shop-registry/internal/domain"
)

// OrderRepository — хранилище заказов. Отсутствие записи — domain.ErrNotFound.
type OrderRepository interface {
	Create(ctx context.Context, in *domain.NewOrder) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	Update(ctx context.Context, id int64, patch *domain.OrderPatch) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
