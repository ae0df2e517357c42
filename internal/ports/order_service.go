package ports

import (
	"context"

	"github.com/mkargin/shop-registry/internal/domain"
)

// OrderService — прикладные операции над заказами (контракт для транспорта).
type OrderService interface {
	CreateOrder(ctx context.Context, in *domain.NewOrder) (*domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrder(ctx context.Context, id int64, patch *domain.OrderPatch) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}
