package ports

import (
	"context"

	"github.com/mkargin/shop-registry/internal/domain"
)

// UserValidator — доменная валидация пользовательских данных до записи в БД.
type UserValidator interface {
	ValidateNew(ctx context.Context, in *domain.NewUser) error
	ValidatePatch(ctx context.Context, patch *domain.UserPatch) error
}

// OrderValidator — доменная валидация данных заказа до записи в БД.
type OrderValidator interface {
	ValidateNew(ctx context.Context, in *domain.NewOrder) error
	ValidatePatch(ctx context.Context, patch *domain.OrderPatch) error
}
