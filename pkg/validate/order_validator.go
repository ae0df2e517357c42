package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу ports.OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации заказа.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации данных заказа.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// ValidateNew — проверяет данные создания заказа.
// Существование пользователя здесь не проверяется — это задача UserChecker.
func (v *OrderValidator) ValidateNew(_ context.Context, in *domain.NewOrder) error {
	if in == nil {
		return fmt.Errorf("%w: данные не могут быть nil", ErrInvalidOrder)
	}
	if in.UserID <= 0 {
		return fmt.Errorf("%w: user_id должен быть положительным", ErrInvalidOrder)
	}
	if in.ItemName == "" {
		return fmt.Errorf("%w: item_name обязателен", ErrInvalidOrder)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity должен быть положительным", ErrInvalidOrder)
	}
	return nil
}

// ValidatePatch — проверяет частичное обновление.
// Отсутствующее (nil) поле допустимо; присутствующее обязано быть валидным —
// явный quantity: 0 отклоняется, а не молча игнорируется.
func (v *OrderValidator) ValidatePatch(_ context.Context, patch *domain.OrderPatch) error {
	if patch == nil {
		return nil
	}
	if patch.ItemName != nil && *patch.ItemName == "" {
		return fmt.Errorf("%w: item_name не может быть пустым", ErrInvalidOrder)
	}
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return fmt.Errorf("%w: quantity должен быть положительным", ErrInvalidOrder)
	}
	if patch.Status != nil && *patch.Status == "" {
		return fmt.Errorf("%w: status не может быть пустым", ErrInvalidOrder)
	}
	return nil
}
