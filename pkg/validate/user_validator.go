package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// Проверка, что UserValidator удовлетворяет интерфейсу ports.UserValidator.
var _ ports.UserValidator = (*UserValidator)(nil)

// ErrInvalidUser — базовая (sentinel error) ошибка валидации пользователя.
var ErrInvalidUser = errors.New("user validation failed")

// UserValidator — структура для валидации данных пользователя.
type UserValidator struct{}

// NewUserValidator — конструктор UserValidator.
// Возвращает ErrInvalidUser (с обёрнутой причиной) при любой проблеме.
func NewUserValidator() *UserValidator { return &UserValidator{} }

// ValidateNew — проверяет данные создания пользователя.
func (v *UserValidator) ValidateNew(_ context.Context, in *domain.NewUser) error {
	if in == nil {
		return fmt.Errorf("%w: данные не могут быть nil", ErrInvalidUser)
	}
	if in.Name == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidUser)
	}
	return validateEmail(in.Email)
}

// ValidatePatch — проверяет частичное обновление.
// Отсутствующее (nil) поле допустимо; присутствующее обязано быть валидным —
// явные пустые значения не игнорируются, а отклоняются.
func (v *UserValidator) ValidatePatch(_ context.Context, patch *domain.UserPatch) error {
	if patch == nil {
		return nil
	}
	if patch.Name != nil && *patch.Name == "" {
		return fmt.Errorf("%w: name не может быть пустым", ErrInvalidUser)
	}
	if patch.Email != nil {
		return validateEmail(*patch.Email)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email обязателен", ErrInvalidUser)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: email некорректен", ErrInvalidUser)
	}
	return nil
}
