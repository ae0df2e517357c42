package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mkargin/shop-registry/internal/domain"
	"github.com/mkargin/shop-registry/internal/ports"
)

// RecordFunc — разбор и валидация одной JSON-записи.
// Возвращает каноническое представление записи для повторной сериализации.
type RecordFunc func(ctx context.Context, raw []byte) (any, error)

// decodeStrict — строгое декодирование JSON: запрещаем неизвестные поля
// и данные после объекта.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return fmt.Errorf("invalid json: trailing data")
	}
	return nil
}

// UserFromJSON — валидация пользователя из JSON.
func UserFromJSON(validator ports.UserValidator) RecordFunc {
	return func(ctx context.Context, raw []byte) (any, error) {
		var in domain.NewUser
		if err := decodeStrict(raw, &in); err != nil {
			return nil, err
		}
		if err := validator.ValidateNew(ctx, &in); err != nil {
			return nil, err
		}
		return &in, nil
	}
}

// OrderFromJSON — валидация заказа из JSON.
func OrderFromJSON(validator ports.OrderValidator) RecordFunc {
	return func(ctx context.Context, raw []byte) (any, error) {
		var in domain.NewOrder
		if err := decodeStrict(raw, &in); err != nil {
			return nil, err
		}
		if err := validator.ValidateNew(ctx, &in); err != nil {
			return nil, err
		}
		return &in, nil
	}
}
