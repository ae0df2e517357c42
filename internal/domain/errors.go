package domain

import "errors"

// Базовые ошибки доменного слоя. Транспорт сопоставляет их с HTTP-статусами,
// репозиторий и клиент user-сервиса оборачивают в них низкоуровневые причины.
var (
	// ErrNotFound — запись с таким id отсутствует в хранилище.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken — нарушение уникальности email при создании/обновлении.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidUserRef — user-сервис доступен, но пользователя с таким id нет.
	ErrInvalidUserRef = errors.New("invalid user reference")

	// ErrUserServiceUnavailable — user-сервис недоступен или ответил некорректно.
	ErrUserServiceUnavailable = errors.New("user service unreachable")
)
