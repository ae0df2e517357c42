package ports

import "context"

// UserChecker — синхронная проверка существования пользователя в user-сервисе.
// Возвращает nil, если пользователь найден; domain.ErrInvalidUserRef, если
// сервис доступен, но пользователя нет (либо ответ неуспешный);
// domain.ErrUserServiceUnavailable при транспортной ошибке или битом ответе.
type UserChecker interface {
	CheckUser(ctx context.Context, userID int64) error
}
