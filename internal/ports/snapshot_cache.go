package ports

import "context"

// SnapshotCache — кэш сериализованных снимков сущностей и коллекций.
// Ключи — плоское пространство вида "users:42", "orders:all".
// Требования к реализации: потокобезопасность; запись живёт до явного
// Delete/перезаписи (без TTL); возврат копий содержимого.
type SnapshotCache interface {
	// Get — вернуть снимок по ключу; (data, true) при попадании, (nil, false) при промахе.
	Get(ctx context.Context, key string) ([]byte, bool)

	// Set — сохранить/перезаписать снимок по ключу.
	Set(ctx context.Context, key string, snapshot []byte) error

	// Delete — инвалидация: безусловное удаление ключа. Отсутствие ключа — не ошибка.
	Delete(ctx context.Context, key string) error
}
