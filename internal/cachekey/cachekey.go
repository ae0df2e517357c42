// Пакет cachekey — построение ключей кэша в плоском пространстве имён
// "{entity}:{id}" / "{entity}:all". Единая точка, чтобы usecase-слои обоих
// сервисов не расходились в формате ключей.
package cachekey

import "strconv"

// Имена сущностей в ключах.
const (
	Users  = "users"
	Orders = "orders"
)

const allMarker = "all"

// ByID — ключ одиночной записи, например "users:42".
func ByID(entity string, id int64) string {
	return entity + ":" + strconv.FormatInt(id, 10)
}

// All — ключ снимка всей коллекции, например "orders:all".
func All(entity string) string {
	return entity + ":" + allMarker
}
