package memory

import (
	"container/list"
	"context"
	"sync"

	"github.com/mkargin/shop-registry/internal/ports"
	"github.com/mkargin/shop-registry/pkg/metrics"
)

// Проверка, что SnapshotCache удовлетворяет интерфейсу ports.SnapshotCache.
var _ ports.SnapshotCache = (*SnapshotCache)(nil)

type entry struct {
	key      string
	snapshot []byte
}

// SnapshotCache — потокобезопасный LRU-кэш сериализованных снимков.
// Записи живут до явного Delete/перезаписи либо LRU-вытеснения по capacity;
// TTL нет — консистентность обеспечивает инвалидация на пути записи.
type SnapshotCache struct {
	capacity int

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewSnapshotCache — конструктор; capacity <= 0 трактуем как 1.
func NewSnapshotCache(capacity int) *SnapshotCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &SnapshotCache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — вернуть копию снимка по ключу; (nil, false) при промахе.
func (c *SnapshotCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	c.ll.MoveToFront(elem)

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneSnapshot(elem.Value.(*entry).snapshot), true
}

// Set — сохранить/перезаписать снимок по ключу.
func (c *SnapshotCache) Set(_ context.Context, key string, snapshot []byte) error {
	if key == "" || snapshot == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		elem.Value.(*entry).snapshot = cloneSnapshot(snapshot)
		c.ll.MoveToFront(elem)
		return nil
	}

	elem := c.ll.PushFront(&entry{key: key, snapshot: cloneSnapshot(snapshot)})
	c.index[key] = elem

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	metrics.CacheSize.Set(float64(len(c.index)))
	return nil
}

// Delete — безусловная инвалидация ключа; отсутствие ключа — no-op.
func (c *SnapshotCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return nil
	}
	c.removeElement(elem)
	metrics.CacheOps.WithLabelValues("invalidated").Inc()
	metrics.CacheSize.Set(float64(len(c.index)))
	return nil
}

// Len — текущее количество записей (для тестов и отладки).
func (c *SnapshotCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
