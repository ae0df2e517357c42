package memory

import (
	"container/list"

	"github.com/mkargin/shop-registry/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *SnapshotCache) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *SnapshotCache) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// cloneSnapshot — копия среза, чтобы внешние изменения
// не отражались на данных внутри кэша.
func cloneSnapshot(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
