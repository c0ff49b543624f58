package naming

import (
	"container/list"
	"sync"

	"github.com/bnema/webnotify/internal/domain/entity"
)

// nameCache memoizes resolved display names with LRU eviction so repeated
// prompts and notifications for the same origin skip the extension lookup.
type nameCache struct {
	capacity int
	mu       sync.Mutex
	items    map[entity.Origin]*list.Element
	order    *list.List // Front = most recent, Back = least recent
}

type nameEntry struct {
	origin entity.Origin
	name   string
}

func newNameCache(capacity int) *nameCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &nameCache{
		capacity: capacity,
		items:    make(map[entity.Origin]*list.Element),
		order:    list.New(),
	}
}

// get returns the memoized name for origin and marks it recently used.
func (c *nameCache) get(origin entity.Origin) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[origin]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*nameEntry).name, true
	}
	return "", false
}

// set stores the name for origin, evicting the least recently used entry
// when the cache is full.
func (c *nameCache) set(origin entity.Origin, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[origin]; ok {
		c.order.MoveToFront(elem)
		elem.Value.(*nameEntry).name = name
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*nameEntry).origin)
		}
	}

	c.items[origin] = c.order.PushFront(&nameEntry{origin: origin, name: name})
}
