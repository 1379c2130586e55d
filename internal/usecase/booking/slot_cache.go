package booking

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	domain "github.com/schedulingco/scheduler-api/internal/domain/booking"
)

const defaultSlotCacheSize = 256

// slotCache memoizes resolved slot lists. Keys embed the store's state
// version, so any mutation (a new booking, an availability edit) naturally
// misses and old entries age out of the LRU.
type slotCache struct {
	entries *lru.Cache[string, []domain.Slot]
}

func newSlotCache(size int) *slotCache {
	if size <= 0 {
		size = defaultSlotCacheSize
	}
	entries, err := lru.New[string, []domain.Slot](size)
	if err != nil {
		// only reachable with a non-positive size
		panic(err)
	}
	return &slotCache{entries: entries}
}

func slotCacheKey(businessID string, date time.Time, version uint64) string {
	return fmt.Sprintf("%s|%s|%d", businessID, date.Format("2006-01-02"), version)
}

func (c *slotCache) Get(key string) ([]domain.Slot, bool) {
	slots, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	return append([]domain.Slot(nil), slots...), true
}

func (c *slotCache) Store(key string, slots []domain.Slot) {
	c.entries.Add(key, append([]domain.Slot(nil), slots...))
}
