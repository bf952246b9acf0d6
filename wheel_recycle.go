package wheel

// recycleCache keeps item views that left the window so the adapter can
// rebind them instead of building new ones. Data views are keyed by their
// slot relative to the current item; placeholder views are pooled
// separately. Both stores are bounded.
type recycleCache struct {
	items    map[int]WheelItem
	empty    []WheelItem
	capacity int
}

func newRecycleCache(capacity int) *recycleCache {
	return &recycleCache{
		items:    make(map[int]WheelItem),
		capacity: max(capacity, 1),
	}
}

// setCapacity changes the bound and drops surplus views.
func (c *recycleCache) setCapacity(capacity int) {
	c.capacity = max(capacity, 1)
	for slot := range c.items {
		if len(c.items) <= c.capacity {
			break
		}
		delete(c.items, slot)
	}
	if len(c.empty) > c.capacity {
		clear(c.empty[c.capacity:])
		c.empty = c.empty[:c.capacity]
	}
}

// putItem stores a data view evicted from the given slot. When the slot is
// taken or the cache is full the view is dropped.
func (c *recycleCache) putItem(slot int, item WheelItem) {
	if item == nil {
		return
	}
	if _, ok := c.items[slot]; ok || len(c.items) >= c.capacity {
		return
	}
	c.items[slot] = item
}

// putEmpty stores a placeholder view.
func (c *recycleCache) putEmpty(item WheelItem) {
	if item == nil || len(c.empty) >= c.capacity {
		return
	}
	c.empty = append(c.empty, item)
}

// item removes and returns a data view for reuse, preferring the one that
// was built for the same slot. It returns nil when the cache is empty.
func (c *recycleCache) item(slot int) WheelItem {
	if item, ok := c.items[slot]; ok {
		delete(c.items, slot)
		return item
	}
	// Any view will do; pick the nearest slot so the choice is stable.
	best, found := 0, false
	for s := range c.items {
		if !found || abs(s-slot) < abs(best-slot) || (abs(s-slot) == abs(best-slot) && s < best) {
			best, found = s, true
		}
	}
	if !found {
		return nil
	}
	item := c.items[best]
	delete(c.items, best)
	return item
}

// emptyItem removes and returns a pooled placeholder view, or nil.
func (c *recycleCache) emptyItem() WheelItem {
	n := len(c.empty)
	if n == 0 {
		return nil
	}
	item := c.empty[n-1]
	c.empty[n-1] = nil
	c.empty = c.empty[:n-1]
	return item
}

// size returns the number of cached views of both kinds.
func (c *recycleCache) size() int {
	return len(c.items) + len(c.empty)
}

// clearAll drops every cached view.
func (c *recycleCache) clearAll() {
	clear(c.items)
	clear(c.empty)
	c.empty = c.empty[:0]
}
