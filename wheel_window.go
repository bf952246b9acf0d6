package wheel

// rebuildItems brings the materialized window in line with the range needed
// for the current position. Views leaving the window go to the cache and
// views entering it are taken from the adapter, reusing cached ones. It
// reports whether the window changed shape.
func (w *Wheel) rebuildItems() bool {
	r := computeRange(w.currentItem, w.offset, w.getItemHeight(), w.viewportHeight())
	first, count := w.firstItem, len(w.items)

	removed := w.recycleItems(r)

	if w.firstItem > r.first && w.firstItem <= r.last() {
		for i := w.firstItem - 1; i >= r.first; i-- {
			item := w.getItemView(i)
			if item == nil {
				break
			}
			w.items = append(w.items, nil)
			copy(w.items[1:], w.items)
			w.items[0] = item
			w.firstItem = i
		}
	} else {
		w.firstItem = r.first
	}

	for len(w.items) < r.count {
		item := w.getItemView(w.firstItem + len(w.items))
		if item == nil {
			break
		}
		w.items = append(w.items, item)
	}
	// A window cut short by a missing view keeps its shape from one call to
	// the next.
	return removed || w.firstItem != first || len(w.items) != count
}

// recycleItems moves the views outside r into the cache. Removing views from
// the head advances firstItem. It reports whether anything was removed.
func (w *Wheel) recycleItems(r itemsRange) bool {
	kept := w.items[:0]
	first := w.firstItem
	removed := false
	for i, item := range w.items {
		index := w.firstItem + i
		if r.contains(index) {
			kept = append(kept, item)
			continue
		}
		w.recycle(index, item)
		removed = true
		if len(kept) == 0 {
			first++
		}
	}
	clear(w.items[len(kept):])
	w.items = kept
	w.firstItem = first
	return removed
}

// recycleWindow moves the whole window into the cache.
func (w *Wheel) recycleWindow() {
	for i, item := range w.items {
		w.recycle(w.firstItem+i, item)
	}
	clear(w.items)
	w.items = w.items[:0]
}

func (w *Wheel) recycle(index int, item WheelItem) {
	if w.isValidIndex(index) {
		w.cache.putItem(index-w.currentItem, item)
	} else {
		w.cache.putEmpty(item)
	}
}

// getItemView returns the view for index: a placeholder past the ends of a
// bounded wheel, the wrapped item on a cyclic one. It returns nil when there
// are no items or the adapter has no view.
func (w *Wheel) getItemView(index int) WheelItem {
	count := w.itemCount()
	if count == 0 {
		return nil
	}
	if !w.isValidIndex(index) {
		return w.adapter.EmptyItem(w.cache.emptyItem())
	}
	return w.adapter.Item(floorMod(index, count), w.cache.item(index-w.currentItem))
}

// updateView rebuilds the window and re-measures the item height when its
// shape changed.
func (w *Wheel) updateView() {
	if w.rebuildItems() {
		w.itemHeight = 0
		if h := w.measureItemHeight(); h > 0 {
			w.itemHeight = h
		}
	}
}
