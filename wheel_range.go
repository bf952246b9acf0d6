package wheel

// itemsRange is a contiguous span of item indices.
type itemsRange struct {
	first int
	count int
}

// last returns the last index of the range; it is first-1 for an empty range.
func (r itemsRange) last() int {
	return r.first + r.count - 1
}

func (r itemsRange) contains(index int) bool {
	return index >= r.first && index <= r.last()
}

// computeRange returns the indices needed to cover a viewport of the given
// height when current is centered and the strip is displaced by offset rows.
// The result may reach past the data on either side; the window builder
// fills those slots with placeholders.
func computeRange(current, offset, itemHeight, viewportHeight int) itemsRange {
	if itemHeight <= 0 {
		return itemsRange{first: current, count: 1}
	}

	first, count := current, 1
	for count*itemHeight < viewportHeight {
		first--
		count += 2 // One above and one below.
	}

	if offset != 0 {
		// A partially scrolled item peeks in at one edge.
		if offset > 0 {
			first--
		}
		count++

		// Offsets beyond one item height (edge overscroll) expose whole
		// extra items.
		emptyItems := offset / itemHeight
		first -= emptyItems
		count += abs(emptyItems)
	}
	return itemsRange{first: first, count: count}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// floorMod returns n mod m in [0, m).
func floorMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
