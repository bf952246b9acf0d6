package wheel

// scrollBy moves the strip by delta rows. Whole items crossed move the
// current item; the remainder stays in the offset. It reports whether the
// offset hit the viewport bound, which also stops any animation.
func (w *Wheel) scrollBy(delta int) (clamped bool) {
	count := w.itemCount()
	if delta == 0 || count == 0 {
		return false
	}

	w.offset += delta
	itemHeight := w.getItemHeight()
	crossed := w.offset / itemHeight
	pos := w.currentItem - crossed

	// A residual past half an item rounds to the next one.
	fix := w.offset % itemHeight
	if abs(fix) <= itemHeight/2 {
		fix = 0
	}

	if w.cyclic {
		if fix > 0 {
			pos--
			crossed++
		} else if fix < 0 {
			pos++
			crossed--
		}
		pos = floorMod(pos, count)
	} else {
		switch {
		case pos < 0:
			crossed = w.currentItem
			pos = 0
		case pos >= count:
			crossed = w.currentItem - count + 1
			pos = count - 1
		case pos > 0 && fix > 0:
			pos--
			crossed++
		case pos < count-1 && fix < 0:
			pos++
			crossed--
		}
	}

	w.offset -= crossed * itemHeight
	if height := w.viewportHeight(); height > 0 {
		if w.offset > height {
			w.offset, clamped = height, true
		} else if w.offset < -height {
			w.offset, clamped = -height, true
		}
	}
	if clamped {
		Logger.Debug("wheel overscroll clamped", "offset", w.offset)
		w.scroller.Stop()
	}

	old := w.currentItem
	w.currentItem = pos
	if pos != old {
		w.notifyChanged(old, pos)
	}
	w.MarkDirty()
	return clamped
}

// beginScroll marks the start of a motion.
func (w *Wheel) beginScroll() {
	if w.scrolling {
		return
	}
	w.scrolling = true
	w.notifyScrollingStarted()
}

// endScroll marks the end of a motion and drops what is left of the offset.
func (w *Wheel) endScroll() {
	if w.scrolling {
		w.scrolling = false
		w.notifyScrollingFinished()
	}
	w.offset = 0
	w.MarkDirty()
}

// justify snaps the strip back onto the current item.
func (w *Wheel) justify() {
	if abs(w.offset) > minDeltaForScrolling {
		w.scroller.justify(-w.offset)
		return
	}
	w.endScroll()
}

// wheelScrollListener receives the wheel's scroller callbacks without
// exporting them on Wheel.
type wheelScrollListener Wheel

func (l *wheelScrollListener) scrollStarted() {
	(*Wheel)(l).beginScroll()
}

func (l *wheelScrollListener) scrolled(delta int) {
	w := (*Wheel)(l)
	if w.scrollBy(delta) && !w.dragging {
		// The animation was stopped at the bound; settle from there.
		w.justify()
	}
}

func (l *wheelScrollListener) justify() {
	(*Wheel)(l).justify()
}

func (l *wheelScrollListener) scrollFinished() {
	(*Wheel)(l).endScroll()
}
