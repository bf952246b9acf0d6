package wheel

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/wheel/keybind"
)

// InputHandler steps through the items with the keyboard.
func (w *Wheel) InputHandler(event *tcell.EventKey) Command {
	if w.itemCount() == 0 {
		return nil
	}

	keyMap := w.KeyMap()
	page := max(w.visibleItems/2, 1)
	switch {
	case keybind.Matches(event, keyMap.Prev):
		w.stepItems(-1)
	case keybind.Matches(event, keyMap.Next):
		w.stepItems(1)
	case keybind.Matches(event, keyMap.PrevPage):
		w.stepItems(-page)
	case keybind.Matches(event, keyMap.NextPage):
		w.stepItems(page)
	case keybind.Matches(event, keyMap.First):
		w.SetCurrentItem(0, true)
	case keybind.Matches(event, keyMap.Last):
		w.SetCurrentItem(w.itemCount()-1, true)
	default:
		return nil
	}
	return RedrawCommand{}
}

// stepItems scrolls n items from the current one, stopping at the ends of a
// bounded wheel.
func (w *Wheel) stepItems(n int) {
	if !w.cyclic {
		target := min(max(w.currentItem+n, 0), w.itemCount()-1)
		n = target - w.currentItem
	}
	if n != 0 {
		w.ScrollItems(n, 0)
	}
}

// MouseHandler drags, flings and clicks the wheel.
//
// A left press inside the wheel stops any animation and captures the mouse.
// Moves scroll the strip by the rows travelled. On release the wheel either
// flings with the release velocity or snaps to the nearest item. A release
// close to the press that did not scroll is a tap: tapping an item other
// than the current one notifies the click listeners.
func (w *Wheel) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()

	if w.dragging {
		switch action {
		case MouseMove:
			w.drag(y)
			return w, RedrawCommand{}
		case MouseLeftUp:
			w.release(y)
			return nil, RedrawCommand{}
		}
		return w, ConsumeEventCommand{}
	}

	if !w.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		var cmd Command = SetFocusCommand{Target: w}
		if w.itemCount() == 0 {
			return nil, cmd
		}
		w.press(y)
		return w, AppendCommand(cmd, RedrawCommand{})
	case MouseScrollUp:
		w.stepItems(-1)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		w.stepItems(1)
		return nil, RedrawCommand{}
	case MouseLeftClick, MouseLeftDoubleClick:
		return nil, ConsumeEventCommand{}
	}
	return nil, nil
}

func (w *Wheel) press(y int) {
	w.scroller.Stop()
	w.dragging = true
	w.pressY, w.lastY = y, y
	w.tracker.reset()
	w.tracker.add(w.clock(), y)
}

func (w *Wheel) drag(y int) {
	w.tracker.add(w.clock(), y)
	if !w.scrolling && abs(y-w.pressY) < w.tapThreshold {
		// Still within tap distance of the press.
		return
	}
	delta := y - w.lastY
	w.lastY = y
	if delta != 0 {
		w.beginScroll()
		w.scrollBy(delta)
	}
}

func (w *Wheel) release(y int) {
	w.dragging = false
	if y != w.lastY {
		w.drag(y)
	}

	if !w.scrolling && abs(y-w.pressY) < w.tapThreshold {
		w.tap(y)
	}

	velocity := w.tracker.velocity(w.clock())
	w.tracker.reset()
	if velocity >= w.flingThreshold || velocity <= -w.flingThreshold {
		Logger.Debug("wheel fling", "velocity", velocity, "item", w.currentItem)
		w.scroller.Fling(velocity)
		return
	}
	w.justify()
}

// tap notifies the click listeners when row y lies on an item other than the
// current one. The wheel does not move.
func (w *Wheel) tap(y int) {
	_, innerY, _, height := w.GetInnerRect()
	itemHeight := w.getItemHeight()

	// Work in half rows so the distance is measured from the center of the
	// tapped row to the center of the current item.
	bandTop := (height-itemHeight)/2 + w.offset
	distance := 2*(y-innerY) + 1 - (2*bandTop + itemHeight)
	if distance > 0 {
		distance += itemHeight
	} else {
		distance -= itemHeight
	}
	items := distance / (2 * itemHeight)

	index := w.currentItem + items
	if items == 0 || !w.isValidIndex(index) {
		return
	}
	w.notifyClicked(floorMod(index, w.itemCount()))
}
