package wheel

import (
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/wheel/keybind"
)

const (
	// DefaultVisibleItems is the number of items a new wheel shows.
	DefaultVisibleItems = 5
	// Columns left free on both sides of the items for the selection
	// markers.
	wheelPadding = 1
)

// WheelKeyMap holds the keybinds a wheel reacts to.
type WheelKeyMap struct {
	Prev     keybind.Keybind
	Next     keybind.Keybind
	PrevPage keybind.Keybind
	NextPage keybind.Keybind
	First    keybind.Keybind
	Last     keybind.Keybind
}

// DefaultWheelKeyMap returns the default wheel keybinds.
func DefaultWheelKeyMap() WheelKeyMap {
	return WheelKeyMap{
		Prev:     keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "previous")),
		Next:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "next")),
		PrevPage: keybind.NewKeybind(keybind.WithKeys("pgup"), keybind.WithHelp("pgup", "page up")),
		NextPage: keybind.NewKeybind(keybind.WithKeys("pgdn"), keybind.WithHelp("pgdn", "page down")),
		First:    keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "first")),
		Last:     keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "last")),
	}
}

// Wheel is a vertical picker. It shows a strip of item views supplied by a
// WheelAdapter with the current item centered, and lets the user drag,
// fling, click or step through the items. The strip snaps to whole items
// once it comes to rest.
//
// Item positions are measured in rows. A positive scroll offset moves the
// content down, exposing earlier items above the center.
type Wheel struct {
	*Box

	adapter WheelAdapter

	currentItem int
	offset      int

	visibleItems    int
	cyclic          bool
	fixedItemHeight int
	itemHeight      int // Measured from the window, 0 if unknown.

	// The materialized window: items[i] shows index firstItem+i.
	firstItem int
	items     []WheelItem
	cache     *recycleCache

	scroller       *Scroller
	scrollDuration time.Duration
	clock          func() time.Time

	// scrolling is set from the first delta of a motion until it settles.
	scrolling bool

	dragging       bool
	pressY, lastY  int
	tracker        velocityTracker
	tapThreshold   int
	flingThreshold float64

	keyMap WheelKeyMap

	shadowColor    tcell.Color
	indicatorStyle tcell.Style

	listeners listenerRegistry
}

// NewWheel returns a wheel without an adapter.
func NewWheel() *Wheel {
	w := &Wheel{
		Box:            NewBox(),
		visibleItems:   DefaultVisibleItems,
		cache:          newRecycleCache(DefaultVisibleItems + 2),
		scrollDuration: defaultScrollDuration,
		clock:          time.Now,
		tapThreshold:   1,
		flingThreshold: minFlingVelocity,
		keyMap:         DefaultWheelKeyMap(),
		shadowColor:    Styles.ShadowColor,
		indicatorStyle: tcell.StyleDefault.
			Foreground(Styles.SecondaryTextColor).
			Background(Styles.ContrastBackgroundColor),
	}
	w.scroller = newScroller((*wheelScrollListener)(w))
	return w
}

// SetAdapter sets the adapter supplying the item views. The wheel returns to
// its first item without notifying listeners.
func (w *Wheel) SetAdapter(adapter WheelAdapter) *Wheel {
	if old, ok := w.adapter.(ObservableAdapter); ok {
		old.UnregisterObserver(w)
	}
	w.adapter = adapter
	if a, ok := w.adapter.(ObservableAdapter); ok {
		a.RegisterObserver(w)
	}

	w.stopMotion()
	w.cache.clearAll()
	w.items = nil
	w.firstItem = 0
	w.currentItem = 0
	w.offset = 0
	w.itemHeight = 0
	Logger.Debug("wheel adapter set", "items", w.itemCount())
	w.MarkDirty()
	return w
}

// GetAdapter returns the wheel's adapter.
func (w *Wheel) GetAdapter() WheelAdapter {
	return w.adapter
}

// SetVisibleItems sets how many items the wheel shows at once. It determines
// the desired height and, when items do not report a height, the item
// height.
func (w *Wheel) SetVisibleItems(count int) *Wheel {
	count = max(count, 1)
	if w.visibleItems != count {
		w.visibleItems = count
		w.cache.setCapacity(count + 2)
		w.itemHeight = 0
		w.MarkDirty()
	}
	return w
}

// GetVisibleItems returns the number of items the wheel shows at once.
func (w *Wheel) GetVisibleItems() int {
	return w.visibleItems
}

// SetCyclic sets whether the wheel wraps around from the last item to the
// first.
func (w *Wheel) SetCyclic(cyclic bool) *Wheel {
	if w.cyclic != cyclic {
		w.cyclic = cyclic
		w.InvalidateWheel(false)
	}
	return w
}

// IsCyclic returns whether the wheel wraps around.
func (w *Wheel) IsCyclic() bool {
	return w.cyclic
}

// SetItemHeight fixes the height of every item in rows. 0 measures the
// height from the item views instead.
func (w *Wheel) SetItemHeight(rows int) *Wheel {
	w.fixedItemHeight = max(rows, 0)
	w.itemHeight = 0
	w.MarkDirty()
	return w
}

// SetInterpolator sets the easing of animated scrolls. nil restores the
// default ease-out.
func (w *Wheel) SetInterpolator(i Interpolator) *Wheel {
	w.scroller.SetInterpolator(i)
	return w
}

// SetScrollDuration sets the duration of programmatic scrolls started
// without an explicit duration.
func (w *Wheel) SetScrollDuration(d time.Duration) *Wheel {
	if d <= 0 {
		d = defaultScrollDuration
	}
	w.scrollDuration = d
	return w
}

// SetDeceleration sets the fling deceleration in rows per second squared.
func (w *Wheel) SetDeceleration(rowsPerSecond2 float64) *Wheel {
	w.scroller.SetDeceleration(rowsPerSecond2)
	return w
}

// SetTapThreshold sets how many rows the pointer may travel from the press
// before a drag starts scrolling. A release within that distance is a tap.
func (w *Wheel) SetTapThreshold(rows int) *Wheel {
	w.tapThreshold = max(rows, 1)
	return w
}

// SetShadowColor sets the color the head and tail of the wheel fade into.
func (w *Wheel) SetShadowColor(color tcell.Color) *Wheel {
	w.shadowColor = color
	w.MarkDirty()
	return w
}

// SetIndicatorStyle sets the style of the selection band.
func (w *Wheel) SetIndicatorStyle(style tcell.Style) *Wheel {
	w.indicatorStyle = style
	w.MarkDirty()
	return w
}

// SetKeyMap replaces the wheel's keybinds.
func (w *Wheel) SetKeyMap(keyMap WheelKeyMap) *Wheel {
	w.keyMap = keyMap
	return w
}

// KeyMap returns the keybinds in effect. First and Last are disabled on a
// cyclic wheel.
func (w *Wheel) KeyMap() WheelKeyMap {
	m := w.keyMap
	if w.cyclic {
		m.First.SetEnabled(false)
		m.Last.SetEnabled(false)
	}
	return m
}

// ShortHelp returns the keybinds for a single help line.
func (w *Wheel) ShortHelp() []keybind.Keybind {
	m := w.KeyMap()
	return []keybind.Keybind{m.Prev, m.Next}
}

// FullHelp returns all keybinds in columns.
func (w *Wheel) FullHelp() [][]keybind.Keybind {
	m := w.KeyMap()
	return [][]keybind.Keybind{
		{m.Prev, m.Next},
		{m.PrevPage, m.NextPage},
		{m.First, m.Last},
	}
}

// SetFrameScheduler sets the scheduler that runs the wheel's animations.
// Application sets itself when the wheel is its root. Without a scheduler
// animations complete immediately.
func (w *Wheel) SetFrameScheduler(scheduler FrameScheduler) *Wheel {
	w.scroller.SetFrameScheduler(scheduler)
	return w
}

// BindFrameScheduler implements Animated.
func (w *Wheel) BindFrameScheduler(scheduler FrameScheduler) {
	w.SetFrameScheduler(scheduler)
}

// GetCurrentItem returns the index of the selected item.
func (w *Wheel) GetCurrentItem() int {
	return w.currentItem
}

// IsScrolling reports whether the wheel is in motion.
func (w *Wheel) IsScrolling() bool {
	return w.scrolling
}

// SetCurrentItem selects the item at index. On a cyclic wheel index is
// wrapped; on a bounded one out-of-range indices are ignored. When animated
// the wheel scrolls the shortest way there and changed listeners are
// notified as the animation advances, at most once per frame, so items
// passed within one frame are skipped. Otherwise it jumps.
func (w *Wheel) SetCurrentItem(index int, animated bool) *Wheel {
	count := w.itemCount()
	if count == 0 {
		return w
	}
	if index < 0 || index >= count {
		if !w.cyclic {
			return w
		}
		index = floorMod(index, count)
	}
	if index == w.currentItem {
		return w
	}

	if animated {
		items := index - w.currentItem
		if w.cyclic {
			scroll := count + min(index, w.currentItem) - max(index, w.currentItem)
			if scroll < abs(items) {
				if items < 0 {
					items = scroll
				} else {
					items = -scroll
				}
			}
		}
		w.ScrollItems(items, 0)
		return w
	}

	w.stopMotion()
	w.offset = 0
	old := w.currentItem
	w.currentItem = index
	w.notifyChanged(old, index)
	w.MarkDirty()
	return w
}

// ScrollItems animates the wheel by n items, forward when n is positive,
// over duration. A zero duration uses the wheel's scroll duration. Any
// residual offset is absorbed so the wheel lands on a whole item.
func (w *Wheel) ScrollItems(n int, duration time.Duration) {
	if w.itemCount() == 0 {
		return
	}
	if duration <= 0 {
		duration = w.scrollDuration
	}
	distance := -n*w.getItemHeight() - w.offset
	if distance == 0 {
		return
	}
	w.scroller.Scroll(distance, duration)
}

// StopScrolling cancels the running animation or drag and snaps the wheel
// onto the current item.
func (w *Wheel) StopScrolling() {
	w.stopMotion()
	w.offset = 0
	w.MarkDirty()
}

// InvalidateWheel discards the item window so views are rebound on the next
// draw. With clearCaches the recycled views are dropped too and the wheel
// returns to its first item.
func (w *Wheel) InvalidateWheel(clearCaches bool) {
	if clearCaches {
		w.stopMotion()
		w.cache.clearAll()
		w.items = nil
		w.offset = 0
		w.itemHeight = 0
		if w.currentItem != 0 {
			old := w.currentItem
			w.currentItem = 0
			w.notifyChanged(old, 0)
		}
		Logger.Debug("wheel invalidated", "items", w.itemCount())
	} else {
		w.recycleWindow()
		w.clampCurrentItem()
	}
	w.MarkDirty()
}

// DataChanged rebinds the item views on the next draw.
func (w *Wheel) DataChanged() {
	w.InvalidateWheel(false)
}

// DataInvalidated drops every view and returns to the first item.
func (w *Wheel) DataInvalidated() {
	w.InvalidateWheel(true)
}

var _ DataObserver = &Wheel{}

// GetDesiredHeight returns the height in rows that shows exactly the visible
// items, including borders and padding.
func (w *Wheel) GetDesiredHeight() int {
	height := w.getItemHeight()*w.visibleItems + w.paddingTop + w.paddingBottom
	if w.borders.Has(BordersTop) {
		height++
	}
	if w.borders.Has(BordersBottom) {
		height++
	}
	return height
}

func (w *Wheel) itemCount() int {
	if w.adapter == nil {
		return 0
	}
	return max(w.adapter.ItemCount(), 0)
}

// isValidIndex reports whether index refers to an item, wrapping on a cyclic
// wheel.
func (w *Wheel) isValidIndex(index int) bool {
	count := w.itemCount()
	return count > 0 && (w.cyclic || index >= 0 && index < count)
}

// clampCurrentItem brings the current item back into range after the data
// set shrank.
func (w *Wheel) clampCurrentItem() {
	count := w.itemCount()
	old := w.currentItem
	switch {
	case count == 0:
		w.currentItem = 0
		w.offset = 0
	case old >= count && w.cyclic:
		w.currentItem = floorMod(old, count)
	case old >= count:
		w.currentItem = count - 1
	}
	if w.currentItem != old {
		w.notifyChanged(old, w.currentItem)
	}
}

// stopMotion cancels any drag or animation. A motion in progress still
// reports its end.
func (w *Wheel) stopMotion() {
	w.scroller.Stop()
	w.dragging = false
	if w.scrolling {
		w.endScroll()
	}
}

// getItemHeight returns the height of one item in rows: the fixed height if
// set, else the height measured from the window, else an even share of the
// viewport.
func (w *Wheel) getItemHeight() int {
	if w.fixedItemHeight > 0 {
		return w.fixedItemHeight
	}
	if w.itemHeight > 0 {
		return w.itemHeight
	}
	if h := w.measureItemHeight(); h > 0 {
		w.itemHeight = h
		return h
	}
	_, _, _, height := w.GetInnerRect()
	return max(height/w.visibleItems, 1)
}

func (w *Wheel) measureItemHeight() int {
	if len(w.items) == 0 || w.items[0] == nil {
		return 0
	}
	_, _, width, _ := w.GetInnerRect()
	return w.items[0].Height(max(width-2*wheelPadding, 1))
}

func (w *Wheel) viewportHeight() int {
	_, _, _, height := w.GetInnerRect()
	return height
}
