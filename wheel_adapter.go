package wheel

import (
	"slices"
	"strconv"

	"github.com/gdamore/tcell/v3"
)

// WheelItem is an item view shown on a wheel. Items report their own height
// in rows for a given width; the wheel measures the first materialized item
// and lays every item out with that height.
type WheelItem interface {
	Primitive
	Height(width int) int
}

// WheelAdapter supplies the wheel's item views.
type WheelAdapter interface {
	// ItemCount returns the number of items.
	ItemCount() int
	// Item returns a view showing the item at index, which is always in
	// [0, ItemCount()). reuse is a view previously returned by this adapter
	// that may be rebound instead of building a new one; it may be nil.
	// Returning nil means no view exists and ends the strip there.
	Item(index int, reuse WheelItem) WheelItem
	// EmptyItem returns a placeholder view shown past the ends of a bounded
	// wheel, possibly rebinding reuse.
	EmptyItem(reuse WheelItem) WheelItem
}

// DataObserver is notified when an adapter's data changes.
type DataObserver interface {
	// DataChanged reports that item contents changed. Views are rebound on
	// the next draw.
	DataChanged()
	// DataInvalidated reports that the data set was replaced. Cached views
	// are dropped and the wheel returns to its first item.
	DataInvalidated()
}

// ObservableAdapter is an adapter that announces data changes.
type ObservableAdapter interface {
	WheelAdapter
	RegisterObserver(observer DataObserver)
	UnregisterObserver(observer DataObserver)
}

// AdapterBase implements the observer bookkeeping of ObservableAdapter.
// Embed it in an adapter and call NotifyDataChanged or
// NotifyDataInvalidated after mutating the data.
type AdapterBase struct {
	observers []DataObserver
}

// RegisterObserver adds an observer. Registering the same observer twice has
// no effect.
func (a *AdapterBase) RegisterObserver(observer DataObserver) {
	if observer == nil || slices.Contains(a.observers, observer) {
		return
	}
	a.observers = append(a.observers, observer)
}

// UnregisterObserver removes an observer.
func (a *AdapterBase) UnregisterObserver(observer DataObserver) {
	if i := slices.Index(a.observers, observer); i >= 0 {
		a.observers = slices.Delete(a.observers, i, i+1)
	}
}

// NotifyDataChanged tells every observer that item contents changed.
func (a *AdapterBase) NotifyDataChanged() {
	for _, o := range slices.Clone(a.observers) {
		o.DataChanged()
	}
}

// NotifyDataInvalidated tells every observer that the data set was replaced.
func (a *AdapterBase) NotifyDataInvalidated() {
	for _, o := range slices.Clone(a.observers) {
		o.DataInvalidated()
	}
}

// TextItem is a single line of text centered in a block of rows.
type TextItem struct {
	*Box

	text      string
	style     tcell.Style
	alignment Alignment
	height    int
}

// NewTextItem returns a one-row text item.
func NewTextItem(text string) *TextItem {
	return &TextItem{
		Box:       NewBox(),
		text:      text,
		style:     tcell.StyleDefault.Foreground(Styles.PrimaryTextColor),
		alignment: AlignmentCenter,
		height:    1,
	}
}

// SetText sets the item's text.
func (t *TextItem) SetText(text string) *TextItem {
	if t.text != text {
		t.text = text
		t.MarkDirty()
	}
	return t
}

// GetText returns the item's text.
func (t *TextItem) GetText() string {
	return t.text
}

// SetStyle sets the style the text is printed with. The background is kept
// from the screen.
func (t *TextItem) SetStyle(style tcell.Style) *TextItem {
	t.style = style
	return t
}

// SetAlignment sets the horizontal alignment of the text.
func (t *TextItem) SetAlignment(alignment Alignment) *TextItem {
	t.alignment = alignment
	return t
}

// SetHeight sets the number of rows the item occupies.
func (t *TextItem) SetHeight(height int) *TextItem {
	t.height = max(height, 1)
	return t
}

// Height returns the number of rows the item occupies.
func (t *TextItem) Height(width int) int {
	return t.height
}

// Draw prints the text on the middle row of the item's rect.
func (t *TextItem) Draw(screen tcell.Screen) {
	x, y, width, height := t.GetRect()
	if width <= 0 || height <= 0 || t.text == "" {
		return
	}
	text := TruncateString(t.text, width)
	printWithStyle(screen, text, x, y+height/2, 0, width, t.alignment, t.style, true)
}

var _ WheelItem = &TextItem{}

// textItemFor rebinds reuse when it is a TextItem and builds a new one
// otherwise.
func textItemFor(reuse WheelItem, text string, height int) *TextItem {
	item, ok := reuse.(*TextItem)
	if !ok {
		item = NewTextItem(text)
	}
	return item.SetText(text).SetHeight(height)
}

// StringAdapter shows a fixed list of strings.
type StringAdapter struct {
	AdapterBase

	items      []string
	itemHeight int
}

// NewStringAdapter returns an adapter over items.
func NewStringAdapter(items ...string) *StringAdapter {
	return &StringAdapter{items: slices.Clone(items), itemHeight: 1}
}

// SetItems replaces the adapter's strings and invalidates attached wheels.
func (a *StringAdapter) SetItems(items ...string) *StringAdapter {
	a.items = slices.Clone(items)
	a.NotifyDataInvalidated()
	return a
}

// SetItem replaces the string at index. Attached wheels rebind their views
// on the next draw.
func (a *StringAdapter) SetItem(index int, text string) *StringAdapter {
	if index >= 0 && index < len(a.items) && a.items[index] != text {
		a.items[index] = text
		a.NotifyDataChanged()
	}
	return a
}

// SetItemHeight sets the number of rows of every item view.
func (a *StringAdapter) SetItemHeight(height int) *StringAdapter {
	a.itemHeight = max(height, 1)
	a.NotifyDataInvalidated()
	return a
}

// Text returns the string at index, or "" when index is out of range.
func (a *StringAdapter) Text(index int) string {
	if index < 0 || index >= len(a.items) {
		return ""
	}
	return a.items[index]
}

func (a *StringAdapter) ItemCount() int {
	return len(a.items)
}

func (a *StringAdapter) Item(index int, reuse WheelItem) WheelItem {
	if index < 0 || index >= len(a.items) {
		return nil
	}
	return textItemFor(reuse, a.items[index], a.itemHeight)
}

func (a *StringAdapter) EmptyItem(reuse WheelItem) WheelItem {
	return textItemFor(reuse, "", a.itemHeight)
}

var _ ObservableAdapter = &StringAdapter{}

// NumericAdapter shows the integers from min to max inclusive.
type NumericAdapter struct {
	AdapterBase

	min, max int
	format   func(value int) string
}

// NewNumericAdapter returns an adapter over [min, max]. The bounds are
// swapped when min > max.
func NewNumericAdapter(min, max int) *NumericAdapter {
	if min > max {
		min, max = max, min
	}
	return &NumericAdapter{min: min, max: max, format: strconv.Itoa}
}

// SetFormatFunc sets the function that turns a value into text, for example
// to zero-pad minutes. nil restores plain decimal output.
func (a *NumericAdapter) SetFormatFunc(format func(value int) string) *NumericAdapter {
	if format == nil {
		format = strconv.Itoa
	}
	a.format = format
	a.NotifyDataChanged()
	return a
}

// Value returns the number shown at index.
func (a *NumericAdapter) Value(index int) int {
	return a.min + index
}

// Index returns the index showing value, or -1 when it is out of range.
func (a *NumericAdapter) Index(value int) int {
	if value < a.min || value > a.max {
		return -1
	}
	return value - a.min
}

func (a *NumericAdapter) ItemCount() int {
	return a.max - a.min + 1
}

func (a *NumericAdapter) Item(index int, reuse WheelItem) WheelItem {
	if index < 0 || index >= a.ItemCount() {
		return nil
	}
	return textItemFor(reuse, a.format(a.Value(index)), 1)
}

func (a *NumericAdapter) EmptyItem(reuse WheelItem) WheelItem {
	return textItemFor(reuse, "", 1)
}

var _ ObservableAdapter = &NumericAdapter{}
