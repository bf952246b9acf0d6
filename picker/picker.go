package picker

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/wheel"
	"github.com/xqrs/wheel/help"
	"github.com/xqrs/wheel/keybind"
)

// column represents one wheel of a Picker.
type column struct {
	name    string       // The column's name.
	wheel   *wheel.Wheel // The column's wheel.
	width   int          // Fixed width in cells, 0 to share the free space.
	visible bool         // Whether or not this column is drawn.
	enabled bool         // Whether or not this column can receive focus/input.

	listener wheel.ListenerID // Forwards item changes to the picker.
}

// KeyMap holds the keybinds that move the focus between columns.
type KeyMap struct {
	PrevColumn keybind.Keybind
	NextColumn keybind.Keybind
}

// DefaultKeyMap returns the default column keybinds.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevColumn: keybind.NewKeybind(keybind.WithKeys("left", "h", "shift+tab"), keybind.WithHelp("←/h", "prev column")),
		NextColumn: keybind.NewKeybind(keybind.WithKeys("right", "l", "tab"), keybind.WithHelp("→/l", "next column")),
	}
}

// Picker lays several wheels out side by side, for example the hour, minute
// and second wheels of a time picker. Keys go to the focused column. The
// focus moves between enabled columns with the column keys or a click.
// Disabled columns are drawn dimmed and ignore input.
//
// An optional help bar below the wheels lists the keys of the focused
// column.
type Picker struct {
	*wheel.Box

	// The contained columns, from left to right.
	columns []*column
	// Index of the column that had the focus last, -1 if none.
	focused int
	// Blank cells between two visible columns.
	gap int
	// The style applied to disabled columns.
	disabledStyle tcell.Style

	keyMap KeyMap
	help   *help.Help
	// Keys handled outside the picker, listed after the column keys.
	helpKeys []keybind.Keybind

	// Passed on to every column, including those added later.
	scheduler wheel.FrameScheduler

	// We keep a reference to the function which allows us to set the focus to
	// a column.
	setFocus func(p wheel.Primitive)
	// An optional handler which is called whenever the item of a column
	// changes.
	changed func(name string, index int)
}

// Option configures a column on Add.
type Option func(*column)

// WithName sets the column's name.
func WithName(name string) Option {
	return func(c *column) {
		c.name = name
	}
}

// WithWidth gives the column a fixed width in cells.
func WithWidth(width int) Option {
	return func(c *column) {
		c.width = max(width, 0)
	}
}

// WithVisible sets the initial visibility of the column.
func WithVisible(visible bool) Option {
	return func(c *column) {
		c.visible = visible
	}
}

// WithEnabled sets whether the column can receive focus and input.
func WithEnabled(enabled bool) Option {
	return func(c *column) {
		c.enabled = enabled
	}
}

// New returns a picker without columns.
func New() *Picker {
	return &Picker{
		Box:           wheel.NewBox(),
		focused:       -1,
		gap:           1,
		disabledStyle: tcell.StyleDefault.Dim(true),
		keyMap:        DefaultKeyMap(),
	}
}

// SetChangedFunc sets a handler which is called with the column's name and
// its new item whenever the current item of a column changes.
func (p *Picker) SetChangedFunc(handler func(name string, index int)) *Picker {
	p.changed = handler
	return p
}

// SetGap sets the number of blank cells between two visible columns.
func (p *Picker) SetGap(gap int) *Picker {
	if gap = max(gap, 0); p.gap != gap {
		p.gap = gap
		p.MarkDirty()
	}
	return p
}

// SetDisabledStyle sets the style applied on top of disabled columns.
func (p *Picker) SetDisabledStyle(style tcell.Style) *Picker {
	if p.disabledStyle != style {
		p.disabledStyle = style
		p.MarkDirty()
	}
	return p
}

// SetKeyMap sets the keybinds that move the focus between columns.
func (p *Picker) SetKeyMap(keyMap KeyMap) *Picker {
	p.keyMap = keyMap
	return p
}

// SetShowHelp shows or hides a help bar below the wheels.
func (p *Picker) SetShowHelp(show bool) *Picker {
	switch {
	case show && p.help == nil:
		p.help = help.New().SetKeyMap(p)
	case !show && p.help != nil:
		p.help = nil
	default:
		return p
	}
	p.MarkDirty()
	return p
}

// SetHelpKeys sets keybinds handled by the picker's parent, for example the
// key that confirms the picked value. They are listed in the help after the
// picker's own keys.
func (p *Picker) SetHelpKeys(bindings ...keybind.Keybind) *Picker {
	p.helpKeys = bindings
	p.MarkDirty()
	return p
}

// GetColumnCount returns the number of columns.
func (p *Picker) GetColumnCount() int {
	return len(p.columns)
}

// GetColumnNames returns the names of all columns from left to right,
// optionally limited to visible columns.
func (p *Picker) GetColumnNames(visibleOnly bool) []string {
	var names []string
	for _, c := range p.columns {
		if !visibleOnly || c.visible {
			names = append(names, c.name)
		}
	}
	return names
}

// AddColumn appends a column for the given wheel. A column with the same
// name is replaced. The picker takes over the wheel's focus and blur
// callbacks until the column is removed.
func (p *Picker) AddColumn(w *wheel.Wheel, opts ...Option) *Picker {
	hasFocus := p.HasFocus()
	c := &column{
		wheel:   w,
		visible: true,
		enabled: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.name != "" {
		if index := p.index(c.name); index >= 0 {
			p.removeAt(index)
		}
	}
	p.columns = append(p.columns, c)
	if p.scheduler != nil {
		w.BindFrameScheduler(p.scheduler)
	}
	c.listener = w.AddChangedListener(wheel.ChangedFunc(func(_ *wheel.Wheel, _, newIndex int) {
		if p.changed != nil {
			p.changed(c.name, newIndex)
		}
	}))
	// The help bar follows the focused column.
	w.SetFocusFunc(func() {
		if index := p.column(w); index >= 0 {
			p.focused = index
		}
		p.MarkDirty()
	})
	w.SetBlurFunc(p.MarkDirty)
	p.MarkDirty()
	if hasFocus {
		p.Focus(p.setFocus)
	}
	return p
}

// RemoveColumn removes the column with the given name.
func (p *Picker) RemoveColumn(name string) *Picker {
	hasFocus := p.HasFocus()
	if index := p.index(name); index >= 0 {
		p.removeAt(index)
		p.MarkDirty()
	}
	if hasFocus {
		p.Focus(p.setFocus)
	}
	return p
}

// GetColumn returns the wheel of the column with the given name. If no such
// column exists, nil is returned.
func (p *Picker) GetColumn(name string) *wheel.Wheel {
	if index := p.index(name); index >= 0 {
		return p.columns[index].wheel
	}
	return nil
}

// GetValues returns the current item of every column by name.
func (p *Picker) GetValues() map[string]int {
	values := make(map[string]int, len(p.columns))
	for _, c := range p.columns {
		values[c.name] = c.wheel.GetCurrentItem()
	}
	return values
}

// ShowColumn makes a column visible.
func (p *Picker) ShowColumn(name string) *Picker {
	return p.setVisible(name, true)
}

// HideColumn hides a column. Hidden columns take no space.
func (p *Picker) HideColumn(name string) *Picker {
	return p.setVisible(name, false)
}

// GetVisible returns whether the given column is visible.
func (p *Picker) GetVisible(name string) bool {
	if index := p.index(name); index >= 0 {
		return p.columns[index].visible
	}
	return false
}

func (p *Picker) setVisible(name string, visible bool) *Picker {
	hasFocus := p.HasFocus()
	if index := p.index(name); index >= 0 && p.columns[index].visible != visible {
		c := p.columns[index]
		if !visible && c.wheel.HasFocus() {
			c.wheel.Blur()
		}
		c.visible = visible
		p.MarkDirty()
	}
	if hasFocus {
		p.Focus(p.setFocus)
	}
	return p
}

// SetColumnEnabled enables or disables a column. Disabled columns are still
// drawn (if visible) but do not receive focus or input.
func (p *Picker) SetColumnEnabled(name string, enabled bool) *Picker {
	hasFocus := p.HasFocus()
	if index := p.index(name); index >= 0 && p.columns[index].enabled != enabled {
		c := p.columns[index]
		if !enabled {
			c.wheel.StopScrolling()
			if c.wheel.HasFocus() {
				c.wheel.Blur()
			}
		}
		c.enabled = enabled
		p.MarkDirty()
	}
	if hasFocus {
		p.Focus(p.setFocus)
	}
	return p
}

// GetColumnEnabled returns whether the column with the given name is
// enabled.
func (p *Picker) GetColumnEnabled(name string) bool {
	if index := p.index(name); index >= 0 {
		return p.columns[index].enabled
	}
	return false
}

// GetFocusedColumn returns the name of the column that has or last had the
// focus. It is empty if no column can take the focus.
func (p *Picker) GetFocusedColumn() string {
	if index := p.focusIndex(); index >= 0 {
		return p.columns[index].name
	}
	return ""
}

// BindFrameScheduler implements wheel.Animated for all columns.
func (p *Picker) BindFrameScheduler(scheduler wheel.FrameScheduler) {
	p.scheduler = scheduler
	for _, c := range p.columns {
		c.wheel.BindFrameScheduler(scheduler)
	}
}

// ShortHelp returns the column keys and the short help of the focused
// column.
func (p *Picker) ShortHelp() []keybind.Keybind {
	var bindings []keybind.Keybind
	if index := p.focusIndex(); index >= 0 {
		bindings = append(bindings, p.columns[index].wheel.ShortHelp()...)
	}
	if p.selectableCount() > 1 {
		bindings = append(bindings, p.keyMap.PrevColumn, p.keyMap.NextColumn)
	}
	return append(bindings, p.helpKeys...)
}

// FullHelp returns the full help of the focused column with the column keys
// as an extra group.
func (p *Picker) FullHelp() [][]keybind.Keybind {
	var groups [][]keybind.Keybind
	if index := p.focusIndex(); index >= 0 {
		groups = append(groups, p.columns[index].wheel.FullHelp()...)
	}
	if p.selectableCount() > 1 {
		groups = append(groups, []keybind.Keybind{p.keyMap.PrevColumn, p.keyMap.NextColumn})
	}
	if len(p.helpKeys) > 0 {
		groups = append(groups, p.helpKeys)
	}
	return groups
}

// HelpTitle names the focused column in the help bar when there is more
// than one column to choose from.
func (p *Picker) HelpTitle() string {
	if p.selectableCount() < 2 {
		return ""
	}
	if index := p.focusIndex(); index >= 0 {
		return p.columns[index].name
	}
	return ""
}

// GetDesiredHeight returns the rows the picker needs: the tallest visible
// wheel plus the help bar and the borders.
func (p *Picker) GetDesiredHeight() int {
	height := 0
	for _, c := range p.columns {
		if c.visible {
			height = max(height, c.wheel.GetDesiredHeight())
		}
	}
	if p.help != nil {
		_, _, width, _ := p.GetInnerRect()
		height += p.help.GetDesiredHeight(width)
	}
	_, _, _, outer := p.GetRect()
	_, _, _, inner := p.GetInnerRect()
	return height + outer - inner
}

// IsDirty returns whether this primitive or one of its visible columns needs
// redraw.
func (p *Picker) IsDirty() bool {
	if p.Box.IsDirty() {
		return true
	}
	for _, c := range p.columns {
		if c.visible && c.wheel.IsDirty() {
			return true
		}
	}
	return p.help != nil && p.help.IsDirty()
}

// MarkClean marks this primitive and all columns as clean.
func (p *Picker) MarkClean() {
	p.Box.MarkClean()
	for _, c := range p.columns {
		c.wheel.MarkClean()
	}
	if p.help != nil {
		p.help.MarkClean()
	}
}

// HasFocus returns whether or not this primitive has focus.
func (p *Picker) HasFocus() bool {
	for _, c := range p.columns {
		if c.enabled && c.wheel.HasFocus() {
			return true
		}
	}
	return p.Box.HasFocus()
}

// Focus is called by the application when the primitive receives focus. It
// hands the focus on to the column that had it last.
func (p *Picker) Focus(delegate func(p wheel.Primitive)) {
	if delegate == nil {
		return // We cannot delegate so we cannot focus.
	}
	p.setFocus = delegate
	if index := p.focusIndex(); index >= 0 {
		p.focused = index
		delegate(p.columns[index].wheel)
		return
	}
	p.Box.Focus(delegate)
}

// Draw draws this primitive onto the screen.
func (p *Picker) Draw(screen tcell.Screen) {
	p.DrawForSubclass(screen, p)
	defer p.MarkClean()

	x, y, width, height := p.GetInnerRect()
	if p.help != nil {
		helpHeight := min(p.help.GetDesiredHeight(width), height)
		height -= helpHeight
		p.help.SetRect(x, y+height, width, helpHeight)
		p.help.Draw(screen)
	}

	var dimmed *dimScreen
	for _, l := range p.layout(x, width) {
		c := p.columns[l.index]
		c.wheel.SetRect(l.x, y, l.width, height)
		if c.enabled {
			c.wheel.Draw(screen)
			continue
		}
		if dimmed == nil {
			dimmed = newDimScreen(screen, p.disabledStyle)
		}
		c.wheel.Draw(dimmed)
	}
}

// InputHandler moves the focus between columns and passes all other keys to
// the focused column.
func (p *Picker) InputHandler(event *tcell.EventKey) wheel.Command {
	switch {
	case keybind.Matches(event, p.keyMap.PrevColumn):
		return p.moveFocus(-1)
	case keybind.Matches(event, p.keyMap.NextColumn):
		return p.moveFocus(1)
	}
	for _, c := range p.columns {
		if c.enabled && c.visible && c.wheel.HasFocus() {
			return c.wheel.InputHandler(event)
		}
	}
	return nil
}

// MouseHandler passes mouse events to the enabled column under the pointer.
// A column that captured the mouse receives the events directly from the
// application until it releases it.
func (p *Picker) MouseHandler(action wheel.MouseAction, event *tcell.EventMouse) (wheel.Primitive, wheel.Command) {
	x, y := event.Position()
	if !p.InRect(x, y) {
		return nil, nil
	}
	for index, c := range p.columns {
		if !c.visible || !c.enabled || !c.wheel.InRect(x, y) {
			continue
		}
		capture, cmd := c.wheel.MouseHandler(action, event)
		if action == wheel.MouseLeftDown {
			p.focused = index
		}
		return capture, cmd
	}
	return nil, nil
}

// moveFocus focuses the next selectable column in the given direction,
// wrapping around at the ends.
func (p *Picker) moveFocus(direction int) wheel.Command {
	current := p.focusIndex()
	if current < 0 {
		return nil
	}
	for step := 1; step < len(p.columns); step++ {
		index := (current + direction*step + len(p.columns)*step) % len(p.columns)
		if c := p.columns[index]; c.visible && c.enabled {
			p.focused = index
			return wheel.SetFocusCommand{Target: c.wheel}
		}
	}
	return wheel.ConsumeEventCommand{}
}

// focusIndex returns the column holding the focus, else the last focused
// column if it can still take it, else the first one that can. It returns -1
// if no column is selectable.
func (p *Picker) focusIndex() int {
	for index, c := range p.columns {
		if c.visible && c.enabled && c.wheel.HasFocus() {
			return index
		}
	}
	if p.focused >= 0 && p.focused < len(p.columns) {
		if c := p.columns[p.focused]; c.visible && c.enabled {
			return p.focused
		}
	}
	for index, c := range p.columns {
		if c.visible && c.enabled {
			return index
		}
	}
	return -1
}

func (p *Picker) selectableCount() int {
	count := 0
	for _, c := range p.columns {
		if c.visible && c.enabled {
			count++
		}
	}
	return count
}

func (p *Picker) column(w *wheel.Wheel) int {
	for index, c := range p.columns {
		if c.wheel == w {
			return index
		}
	}
	return -1
}

func (p *Picker) index(name string) int {
	for index, c := range p.columns {
		if c.name == name {
			return index
		}
	}
	return -1
}

func (p *Picker) removeAt(index int) {
	c := p.columns[index]
	c.wheel.RemoveListener(c.listener)
	c.wheel.SetFocusFunc(nil).SetBlurFunc(nil)
	if c.wheel.HasFocus() {
		c.wheel.Blur()
	}
	p.columns = append(p.columns[:index], p.columns[index+1:]...)
	switch {
	case p.focused == index:
		p.focused = -1
	case p.focused > index:
		p.focused--
	}
}

// placement is the horizontal position of a visible column.
type placement struct {
	index    int
	x, width int
}

// layout places the visible columns from left to right. Fixed columns get
// their width as far as it fits. The others share what is left, the leftmost
// ones taking the remainder.
func (p *Picker) layout(x, width int) []placement {
	var visible []int
	fixed, flexible := 0, 0
	for index, c := range p.columns {
		if !c.visible {
			continue
		}
		visible = append(visible, index)
		if c.width > 0 {
			fixed += c.width
		} else {
			flexible++
		}
	}
	if len(visible) == 0 {
		return nil
	}

	free := max(width-fixed-p.gap*(len(visible)-1), 0)
	var share, extra int
	if flexible > 0 {
		share, extra = free/flexible, free%flexible
	}

	placements := make([]placement, 0, len(visible))
	right := x + width
	for _, index := range visible {
		w := p.columns[index].width
		if w == 0 {
			w = share
			if extra > 0 {
				w++
				extra--
			}
		}
		w = min(w, max(right-x, 0))
		placements = append(placements, placement{index: index, x: x, width: w})
		x += w + p.gap
	}
	return placements
}

// dimScreen applies a style on top of everything drawn through it.
type dimScreen struct {
	tcell.Screen
	overlay tcell.Style
}

func newDimScreen(screen tcell.Screen, overlay tcell.Style) *dimScreen {
	return &dimScreen{
		Screen:  screen,
		overlay: overlay,
	}
}

func (s *dimScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, applyOverlayStyle(style, s.overlay))
}

func (s *dimScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	return s.Screen.Put(x, y, str, applyOverlayStyle(style, s.overlay))
}

func (s *dimScreen) PutStr(x int, y int, str string) {
	s.Screen.PutStrStyled(x, y, str, applyOverlayStyle(tcell.StyleDefault, s.overlay))
}

func (s *dimScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	s.Screen.PutStrStyled(x, y, str, applyOverlayStyle(style, s.overlay))
}

// applyOverlayStyle sets the colors the overlay sets explicitly and adds its
// attributes. Attributes of the base style are never removed.
func applyOverlayStyle(base tcell.Style, overlay tcell.Style) tcell.Style {
	if fg := overlay.GetForeground(); fg != tcell.ColorDefault {
		base = base.Foreground(fg)
	}
	if bg := overlay.GetBackground(); bg != tcell.ColorDefault {
		base = base.Background(bg)
	}

	if overlay.HasBold() {
		base = base.Bold(true)
	}
	if overlay.HasDim() {
		base = base.Dim(true)
	}
	if overlay.HasItalic() {
		base = base.Italic(true)
	}
	if overlay.HasReverse() {
		base = base.Reverse(true)
	}
	if overlay.HasStrikeThrough() {
		base = base.StrikeThrough(true)
	}
	return base
}

var (
	_ wheel.Primitive = &Picker{}
	_ wheel.Animated  = &Picker{}
	_ help.KeyMap     = &Picker{}
	_ help.Titled     = &Picker{}
)
