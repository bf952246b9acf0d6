// Package help draws a key help bar below a wheel or a picker.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/wheel"
	"github.com/xqrs/wheel/keybind"
)

// KeyMap is the source of the keys a Help bar lists.
type KeyMap interface {
	// ShortHelp returns the keys of the one-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns groups of keys. Each group becomes a column.
	FullHelp() [][]keybind.Keybind
}

// Titled is implemented by key maps whose keys act on a named part of the
// screen, such as the focused column of a picker. The title leads the help
// so that it is clear which column the keys move.
type Titled interface {
	HelpTitle() string
}

const (
	shortSeparator = " • "
	columnGap      = "    "
)

// Help is a box that lists the keys of a KeyMap, either on one line or as
// aligned columns. Keys that are disabled are left out. Whatever does not fit
// the width is dropped and marked with an ellipsis.
type Help struct {
	*wheel.Box

	Styles Styles

	keyMap  KeyMap
	showAll bool
}

// New returns a help bar in one-line mode.
func New() *Help {
	return &Help{
		Box:    wheel.NewBox(),
		Styles: DefaultStyles(),
	}
}

// SetKeyMap sets the source of the listed keys.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll switches between the one-line help and the full help.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll returns whether the full help is shown.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// GetDesiredHeight returns the rows needed at the given width.
func (h *Help) GetDesiredHeight(width int) int {
	return len(h.layout(width))
}

// Lines returns the text of the help at the given width, one string per row.
func (h *Help) Lines(width int) []string {
	lines := h.layout(width)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	x, y, width, height := h.GetInnerRect()
	for row, l := range h.layout(width) {
		if row >= height {
			break
		}
		l.draw(screen, x, y+row, width)
	}
}

func (h *Help) layout(width int) []line {
	if h.keyMap == nil {
		return nil
	}
	var title string
	if t, ok := h.keyMap.(Titled); ok {
		title = t.HelpTitle()
	}
	if h.showAll {
		return h.columns(title, h.keyMap.FullHelp(), width)
	}
	if l := h.shortLine(title, h.keyMap.ShortHelp(), width); len(l) > 0 {
		return []line{l}
	}
	return nil
}

// shortLine joins the keys with separators until the next one would not fit.
// A zero width means unlimited.
func (h *Help) shortLine(title string, bindings []keybind.Keybind, width int) line {
	var out line
	if title != "" {
		out = line{{title + ":", h.Styles.Title}}
	}
	items := 0
	for _, kb := range bindings {
		entry := h.entry(kb, 0)
		if entry == nil {
			continue
		}
		next := append(line(nil), out...)
		switch {
		case items > 0:
			next = append(next, piece{shortSeparator, h.Styles.Separator})
		case len(out) > 0:
			next = append(next, piece{" ", h.Styles.Desc})
		}
		next = append(next, entry...)
		if width > 0 && next.width() > width {
			if items == 0 {
				return nil
			}
			return h.ellipsize(out, width)
		}
		out = next
		items++
	}
	if items == 0 {
		return nil
	}
	return out
}

// helpColumn is one group of keys in the full help, already rendered.
type helpColumn struct {
	rows  []line
	width int
}

// columns lays the groups out side by side, keys padded to a common width
// within each group. Groups that do not fit are dropped from the right.
func (h *Help) columns(title string, groups [][]keybind.Keybind, width int) []line {
	var cols []helpColumn
	if title != "" {
		cols = append(cols, newHelpColumn([]line{{{title + ":", h.Styles.Title}}}))
	}
	for _, group := range groups {
		keyWidth := 0
		for _, kb := range group {
			if h.entry(kb, 0) != nil {
				keyWidth = max(keyWidth, wheel.StringWidth(kb.Help().Key))
			}
		}
		var rows []line
		for _, kb := range group {
			if entry := h.entry(kb, keyWidth); entry != nil {
				rows = append(rows, entry)
			}
		}
		if len(rows) > 0 {
			cols = append(cols, newHelpColumn(rows))
		}
	}

	fit, used := 0, 0
	for i, col := range cols {
		need := col.width
		if i > 0 {
			need += len(columnGap)
		}
		if width > 0 && used+need > width {
			break
		}
		fit, used = fit+1, used+need
	}
	if fit == 0 {
		return nil
	}
	truncated := fit < len(cols)
	cols = cols[:fit]

	height := 0
	for _, col := range cols {
		height = max(height, len(col.rows))
	}
	lines := make([]line, height)
	for row := range lines {
		last := 0
		for i, col := range cols {
			if row < len(col.rows) {
				last = i
			}
		}
		var l line
		for i, col := range cols[:last+1] {
			if i > 0 {
				l = append(l, piece{columnGap, h.Styles.Desc})
			}
			var cell line
			if row < len(col.rows) {
				cell = col.rows[row]
			}
			l = append(l, cell...)
			if pad := col.width - cell.width(); i < last && pad > 0 {
				l = append(l, piece{strings.Repeat(" ", pad), h.Styles.Desc})
			}
		}
		lines[row] = l
	}
	if truncated {
		lines[0] = h.ellipsize(lines[0], width)
	}
	return lines
}

func newHelpColumn(rows []line) helpColumn {
	col := helpColumn{rows: rows}
	for _, r := range rows {
		col.width = max(col.width, r.width())
	}
	return col
}

// entry renders "key desc" with the key padded to keyWidth. It returns nil
// for disabled keys and keys without help.
func (h *Help) entry(kb keybind.Keybind, keyWidth int) line {
	help := kb.Help()
	if !kb.Enabled() || (help.Key == "" && help.Desc == "") {
		return nil
	}
	key := help.Key
	if pad := keyWidth - wheel.StringWidth(key); pad > 0 {
		key += strings.Repeat(" ", pad)
	}
	return line{
		{key, h.Styles.Key},
		{" ", h.Styles.Desc},
		{help.Desc, h.Styles.Desc},
	}
}

// ellipsize appends an ellipsis to l if there is room for it.
func (h *Help) ellipsize(l line, width int) line {
	tail := piece{" " + wheel.SemigraphicsHorizontalEllipsis, h.Styles.Separator}
	if width > 0 && l.width()+wheel.StringWidth(tail.text) > width {
		return l
	}
	return append(l, tail)
}

type piece struct {
	text  string
	style tcell.Style
}

// line is a row of styled text.
type line []piece

func (l line) width() int {
	width := 0
	for _, p := range l {
		width += wheel.StringWidth(p.text)
	}
	return width
}

func (l line) String() string {
	var b strings.Builder
	for _, p := range l {
		b.WriteString(p.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, p := range l {
		if width <= 0 {
			return
		}
		_, printed := wheel.PrintWithStyle(screen, p.text, x, y, width, wheel.AlignmentLeft, p.style)
		x += printed
		width -= printed
	}
}
