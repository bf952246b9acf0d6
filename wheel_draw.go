package wheel

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Draw draws the wheel: the item strip, the selection band and the head and
// tail shadows.
func (w *Wheel) Draw(screen tcell.Screen) {
	w.DrawForSubclass(screen, w)
	defer w.MarkClean()

	x, y, width, height := w.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	if w.itemCount() > 0 {
		itemHeight := w.getItemHeight()
		w.updateView()
		if w.getItemHeight() != itemHeight {
			// The first measurement changes the range.
			w.updateView()
		}
		w.drawItems(screen, x, y, width, height)
		w.drawCenter(screen, x, y, width, height)
	}
	w.drawShadows(screen, x, y, width, height)
}

// drawItems lays the window out so the current item sits in the middle of
// the viewport, displaced by the scroll offset.
func (w *Wheel) drawItems(screen tcell.Screen, x, y, width, height int) {
	itemHeight := w.getItemHeight()
	top := (w.currentItem-w.firstItem)*itemHeight + (itemHeight-height)/2

	itemX, itemWidth := x+wheelPadding, width-2*wheelPadding
	if itemWidth <= 0 {
		itemX, itemWidth = x, width
	}

	clipped := newClippedScreen(screen, x, y, width, height)
	for i, item := range w.items {
		row := i*itemHeight - top + w.offset
		if row+itemHeight <= 0 || row >= height {
			continue
		}
		item.SetRect(itemX, y+row, itemWidth, itemHeight)
		item.Draw(clipped)
	}
}

// drawCenter restyles the rows of the current item and puts markers in the
// padding columns.
func (w *Wheel) drawCenter(screen tcell.Screen, x, y, width, height int) {
	itemHeight := w.getItemHeight()
	bandTop := (height - itemHeight) / 2
	fg, bg := w.indicatorStyle.GetForeground(), w.indicatorStyle.GetBackground()

	for row := max(bandTop, 0); row < min(bandTop+itemHeight, height); row++ {
		for col := x; col < x+width; {
			str, style, cellWidth := screen.Get(col, y+row)
			if str == "" {
				str = " "
			}
			if fg != tcell.ColorDefault {
				style = style.Foreground(fg)
			}
			if bg != tcell.ColorDefault {
				style = style.Background(bg)
			}
			screen.Put(col, y+row, str, style)
			col += max(cellWidth, 1)
		}
	}

	if width < 2*wheelPadding+1 {
		return
	}
	markerRow := y + bandTop + itemHeight/2
	if markerRow < y || markerRow >= y+height {
		return
	}
	markerStyle := w.indicatorStyle
	if fg == tcell.ColorDefault {
		markerStyle = markerStyle.Foreground(Styles.GraphicsColor)
	}
	screen.Put(x, markerRow, GeometricRightPointingSmallTriangle, markerStyle)
	screen.Put(x+width-1, markerRow, GeometricLeftPointingSmallTriangle, markerStyle)
}

// drawShadows fades the text of the first and last rows into the shadow
// color, strongest at the edges.
func (w *Wheel) drawShadows(screen tcell.Screen, x, y, width, height int) {
	rows := min(w.getItemHeight()*3/2, height/2)
	if rows <= 0 {
		return
	}
	shadow, ok := toColorful(w.shadowColor)
	if !ok {
		return
	}

	for i := 0; i < rows; i++ {
		t := float64(rows-i) / float64(rows+1)
		w.shadeRow(screen, x, y+i, width, shadow, t)
		w.shadeRow(screen, x, y+height-1-i, width, shadow, t)
	}
}

// shadeRow blends the foreground of every cell in a row toward shadow by t.
func (w *Wheel) shadeRow(screen tcell.Screen, x, y, width int, shadow colorful.Color, t float64) {
	for col := x; col < x+width; {
		str, style, cellWidth := screen.Get(col, y)
		if str != "" && str != " " {
			if fg, ok := toColorful(style.GetForeground()); ok {
				screen.Put(col, y, str, style.Foreground(fromColorful(fg.BlendLab(shadow, t))))
			}
		}
		col += max(cellWidth, 1)
	}
}

// toColorful converts a tcell color with a known RGB value.
func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func fromColorful(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NewRGBColor(int32(r), int32(g), int32(b))
}

// clippedScreen drops everything drawn outside a rectangle so item views can
// be placed partly outside the viewport.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.inBounds(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.y || y >= s.y+s.height {
		return
	}

	gr := uniseg.NewGraphemes(str)
	for gr.Next() {
		cluster := gr.Str()
		width := max(uniseg.StringWidth(cluster), 1)
		if x >= s.x+s.width {
			return
		}
		if x >= s.x && x+width <= s.x+s.width {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}
