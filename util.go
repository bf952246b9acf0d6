package wheel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v3"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// ErrUnknownAlignment is returned by AlignmentByName for names it does not
// know.
var ErrUnknownAlignment = errors.New("unknown alignment")

// AlignmentByName parses left, center or right.
func AlignmentByName(name string) (Alignment, error) {
	switch strings.ToLower(name) {
	case "left":
		return AlignmentLeft, nil
	case "center":
		return AlignmentCenter, nil
	case "right":
		return AlignmentRight, nil
	}
	return AlignmentLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, name)
}

// Print prints text onto the screen into the box at (x,y,maxWidth,1), not
// exceeding that box. The screen's background color is kept.
//
// Returns the number of bytes of text printed and the width used.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, tcell.StyleDefault.Foreground(color), true)
	return end - start, width
}

// PrintWithStyle works like Print but takes a full style, background
// included.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	start, end, width := printWithStyle(screen, text, x, y, 0, maxWidth, alignment, style, false)
	return end - start, width
}

// printWithStyle prints text skipping skipWidth cells at its beginning. It
// returns the start index, end index (exclusive) and screen width of the text
// actually printed. If maintainBackground is set, the style's background is
// replaced by whatever is already on screen.
func printWithStyle(screen tcell.Screen, text string, x, y, skipWidth, maxWidth int, alignment Alignment, style tcell.Style, maintainBackground bool) (start, end, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0, 0
	}

	if maintainBackground {
		style = style.Background(tcell.ColorDefault)
	}

	// Skip the beginning and measure the rest.
	var textWidth int
	state := &stepState{unisegState: -1}
	skipped := *state
	for str := text; len(str) > 0; {
		_, str, state = step(str, state)
		if skipWidth > 0 {
			skipWidth -= state.Width()
			text = str
			skipped = *state
			start += state.GrossLength()
		} else {
			textWidth += state.Width()
		}
	}
	state = &skipped

	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		subtracted := (textWidth - maxWidth) / 2
		for len(text) > 0 && subtracted > 0 {
			_, text, state = step(text, state)
			subtracted -= state.Width()
			textWidth -= state.Width()
			start += state.GrossLength()
		}
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	end = start
	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		if c == "" {
			break
		}
		width := state.Width()
		if width > 0 {
			finalStyle := style
			if maintainBackground {
				_, existing, _ := screen.Get(x, y)
				finalStyle = finalStyle.Background(existing.GetBackground())
			}
			// Fill continuation cells first so the lead cell wins.
			for offset := width - 1; offset > 0; offset-- {
				screen.Put(x+offset, y, " ", finalStyle)
			}
			screen.Put(x, y, c, finalStyle)
		}
		x += width
		end += state.GrossLength()
		printedWidth += width
	}
	return
}
