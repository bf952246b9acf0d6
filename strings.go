package wheel

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// stepState is the grapheme parser state carried between calls to step.
type stepState struct {
	unisegState int
	boundaries  int
	grossLength int
}

// Width returns the grapheme cluster's width in cells.
func (s *stepState) Width() int {
	return s.boundaries >> uniseg.ShiftWidth
}

// GrossLength returns the grapheme cluster's length in bytes.
func (s *stepState) GrossLength() int {
	return s.grossLength
}

// step iterates over grapheme clusters of a string.
func step(str string, state *stepState) (cluster, rest string, newState *stepState) {
	if state == nil {
		state = &stepState{unisegState: -1}
	}
	if len(str) == 0 {
		return "", "", state
	}

	cluster, rest, state.boundaries, state.unisegState = uniseg.StepString(str, state.unisegState)
	state.grossLength = len(cluster)
	return cluster, rest, state
}

// StringWidth returns the number of cells needed to print text on screen.
func StringWidth(text string) (width int) {
	var state *stepState
	for len(text) > 0 {
		_, text, state = step(text, state)
		width += state.Width()
	}
	return
}

// TruncateString shortens text to at most width cells, replacing the cut
// part with an ellipsis.
func TruncateString(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if StringWidth(text) <= width {
		return text
	}
	return runewidth.Truncate(text, width, SemigraphicsHorizontalEllipsis)
}
