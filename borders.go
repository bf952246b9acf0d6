package wheel

import (
	"errors"
	"fmt"
	"strings"
)

// Glyphs used for borders and the wheel's selection indicator, written as
// \u escapes to keep the source ASCII-safe.
const (
	SemigraphicsHorizontalEllipsis = "…" // …

	BoxDrawingsLightHorizontal      = "─" // ─
	BoxDrawingsHeavyHorizontal      = "━" // ━
	BoxDrawingsLightVertical        = "│" // │
	BoxDrawingsHeavyVertical        = "┃" // ┃
	BoxDrawingsLightDownAndRight    = "┌" // ┌
	BoxDrawingsHeavyDownAndRight    = "┏" // ┏
	BoxDrawingsLightDownAndLeft     = "┐" // ┐
	BoxDrawingsHeavyDownAndLeft     = "┓" // ┓
	BoxDrawingsLightUpAndRight      = "└" // └
	BoxDrawingsHeavyUpAndRight      = "┗" // ┗
	BoxDrawingsLightUpAndLeft       = "┘" // ┘
	BoxDrawingsHeavyUpAndLeft       = "┛" // ┛
	BoxDrawingsDoubleHorizontal     = "═" // ═
	BoxDrawingsDoubleVertical       = "║" // ║
	BoxDrawingsDoubleDownAndRight   = "╔" // ╔
	BoxDrawingsDoubleDownAndLeft    = "╗" // ╗
	BoxDrawingsDoubleUpAndRight     = "╚" // ╚
	BoxDrawingsDoubleUpAndLeft      = "╝" // ╝
	BoxDrawingsLightArcDownAndRight = "╭" // ╭
	BoxDrawingsLightArcDownAndLeft  = "╮" // ╮
	BoxDrawingsLightArcUpAndLeft    = "╯" // ╯
	BoxDrawingsLightArcUpAndRight   = "╰" // ╰

	GeometricRightPointingSmallTriangle = "▸" // ▸
	GeometricLeftPointingSmallTriangle  = "◂" // ◂
)

// BorderSet defines the glyphs of a box border.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

// BorderSetHidden draws the border as blank cells so the inner rect keeps its
// size.
func BorderSetHidden() BorderSet {
	return BorderSet{" ", " ", " ", " ", " ", " ", " ", " "}
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	b := BorderSetPlain()
	b.TopLeft = BoxDrawingsLightArcDownAndRight
	b.TopRight = BoxDrawingsLightArcDownAndLeft
	b.BottomLeft = BoxDrawingsLightArcUpAndRight
	b.BottomRight = BoxDrawingsLightArcUpAndLeft
	return b
}

func BorderSetThick() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsHeavyHorizontal,
		Bottom:      BoxDrawingsHeavyHorizontal,
		Left:        BoxDrawingsHeavyVertical,
		Right:       BoxDrawingsHeavyVertical,
		TopLeft:     BoxDrawingsHeavyDownAndRight,
		TopRight:    BoxDrawingsHeavyDownAndLeft,
		BottomLeft:  BoxDrawingsHeavyUpAndRight,
		BottomRight: BoxDrawingsHeavyUpAndLeft,
	}
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsDoubleHorizontal,
		Bottom:      BoxDrawingsDoubleHorizontal,
		Left:        BoxDrawingsDoubleVertical,
		Right:       BoxDrawingsDoubleVertical,
		TopLeft:     BoxDrawingsDoubleDownAndRight,
		TopRight:    BoxDrawingsDoubleDownAndLeft,
		BottomLeft:  BoxDrawingsDoubleUpAndRight,
		BottomRight: BoxDrawingsDoubleUpAndLeft,
	}
}

// ErrUnknownBorder is returned by BorderByName for names it does not know.
var ErrUnknownBorder = errors.New("unknown border")

// BorderByName returns the sides and border set for a config name: none,
// plain, round, thick, double or hidden.
func BorderByName(name string) (Borders, BorderSet, error) {
	switch strings.ToLower(name) {
	case "none":
		return BordersNone, BorderSetPlain(), nil
	case "plain":
		return BordersAll, BorderSetPlain(), nil
	case "round":
		return BordersAll, BorderSetRound(), nil
	case "thick":
		return BordersAll, BorderSetThick(), nil
	case "double":
		return BordersAll, BorderSetDouble(), nil
	case "hidden":
		return BordersAll, BorderSetHidden(), nil
	}
	return BordersNone, BorderSet{}, fmt.Errorf("%w: %q", ErrUnknownBorder, name)
}

// Borders is a set of box sides.
type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
