package wheel

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	ContrastBackgroundColor  tcell.Color // Background of the wheel's selection band.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles.
	GraphicsColor            tcell.Color // Selection indicator markers.
	PrimaryTextColor         tcell.Color // Item text.
	SecondaryTextColor       tcell.Color // Text of the selected item.
	ShadowColor              tcell.Color // Color the wheel's head and tail fade into.
}

// Styles defines the theme for applications. The default is for a black
// background with white text and a yellow selection.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	ContrastBackgroundColor:  color.Navy,
	BorderColor:              color.White,
	TitleColor:               color.White,
	GraphicsColor:            color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	ShadowColor:              color.NewRGBColor(0x11, 0x11, 0x11),
}
