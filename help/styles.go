package help

import (
	"github.com/gdamore/tcell/v3"
	"github.com/xqrs/wheel"
)

// Styles holds the styles of the help bar.
type Styles struct {
	Key       tcell.Style
	Desc      tcell.Style
	Separator tcell.Style
	// Title styles the name of the column the keys act on.
	Title tcell.Style
}

// DefaultStyles derives the help styles from wheel.Styles: keys in the color
// of the selected item, the title in the title color and separators dimmed.
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(wheel.Styles.PrimitiveBackgroundColor)
	desc := base.Foreground(wheel.Styles.PrimaryTextColor)
	return Styles{
		Key:       base.Foreground(wheel.Styles.SecondaryTextColor),
		Desc:      desc,
		Separator: desc.Dim(true),
		Title:     base.Foreground(wheel.Styles.TitleColor).Bold(true),
	}
}
