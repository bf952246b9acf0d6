package wheel

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/xqrs/wheel/keybind"
	"gopkg.in/yaml.v3"
)

// Config is the YAML form of a wheel's settings. Apart from cyclic, zero
// values leave the corresponding setting alone.
//
//	visible_items: 7
//	cyclic: true
//	scroll_duration: 250ms
//	interpolator: decelerate
//	shadow_color: "#111111"
//	border: round
//	title: Hour
//	keys:
//	  prev: [up, k, ctrl+p]
type Config struct {
	VisibleItems   int     `yaml:"visible_items"`
	Cyclic         bool    `yaml:"cyclic"`
	ItemHeight     int     `yaml:"item_height"`
	ScrollDuration string  `yaml:"scroll_duration"`
	Interpolator   string  `yaml:"interpolator"`
	Deceleration   float64 `yaml:"deceleration"`
	TapThreshold   int     `yaml:"tap_threshold"`

	ShadowColor         string `yaml:"shadow_color"`
	IndicatorForeground string `yaml:"indicator_foreground"`
	IndicatorBackground string `yaml:"indicator_background"`

	// Border is one of none, plain, round, thick, double or hidden. Any of
	// them but none draws all four sides.
	Border     string `yaml:"border"`
	Title      string `yaml:"title"`
	TitleAlign string `yaml:"title_align"`

	// Keys maps prev, next, prev_page, next_page, first and last to the
	// keys that trigger them.
	Keys map[string][]string `yaml:"keys"`
}

// DefaultConfig returns the settings of a new wheel.
func DefaultConfig() Config {
	return Config{
		VisibleItems:   DefaultVisibleItems,
		ScrollDuration: defaultScrollDuration.String(),
		Interpolator:   "ease-out",
		Deceleration:   defaultDeceleration,
		TapThreshold:   1,
	}
}

// LoadConfig decodes a YAML config. Unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding wheel config: %w", err)
	}
	return cfg, nil
}

// ApplyConfig applies cfg to the wheel. Nothing is changed when cfg is
// invalid.
func (w *Wheel) ApplyConfig(cfg Config) error {
	var (
		duration     time.Duration
		interpolator Interpolator
		err          error
	)
	if cfg.ScrollDuration != "" {
		if duration, err = time.ParseDuration(cfg.ScrollDuration); err != nil {
			return fmt.Errorf("scroll_duration: %w", err)
		}
	}
	if cfg.Interpolator != "" {
		if interpolator, err = InterpolatorByName(cfg.Interpolator); err != nil {
			return fmt.Errorf("interpolator: %w", err)
		}
	}
	shadow, err := parseColor("shadow_color", cfg.ShadowColor)
	if err != nil {
		return err
	}
	fg, err := parseColor("indicator_foreground", cfg.IndicatorForeground)
	if err != nil {
		return err
	}
	bg, err := parseColor("indicator_background", cfg.IndicatorBackground)
	if err != nil {
		return err
	}
	keyMap, err := applyKeys(w.keyMap, cfg.Keys)
	if err != nil {
		return err
	}
	var (
		borders   Borders
		borderSet BorderSet
	)
	if cfg.Border != "" {
		if borders, borderSet, err = BorderByName(cfg.Border); err != nil {
			return fmt.Errorf("border: %w", err)
		}
	}
	var align Alignment
	if cfg.TitleAlign != "" {
		if align, err = AlignmentByName(cfg.TitleAlign); err != nil {
			return fmt.Errorf("title_align: %w", err)
		}
	}

	if cfg.VisibleItems > 0 {
		w.SetVisibleItems(cfg.VisibleItems)
	}
	w.SetCyclic(cfg.Cyclic)
	if cfg.ItemHeight > 0 {
		w.SetItemHeight(cfg.ItemHeight)
	}
	if duration > 0 {
		w.SetScrollDuration(duration)
	}
	if interpolator != nil {
		w.SetInterpolator(interpolator)
	}
	if cfg.Deceleration > 0 {
		w.SetDeceleration(cfg.Deceleration)
	}
	if cfg.TapThreshold > 0 {
		w.SetTapThreshold(cfg.TapThreshold)
	}
	if shadow != tcell.ColorDefault {
		w.SetShadowColor(shadow)
	}
	style := w.indicatorStyle
	if fg != tcell.ColorDefault {
		style = style.Foreground(fg)
	}
	if bg != tcell.ColorDefault {
		style = style.Background(bg)
	}
	w.SetIndicatorStyle(style)
	w.SetKeyMap(keyMap)
	if cfg.Border != "" {
		w.SetBorders(borders).SetBorderSet(borderSet)
	}
	if cfg.Title != "" {
		w.SetTitle(cfg.Title)
	}
	if cfg.TitleAlign != "" {
		w.SetTitleAlignment(align)
	}

	Logger.Debug("wheel config applied", "visible_items", w.visibleItems, "cyclic", w.cyclic)
	return nil
}

// parseColor parses a hex color such as "#ff8800". An empty string yields
// the default color.
func parseColor(field, hex string) (tcell.Color, error) {
	if hex == "" {
		return tcell.ColorDefault, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("%s: %w", field, err)
	}
	r, g, b := c.RGB255()
	return color.NewRGBColor(int32(r), int32(g), int32(b)), nil
}

func applyKeys(keyMap WheelKeyMap, keys map[string][]string) (WheelKeyMap, error) {
	for name, bound := range keys {
		var kb *keybind.Keybind
		switch name {
		case "prev":
			kb = &keyMap.Prev
		case "next":
			kb = &keyMap.Next
		case "prev_page":
			kb = &keyMap.PrevPage
		case "next_page":
			kb = &keyMap.NextPage
		case "first":
			kb = &keyMap.First
		case "last":
			kb = &keyMap.Last
		default:
			return keyMap, fmt.Errorf("keys: unknown action %q", name)
		}
		if err := keybind.ValidateKeys(bound...); err != nil {
			return keyMap, fmt.Errorf("keys.%s: %w", name, err)
		}
		kb.SetKeys(bound...)
		kb.SetHelp(strings.Join(bound, "/"), kb.Help().Desc)
	}
	return keyMap, nil
}
