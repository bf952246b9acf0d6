package wheel

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/google/go-cmp/cmp"
	"github.com/xqrs/wheel/keybind"
)

func TestLoadConfig(t *testing.T) {
	const input = `
visible_items: 7
cyclic: true
item_height: 2
scroll_duration: 250ms
interpolator: decelerate
deceleration: 90
tap_threshold: 2
shadow_color: "#202020"
indicator_foreground: "#ffcc00"
keys:
  prev: [up, ctrl+p]
  next: [down, ctrl+n]
`
	got, err := LoadConfig(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	want := Config{
		VisibleItems:        7,
		Cyclic:              true,
		ItemHeight:          2,
		ScrollDuration:      "250ms",
		Interpolator:        "decelerate",
		Deceleration:        90,
		TapThreshold:        2,
		ShadowColor:         "#202020",
		IndicatorForeground: "#ffcc00",
		Keys: map[string][]string{
			"prev": {"up", "ctrl+p"},
			"next": {"down", "ctrl+n"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigEmpty(t *testing.T) {
	got, err := LoadConfig(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if diff := cmp.Diff(Config{}, got); diff != "" {
		t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigUnknownField(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("visible: 3\n")); err == nil {
		t.Error("LoadConfig() accepted an unknown field")
	}
}

func TestApplyConfig(t *testing.T) {
	w := NewWheel().SetAdapter(NewNumericAdapter(0, 9))
	cfg := Config{
		VisibleItems:        7,
		Cyclic:              true,
		ItemHeight:          2,
		ScrollDuration:      "250ms",
		Interpolator:        "linear",
		Deceleration:        90,
		TapThreshold:        2,
		ShadowColor:         "#202020",
		IndicatorForeground: "#ffcc00",
		Keys:                map[string][]string{"next": {"ctrl+n"}},
	}
	if err := w.ApplyConfig(cfg); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}

	if w.GetVisibleItems() != 7 || !w.IsCyclic() || w.fixedItemHeight != 2 {
		t.Errorf("layout = (%d, %v, %d), want (7, true, 2)", w.GetVisibleItems(), w.IsCyclic(), w.fixedItemHeight)
	}
	if w.scrollDuration != 250*time.Millisecond {
		t.Errorf("scrollDuration = %v, want 250ms", w.scrollDuration)
	}
	if w.scroller.deceleration != 90 || w.tapThreshold != 2 {
		t.Errorf("deceleration = %v, tapThreshold = %d; want 90, 2", w.scroller.deceleration, w.tapThreshold)
	}
	if got := w.scroller.interpolator(0.5); got != 0.5 {
		t.Errorf("interpolator(0.5) = %v, want linear", got)
	}
	if want := color.NewRGBColor(0x20, 0x20, 0x20); w.shadowColor != want {
		t.Errorf("shadowColor = %v, want %v", w.shadowColor, want)
	}
	if want := color.NewRGBColor(0xff, 0xcc, 0x00); w.indicatorStyle.GetForeground() != want {
		t.Errorf("indicator foreground = %v, want %v", w.indicatorStyle.GetForeground(), want)
	}
	if got := w.indicatorStyle.GetBackground(); got != Styles.ContrastBackgroundColor {
		t.Errorf("indicator background = %v, want it unchanged", got)
	}

	next := w.KeyMap().Next
	if !keybind.Matches(tcell.NewEventKey(tcell.KeyCtrlN, "", tcell.ModCtrl), next) {
		t.Error("ctrl+n does not match the configured next key")
	}
	if keybind.Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), next) {
		t.Error("down still matches after the next key was replaced")
	}
	if diff := cmp.Diff(keybind.Help{Key: "ctrl+n", Desc: "next"}, next.Help()); diff != "" {
		t.Errorf("help mismatch (-want +got):\n%s", diff)
	}
}

func TestApplyConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		target error
	}{
		{name: "duration", cfg: Config{ScrollDuration: "soon"}},
		{name: "interpolator", cfg: Config{Interpolator: "bounce"}, target: ErrUnknownInterpolator},
		{name: "shadow", cfg: Config{ShadowColor: "grey"}},
		{name: "indicator", cfg: Config{IndicatorBackground: "#12"}},
		{name: "key action", cfg: Config{Keys: map[string][]string{"jump": {"x"}}}},
		{name: "key name", cfg: Config{Keys: map[string][]string{"next": {"ctrl+"}}}, target: keybind.ErrInvalidKey},
		{name: "border", cfg: Config{Border: "dotted"}, target: ErrUnknownBorder},
		{name: "title align", cfg: Config{Title: "Hour", TitleAlign: "top"}, target: ErrUnknownAlignment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWheel()
			tt.cfg.Cyclic = true
			tt.cfg.VisibleItems = 9

			err := w.ApplyConfig(tt.cfg)
			if err == nil {
				t.Fatal("ApplyConfig() accepted an invalid config")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("ApplyConfig() error = %v, want %v", err, tt.target)
			}
			if w.IsCyclic() || w.GetVisibleItems() != DefaultVisibleItems || w.GetTitle() != "" {
				t.Error("a rejected config changed the wheel")
			}
		})
	}
}

func TestApplyDefaultConfig(t *testing.T) {
	w := NewWheel()
	if err := w.ApplyConfig(DefaultConfig()); err != nil {
		t.Fatalf("ApplyConfig(DefaultConfig()) error = %v", err)
	}
	if w.GetVisibleItems() != DefaultVisibleItems || w.IsCyclic() {
		t.Errorf("layout = (%d, %v), want defaults", w.GetVisibleItems(), w.IsCyclic())
	}
	if w.scrollDuration != defaultScrollDuration || w.tapThreshold != 1 {
		t.Errorf("scrollDuration = %v, tapThreshold = %d; want defaults", w.scrollDuration, w.tapThreshold)
	}
}

func TestApplyConfigBorder(t *testing.T) {
	tests := []struct {
		border string
		want   []string
	}{
		{border: "plain", want: []string{"┌Hour──────┐", "└──────────┘"}},
		{border: "round", want: []string{"╭Hour──────╮", "╰──────────╯"}},
		{border: "thick", want: []string{"┏Hour━━━━━━┓", "┗━━━━━━━━━━┛"}},
		{border: "double", want: []string{"╔Hour══════╗", "╚══════════╝"}},
		{border: "hidden", want: []string{" Hour       ", "            "}},
	}
	for _, tt := range tests {
		t.Run(tt.border, func(t *testing.T) {
			w := NewWheel().SetAdapter(NewNumericAdapter(0, 9))
			cfg := Config{VisibleItems: 3, Border: tt.border, Title: "Hour", TitleAlign: "left"}
			if err := w.ApplyConfig(cfg); err != nil {
				t.Fatalf("ApplyConfig() error = %v", err)
			}
			screen := newFakeScreen(12, 5)
			w.SetRect(0, 0, 12, 5)
			w.Draw(screen)

			got := []string{screen.row(0), screen.row(4)}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("border rows mismatch (-want +got):\n%s", diff)
			}
			if _, _, width, height := w.GetInnerRect(); width != 10 || height != 3 {
				t.Errorf("inner size = %dx%d, want 10x3", width, height)
			}
		})
	}
}

func TestApplyConfigNoBorder(t *testing.T) {
	w := NewWheel()
	if err := w.ApplyConfig(Config{Border: "round"}); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	if err := w.ApplyConfig(Config{Border: "none"}); err != nil {
		t.Fatalf("ApplyConfig() error = %v", err)
	}
	w.SetRect(0, 0, 8, 5)
	if x, y, width, height := w.GetInnerRect(); x != 0 || y != 0 || width != 8 || height != 5 {
		t.Errorf("inner rect = (%d, %d, %d, %d), want the full rect", x, y, width, height)
	}
}
