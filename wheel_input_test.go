package wheel

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/google/go-cmp/cmp"
)

func mouseAt(y int) *tcell.EventMouse {
	return tcell.NewEventMouse(1, y, tcell.ButtonNone, tcell.ModNone)
}

func TestMouseDrag(t *testing.T) {
	w, s := newTestWheel(10, 1, 5)
	w.SetCurrentItem(5, false)
	var r recorder
	r.attach(w)

	capture, cmd := w.MouseHandler(MouseLeftDown, mouseAt(2))
	if capture != w {
		t.Fatalf("press captured %v, want the wheel", capture)
	}
	batch, ok := cmd.(BatchCommand)
	if !ok || len(batch) != 2 || batch[0] != (SetFocusCommand{Target: w}) || batch[1] != (RedrawCommand{}) {
		t.Errorf("press command = %#v, want focus and redraw", cmd)
	}

	s.advance(500 * time.Millisecond)
	if capture, _ := w.MouseHandler(MouseMove, mouseAt(4)); capture != w {
		t.Errorf("drag released the capture")
	}
	if capture, cmd := w.MouseHandler(MouseLeftClick, mouseAt(4)); capture != w || cmd != (ConsumeEventCommand{}) {
		t.Errorf("click during a drag = (%v, %v), want consumed", capture, cmd)
	}

	s.advance(500 * time.Millisecond)
	capture, cmd = w.MouseHandler(MouseLeftUp, mouseAt(4))
	if capture != nil || cmd != (RedrawCommand{}) {
		t.Errorf("release = (%v, %v), want (nil, redraw)", capture, cmd)
	}
	if len(s.frames) != 0 {
		t.Error("a slow release started an animation")
	}

	wantEvents := []string{"started", "changed 5->3", "finished"}
	if diff := cmp.Diff(wantEvents, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseFling(t *testing.T) {
	w, s := newTestWheel(100, 1, 5)
	w.SetCyclic(true)
	w.SetCurrentItem(10, false)
	var r recorder
	r.attach(w)

	w.MouseHandler(MouseLeftDown, mouseAt(0))
	s.advance(30 * time.Millisecond)
	w.MouseHandler(MouseMove, mouseAt(3))
	s.advance(10 * time.Millisecond)
	w.MouseHandler(MouseLeftUp, mouseAt(3))
	if !w.IsScrolling() {
		t.Fatal("fast release did not fling")
	}
	s.settle(t)

	// 100 rows/s decelerating at 60 rows/s² travels 83 rows.
	if got := w.GetCurrentItem(); got != floorMod(7-83, 100) {
		t.Errorf("GetCurrentItem() = %d, want %d", got, floorMod(7-83, 100))
	}
	if r.events[0] != "started" || r.events[len(r.events)-1] != "finished" {
		t.Errorf("events = %v, want started ... finished", r.events)
	}
	var starts, finishes int
	for _, e := range r.events {
		switch e {
		case "started":
			starts++
		case "finished":
			finishes++
		}
	}
	if starts != 1 || finishes != 1 {
		t.Errorf("%d starts and %d finishes, want one of each", starts, finishes)
	}
	if w.offset != 0 || w.IsScrolling() {
		t.Errorf("offset = %d, scrolling = %v; want settled", w.offset, w.IsScrolling())
	}
}

func TestMouseTap(t *testing.T) {
	tests := []struct {
		name       string
		itemHeight int
		viewport   int
		current    int
		cyclic     bool
		y          int
		want       []string
	}{
		{name: "below", itemHeight: 1, viewport: 5, current: 5, y: 3, want: []string{"clicked 6"}},
		{name: "bottom", itemHeight: 1, viewport: 5, current: 5, y: 4, want: []string{"clicked 7"}},
		{name: "above", itemHeight: 1, viewport: 5, current: 5, y: 1, want: []string{"clicked 4"}},
		{name: "top", itemHeight: 1, viewport: 5, current: 5, y: 0, want: []string{"clicked 3"}},
		{name: "center", itemHeight: 1, viewport: 5, current: 5, y: 2},
		{name: "tall band top", itemHeight: 2, viewport: 10, current: 5, y: 4},
		{name: "tall band bottom", itemHeight: 2, viewport: 10, current: 5, y: 5},
		{name: "tall above", itemHeight: 2, viewport: 10, current: 5, y: 3, want: []string{"clicked 4"}},
		{name: "tall below", itemHeight: 2, viewport: 10, current: 5, y: 6, want: []string{"clicked 6"}},
		{name: "tall far below", itemHeight: 2, viewport: 10, current: 5, y: 8, want: []string{"clicked 7"}},
		{name: "tall top", itemHeight: 2, viewport: 10, current: 5, y: 0, want: []string{"clicked 3"}},
		{name: "placeholder", itemHeight: 1, viewport: 5, current: 0, y: 0},
		{name: "cyclic wrap", itemHeight: 1, viewport: 5, current: 0, cyclic: true, y: 0, want: []string{"clicked 8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, s := newTestWheel(10, tt.itemHeight, tt.viewport)
			w.SetCyclic(tt.cyclic)
			w.SetCurrentItem(tt.current, false)
			var r recorder
			r.attach(w)

			w.MouseHandler(MouseLeftDown, mouseAt(tt.y))
			w.MouseHandler(MouseLeftUp, mouseAt(tt.y))
			s.settle(t)

			if diff := cmp.Diff(tt.want, r.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
			if got := w.GetCurrentItem(); got != tt.current {
				t.Errorf("tap moved the wheel to %d", got)
			}
		})
	}
}

func TestMouseTapAfterScrollIsNotAClick(t *testing.T) {
	w, s := newTestWheel(10, 1, 5)
	w.SetCurrentItem(5, false)
	var r recorder
	r.attach(w)

	w.MouseHandler(MouseLeftDown, mouseAt(3))
	w.MouseHandler(MouseMove, mouseAt(4))
	w.MouseHandler(MouseMove, mouseAt(3))
	w.MouseHandler(MouseLeftUp, mouseAt(3))
	s.settle(t)

	want := []string{"started", "changed 5->4", "changed 4->5", "finished"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseTapThreshold(t *testing.T) {
	w, s := newTestWheel(10, 1, 5)
	w.SetCurrentItem(5, false)
	w.SetTapThreshold(3)
	var r recorder
	r.attach(w)

	w.MouseHandler(MouseLeftDown, mouseAt(2))
	w.MouseHandler(MouseMove, mouseAt(3))
	w.MouseHandler(MouseLeftUp, mouseAt(4))
	s.settle(t)

	if diff := cmp.Diff([]string{"clicked 7"}, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestMouseWheelSteps(t *testing.T) {
	w, s := newTestWheel(10, 1, 5)

	if _, cmd := w.MouseHandler(MouseScrollUp, mouseAt(2)); cmd != (RedrawCommand{}) {
		t.Errorf("scroll up command = %v, want redraw", cmd)
	}
	if len(s.frames) != 0 {
		t.Error("scrolling up past the first item started an animation")
	}

	w.MouseHandler(MouseScrollDown, mouseAt(2))
	w.MouseHandler(MouseScrollDown, mouseAt(2))
	s.settle(t)
	if got := w.GetCurrentItem(); got != 1 {
		t.Errorf("GetCurrentItem() = %d, want 1", got)
	}
}

func TestMouseOutsideAndEmpty(t *testing.T) {
	w, _ := newTestWheel(10, 1, 5)
	outside := tcell.NewEventMouse(20, 2, tcell.ButtonNone, tcell.ModNone)
	if capture, cmd := w.MouseHandler(MouseLeftDown, outside); capture != nil || cmd != nil {
		t.Errorf("press outside = (%v, %v), want (nil, nil)", capture, cmd)
	}
	if capture, cmd := w.MouseHandler(MouseLeftClick, mouseAt(2)); capture != nil || cmd != (ConsumeEventCommand{}) {
		t.Errorf("click = (%v, %v), want consumed", capture, cmd)
	}

	empty, _ := newTestWheel(0, 1, 5)
	capture, cmd := empty.MouseHandler(MouseLeftDown, mouseAt(2))
	if capture != nil {
		t.Errorf("press on an empty wheel captured %v", capture)
	}
	if cmd != (SetFocusCommand{Target: empty}) {
		t.Errorf("press on an empty wheel = %v, want focus only", cmd)
	}
}

func keyEvent(k tcell.Key, str string) *tcell.EventKey {
	return tcell.NewEventKey(k, str, tcell.ModNone)
}

func TestInputHandler(t *testing.T) {
	tests := []struct {
		name   string
		cyclic bool
		start  int
		event  *tcell.EventKey
		want   int
		cmd    Command
	}{
		{name: "down", start: 5, event: keyEvent(tcell.KeyDown, ""), want: 6, cmd: RedrawCommand{}},
		{name: "j", start: 5, event: keyEvent(tcell.KeyRune, "j"), want: 6, cmd: RedrawCommand{}},
		{name: "up", start: 5, event: keyEvent(tcell.KeyUp, ""), want: 4, cmd: RedrawCommand{}},
		{name: "k", start: 5, event: keyEvent(tcell.KeyRune, "k"), want: 4, cmd: RedrawCommand{}},
		{name: "page down", start: 5, event: keyEvent(tcell.KeyPgDn, ""), want: 7, cmd: RedrawCommand{}},
		{name: "page up", start: 5, event: keyEvent(tcell.KeyPgUp, ""), want: 3, cmd: RedrawCommand{}},
		{name: "page up clamps", start: 1, event: keyEvent(tcell.KeyPgUp, ""), want: 0, cmd: RedrawCommand{}},
		{name: "home", start: 5, event: keyEvent(tcell.KeyHome, ""), want: 0, cmd: RedrawCommand{}},
		{name: "g", start: 5, event: keyEvent(tcell.KeyRune, "g"), want: 0, cmd: RedrawCommand{}},
		{name: "end", start: 5, event: keyEvent(tcell.KeyEnd, ""), want: 9, cmd: RedrawCommand{}},
		{name: "G", start: 5, event: keyEvent(tcell.KeyRune, "G"), want: 9, cmd: RedrawCommand{}},
		{name: "down at end", start: 9, event: keyEvent(tcell.KeyDown, ""), want: 9, cmd: RedrawCommand{}},
		{name: "unbound", start: 5, event: keyEvent(tcell.KeyRune, "x"), want: 5},
		{name: "cyclic up", cyclic: true, start: 0, event: keyEvent(tcell.KeyUp, ""), want: 9, cmd: RedrawCommand{}},
		{name: "cyclic page down", cyclic: true, start: 9, event: keyEvent(tcell.KeyPgDn, ""), want: 1, cmd: RedrawCommand{}},
		{name: "cyclic home", cyclic: true, start: 5, event: keyEvent(tcell.KeyHome, ""), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, s := newTestWheel(10, 1, 5)
			w.SetCyclic(tt.cyclic)
			w.SetCurrentItem(tt.start, false)

			cmd := w.InputHandler(tt.event)
			s.settle(t)

			if cmd != tt.cmd {
				t.Errorf("InputHandler() = %v, want %v", cmd, tt.cmd)
			}
			if got := w.GetCurrentItem(); got != tt.want {
				t.Errorf("GetCurrentItem() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestInputHandlerCustomKeys(t *testing.T) {
	w, s := newTestWheel(10, 1, 5)
	keyMap := DefaultWheelKeyMap()
	keyMap.Next.SetKeys("ctrl+n")
	w.SetKeyMap(keyMap)

	if cmd := w.InputHandler(keyEvent(tcell.KeyDown, "")); cmd != nil {
		t.Errorf("unbound down returned %v", cmd)
	}
	w.InputHandler(tcell.NewEventKey(tcell.KeyCtrlN, "", tcell.ModCtrl))
	s.settle(t)
	if got := w.GetCurrentItem(); got != 1 {
		t.Errorf("GetCurrentItem() = %d, want 1", got)
	}
}

func TestInputHandlerWithoutItems(t *testing.T) {
	w, _ := newTestWheel(0, 1, 5)
	if cmd := w.InputHandler(keyEvent(tcell.KeyDown, "")); cmd != nil {
		t.Errorf("InputHandler() = %v, want nil", cmd)
	}
}

func ExampleWheel_AddClickListener() {
	w := NewWheel().SetAdapter(NewStringAdapter("mon", "tue", "wed", "thu", "fri"))
	w.SetRect(0, 0, 12, 5)
	w.AddClickListener(ClickedFunc(func(w *Wheel, index int) {
		fmt.Println("clicked", index)
		w.SetCurrentItem(index, false)
	}))

	// Tap the bottom row: two items below the current one.
	w.MouseHandler(MouseLeftDown, tcell.NewEventMouse(3, 4, tcell.ButtonPrimary, tcell.ModNone))
	w.MouseHandler(MouseLeftUp, tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone))
	fmt.Println("current", w.GetCurrentItem())
	// Output:
	// clicked 2
	// current 2
}
