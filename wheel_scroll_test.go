package wheel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type position struct {
	Item   int
	Offset int
}

func positionOf(w *Wheel) position {
	return position{Item: w.GetCurrentItem(), Offset: w.offset}
}

func TestScrollByZeroIsNoop(t *testing.T) {
	for _, cyclic := range []bool{false, true} {
		w, _ := newTestWheel(5, 10, 50)
		w.SetCyclic(cyclic)
		w.SetCurrentItem(3, false)
		var r recorder
		r.attach(w)

		if w.scrollBy(0) {
			t.Error("scrollBy(0) reported a clamp")
		}
		if diff := cmp.Diff(position{Item: 3}, positionOf(w)); diff != "" {
			t.Errorf("cyclic=%v: position mismatch (-want +got):\n%s", cyclic, diff)
		}
		if len(r.events) != 0 {
			t.Errorf("cyclic=%v: unexpected events %v", cyclic, r.events)
		}
	}
}

func TestScrollByDragScenario(t *testing.T) {
	w, _ := newTestWheel(4, 100, 300)
	w.SetCurrentItem(2, false)
	var r recorder
	r.attach(w)

	var got []position
	for _, delta := range []int{30, 40, 45} {
		w.scrollBy(delta)
		got = append(got, positionOf(w))
	}

	want := []position{
		{Item: 2, Offset: 30},
		{Item: 1, Offset: -30},
		{Item: 1, Offset: 15},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"changed 2->1"}, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollByRoundTrip(t *testing.T) {
	for _, cyclic := range []bool{false, true} {
		w, _ := newTestWheel(5, 10, 50)
		w.SetCyclic(cyclic)
		w.SetCurrentItem(2, false)

		w.scrollBy(10)
		if diff := cmp.Diff(position{Item: 1}, positionOf(w)); diff != "" {
			t.Errorf("cyclic=%v: after +h (-want +got):\n%s", cyclic, diff)
		}
		w.scrollBy(-10)
		if diff := cmp.Diff(position{Item: 2}, positionOf(w)); diff != "" {
			t.Errorf("cyclic=%v: after -h (-want +got):\n%s", cyclic, diff)
		}
	}
}

func TestScrollByRounding(t *testing.T) {
	tests := []struct {
		name   string
		start  int
		deltas []int
		want   position
	}{
		{name: "half item stays", start: 2, deltas: []int{5}, want: position{Item: 2, Offset: 5}},
		{name: "past half moves back", start: 2, deltas: []int{5, 1}, want: position{Item: 1, Offset: -4}},
		{name: "past half moves forward", start: 2, deltas: []int{-6}, want: position{Item: 3, Offset: 4}},
		{name: "several items", start: 2, deltas: []int{-23}, want: position{Item: 4, Offset: -3}},
		{name: "first item keeps offset", start: 0, deltas: []int{8}, want: position{Item: 0, Offset: 8}},
		{name: "last item keeps offset", start: 4, deltas: []int{-8}, want: position{Item: 4, Offset: -8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWheel(5, 10, 50)
			w.SetCurrentItem(tt.start, false)
			for _, delta := range tt.deltas {
				w.scrollBy(delta)
			}
			if diff := cmp.Diff(tt.want, positionOf(w)); diff != "" {
				t.Errorf("position mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScrollByBoundedConverges(t *testing.T) {
	w, _ := newTestWheel(5, 10, 50)

	for i := 0; i < 5; i++ {
		w.scrollBy(-1000)
		if got := w.GetCurrentItem(); got < 0 || got > 4 {
			t.Fatalf("GetCurrentItem() = %d, out of range", got)
		}
	}
	if diff := cmp.Diff(position{Item: 4, Offset: -50}, positionOf(w)); diff != "" {
		t.Errorf("after large negative deltas (-want +got):\n%s", diff)
	}

	for i := 0; i < 5; i++ {
		if !w.scrollBy(1000) {
			t.Errorf("scrollBy(1000) #%d did not clamp", i)
		}
	}
	if diff := cmp.Diff(position{Item: 0, Offset: 50}, positionOf(w)); diff != "" {
		t.Errorf("after large positive deltas (-want +got):\n%s", diff)
	}
}

func TestScrollByCyclicWraps(t *testing.T) {
	w, _ := newTestWheel(5, 10, 50)
	w.SetCyclic(true)
	var r recorder
	r.attach(w)

	w.scrollBy(10)
	w.scrollBy(-20)
	w.scrollBy(-30)

	want := []string{"changed 0->4", "changed 4->1", "changed 1->4"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(position{Item: 4}, positionOf(w)); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestJustifySmallOffsetEndsImmediately(t *testing.T) {
	w, s := newTestWheel(5, 10, 50)
	var r recorder
	r.attach(w)

	w.beginScroll()
	w.beginScroll()
	w.offset = minDeltaForScrolling
	w.justify()

	if len(s.frames) != 0 {
		t.Error("justify scheduled an animation for a tiny offset")
	}
	if diff := cmp.Diff([]string{"started", "finished"}, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if w.offset != 0 || w.IsScrolling() {
		t.Errorf("offset = %d, scrolling = %v; want settled", w.offset, w.IsScrolling())
	}
}

func TestJustifyAnimatesBack(t *testing.T) {
	w, s := newTestWheel(5, 10, 50)
	w.SetCurrentItem(2, false)
	var r recorder
	r.attach(w)

	w.beginScroll()
	w.scrollBy(4)
	w.justify()
	if !w.IsScrolling() {
		t.Fatal("wheel finished before the snap-back ran")
	}
	s.settle(t)

	if diff := cmp.Diff([]string{"started", "finished"}, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(position{Item: 2}, positionOf(w)); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}

func TestClampStopsAnimationAndSettles(t *testing.T) {
	w, s := newTestWheel(3, 10, 20)
	var r recorder
	r.attach(w)

	w.ScrollItems(-5, 0)
	s.settle(t)

	if diff := cmp.Diff([]string{"started", "finished"}, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(position{}, positionOf(w)); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
	if w.IsScrolling() || w.scroller.IsRunning() {
		t.Error("wheel still in motion")
	}
}

func TestClampWhileDraggingDoesNotJustify(t *testing.T) {
	w, _ := newTestWheel(3, 10, 20)
	l := (*wheelScrollListener)(w)

	w.dragging = true
	l.scrolled(1000)
	if w.scroller.IsRunning() {
		t.Error("clamp during a drag started the snap-back")
	}

	w.dragging = false
	l.scrolled(1000)
	if !w.scroller.IsRunning() {
		t.Error("clamp after a drag did not start the snap-back")
	}
}

func TestScrollItemsWithoutScheduler(t *testing.T) {
	w, _ := newTestWheel(10, 10, 50)
	w.SetFrameScheduler(nil)
	var r recorder
	r.attach(w)

	w.ScrollItems(3, 0)

	want := []string{"started", "changed 0->3", "finished"}
	if diff := cmp.Diff(want, r.events); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
	if w.IsScrolling() {
		t.Error("wheel still scrolling")
	}
}

func TestStopScrollingEndsMotion(t *testing.T) {
	w, s := newTestWheel(10, 10, 50)
	var r recorder
	r.attach(w)

	w.ScrollItems(3, 0)
	for i := 0; i < 5; i++ {
		s.tick()
	}
	w.StopScrolling()
	item := w.GetCurrentItem()
	s.settle(t)

	if r.events[0] != "started" || r.events[len(r.events)-1] != "finished" {
		t.Errorf("events = %v, want started ... finished", r.events)
	}
	if diff := cmp.Diff(position{Item: item}, positionOf(w)); diff != "" {
		t.Errorf("position mismatch (-want +got):\n%s", diff)
	}
}
