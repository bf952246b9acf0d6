package wheel

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func itemText(item WheelItem) string {
	if item == nil {
		return "<nil>"
	}
	return item.(*TextItem).GetText()
}

func TestNumericAdapter(t *testing.T) {
	a := NewNumericAdapter(59, 0)
	if got := a.ItemCount(); got != 60 {
		t.Fatalf("ItemCount() = %d, want 60", got)
	}
	if got := a.Value(7); got != 7 {
		t.Errorf("Value(7) = %d, want 7", got)
	}

	var got []string
	for _, index := range []int{-1, 0, 9, 59, 60} {
		got = append(got, itemText(a.Item(index, nil)))
	}
	if diff := cmp.Diff([]string{"<nil>", "0", "9", "59", "<nil>"}, got); diff != "" {
		t.Errorf("Item() mismatch (-want +got):\n%s", diff)
	}

	a.SetFormatFunc(func(v int) string { return fmt.Sprintf("%02d", v) })
	if got := itemText(a.Item(5, nil)); got != "05" {
		t.Errorf("formatted Item(5) = %q, want %q", got, "05")
	}
	a.SetFormatFunc(nil)
	if got := itemText(a.Item(5, nil)); got != "5" {
		t.Errorf("Item(5) after reset = %q, want %q", got, "5")
	}
}

func TestNumericAdapterIndex(t *testing.T) {
	a := NewNumericAdapter(-5, 5)
	tests := []struct{ value, want int }{
		{value: -5, want: 0},
		{value: 0, want: 5},
		{value: 5, want: 10},
		{value: 6, want: -1},
		{value: -6, want: -1},
	}
	for _, tt := range tests {
		if got := a.Index(tt.value); got != tt.want {
			t.Errorf("Index(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestAdapterRebindsReusedView(t *testing.T) {
	a := NewNumericAdapter(0, 9)
	view := a.Item(3, nil)
	if got := a.Item(8, view); got != view || itemText(got) != "8" {
		t.Errorf("Item(8, view) = %v, want the same view showing 8", got)
	}
	if got := a.EmptyItem(view); got != view || itemText(got) != "" {
		t.Errorf("EmptyItem(view) = %v, want the same view cleared", got)
	}
}

func TestStringAdapter(t *testing.T) {
	a := NewStringAdapter("a", "b").SetItemHeight(2)
	if got := a.ItemCount(); got != 2 {
		t.Errorf("ItemCount() = %d, want 2", got)
	}
	if got := a.Item(1, nil).Height(10); got != 2 {
		t.Errorf("Height() = %d, want 2", got)
	}
	if got := a.Item(2, nil); got != nil {
		t.Errorf("Item(2) = %v, want nil", got)
	}
	if got := a.Text(-1); got != "" {
		t.Errorf("Text(-1) = %q, want empty", got)
	}
	if got := itemText(a.EmptyItem(nil)); got != "" {
		t.Errorf("EmptyItem() shows %q, want nothing", got)
	}
}

type observerLog struct {
	name string
	log  *[]string
}

func (o observerLog) DataChanged() {
	*o.log = append(*o.log, o.name+" changed")
}

func (o observerLog) DataInvalidated() {
	*o.log = append(*o.log, o.name+" invalidated")
}

func TestAdapterBaseNotifies(t *testing.T) {
	var log []string
	first := observerLog{name: "first", log: &log}
	second := observerLog{name: "second", log: &log}

	a := NewStringAdapter("a", "b")
	a.RegisterObserver(first)
	a.RegisterObserver(second)
	a.RegisterObserver(first)
	a.RegisterObserver(nil)

	a.SetItem(0, "x")
	a.SetItem(0, "x")
	a.SetItem(5, "y")
	a.UnregisterObserver(first)
	a.SetItems("z")

	want := []string{"first changed", "second changed", "second invalidated"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("notifications mismatch (-want +got):\n%s", diff)
	}
}

func TestTextItemDraw(t *testing.T) {
	item := NewTextItem("hello").SetAlignment(AlignmentLeft).SetHeight(3)
	item.SetRect(1, 0, 4, 3)
	screen := newFakeScreen(6, 3)
	item.Draw(screen)

	want := []string{"      ", " hel… ", "      "}
	if diff := cmp.Diff(want, screen.rows()); diff != "" {
		t.Errorf("screen mismatch (-want +got):\n%s", diff)
	}
}
