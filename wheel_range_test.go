package wheel

import (
	"fmt"
	"testing"
)

func TestComputeRange(t *testing.T) {
	tests := []struct {
		current, offset, itemHeight, viewport int
		want                                  itemsRange
	}{
		{current: 0, offset: 0, itemHeight: 100, viewport: 300, want: itemsRange{first: -1, count: 3}},
		{current: 5, offset: 0, itemHeight: 1, viewport: 5, want: itemsRange{first: 3, count: 5}},
		{current: 5, offset: 0, itemHeight: 2, viewport: 5, want: itemsRange{first: 4, count: 3}},
		{current: 5, offset: 0, itemHeight: 10, viewport: 5, want: itemsRange{first: 5, count: 1}},
		{current: 5, offset: 3, itemHeight: 10, viewport: 30, want: itemsRange{first: 3, count: 4}},
		{current: 5, offset: -3, itemHeight: 10, viewport: 30, want: itemsRange{first: 4, count: 4}},
		{current: 5, offset: 25, itemHeight: 10, viewport: 30, want: itemsRange{first: 1, count: 6}},
		{current: 5, offset: -25, itemHeight: 10, viewport: 30, want: itemsRange{first: 6, count: 6}},
		{current: 7, offset: 0, itemHeight: 0, viewport: 30, want: itemsRange{first: 7, count: 1}},
		{current: 7, offset: 0, itemHeight: 3, viewport: 0, want: itemsRange{first: 7, count: 1}},
	}
	for _, tt := range tests {
		name := fmt.Sprintf("%d/%d/%d/%d", tt.current, tt.offset, tt.itemHeight, tt.viewport)
		t.Run(name, func(t *testing.T) {
			got := computeRange(tt.current, tt.offset, tt.itemHeight, tt.viewport)
			if got != tt.want {
				t.Errorf("computeRange() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeRangeCoversViewport(t *testing.T) {
	for itemHeight := 1; itemHeight <= 4; itemHeight++ {
		for viewport := 1; viewport <= 12; viewport++ {
			r := computeRange(10, 0, itemHeight, viewport)
			if r.count*itemHeight < viewport {
				t.Errorf("h=%d viewport=%d: %+v does not cover the viewport", itemHeight, viewport, r)
			}
			if r.count%2 != 1 || r.first+r.count/2 != 10 {
				t.Errorf("h=%d viewport=%d: %+v is not centered on 10", itemHeight, viewport, r)
			}
		}
	}
}

func TestItemsRange(t *testing.T) {
	r := itemsRange{first: -1, count: 3}
	if got := r.last(); got != 1 {
		t.Errorf("last() = %d, want 1", got)
	}
	for index, want := range map[int]bool{-2: false, -1: true, 0: true, 1: true, 2: false} {
		if got := r.contains(index); got != want {
			t.Errorf("contains(%d) = %v, want %v", index, got, want)
		}
	}
	if (itemsRange{first: 4}).contains(4) {
		t.Error("empty range contains its first index")
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct{ n, m, want int }{
		{n: 0, m: 10, want: 0},
		{n: 13, m: 10, want: 3},
		{n: -1, m: 10, want: 9},
		{n: -10, m: 10, want: 0},
		{n: -21, m: 10, want: 9},
	}
	for _, tt := range tests {
		if got := floorMod(tt.n, tt.m); got != tt.want {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.n, tt.m, got, tt.want)
		}
	}
}
