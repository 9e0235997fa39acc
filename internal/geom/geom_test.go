package geom

import (
	"math"
	"testing"
)

func TestBox_IsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		box   Box
		empty bool
	}{
		{"zero value", Box{}, true},
		{"zero width", NewBox(1, 1, 0, 5), true},
		{"negative height", NewBox(1, 1, 5, -2), true},
		{"single pixel", NewBox(3, 4, 1, 1), false},
		{"regular", NewBox(0, 0, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestBox_Union(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Box
	}{
		{"empty with box", Empty, NewBox(2, 3, 4, 5), NewBox(2, 3, 4, 5)},
		{"box with empty", NewBox(2, 3, 4, 5), Empty, NewBox(2, 3, 4, 5)},
		{"disjoint", NewBox(0, 0, 2, 2), NewBox(8, 8, 2, 2), NewBox(0, 0, 10, 10)},
		{"contained", NewBox(0, 0, 10, 10), NewBox(3, 3, 2, 2), NewBox(0, 0, 10, 10)},
		{"overlapping", NewBox(0, 0, 6, 6), NewBox(4, 4, 6, 6), NewBox(0, 0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBox_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want Box
	}{
		{"disjoint", NewBox(0, 0, 2, 2), NewBox(5, 5, 2, 2), Empty},
		{"touching edges", NewBox(0, 0, 2, 2), NewBox(2, 0, 2, 2), Empty},
		{"overlap", NewBox(0, 0, 6, 6), NewBox(4, 4, 6, 6), NewBox(4, 4, 2, 2)},
		{"contained", NewBox(0, 0, 10, 10), NewBox(3, 3, 2, 2), NewBox(3, 3, 2, 2)},
		{"with empty", NewBox(0, 0, 10, 10), Empty, Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBox_Overlaps(t *testing.T) {
	a := NewBox(0, 0, 4, 4)
	if !a.Overlaps(NewBox(3, 3, 4, 4)) {
		t.Error("expected overlap on shared corner pixel")
	}
	if a.Overlaps(NewBox(4, 0, 4, 4)) {
		t.Error("edge-adjacent boxes must not overlap")
	}
	if a.Overlaps(Empty) {
		t.Error("nothing overlaps the empty box")
	}
}

func TestBox_ClampTo(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		w, h int
		want Box
	}{
		{"inside", NewBox(2, 2, 4, 4), 10, 10, NewBox(2, 2, 4, 4)},
		{"negative origin", NewBox(-3, -3, 6, 6), 10, 10, NewBox(0, 0, 3, 3)},
		{"past far edge", NewBox(8, 8, 6, 6), 10, 10, NewBox(8, 8, 2, 2)},
		{"fully outside", NewBox(20, 20, 4, 4), 10, 10, Empty},
		{"fully negative", NewBox(-8, -8, 4, 4), 10, 10, Empty},
		{"covers all", NewBox(-5, -5, 100, 100), 10, 10, NewBox(0, 0, 10, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.ClampTo(tt.w, tt.h); got != tt.want {
				t.Errorf("ClampTo() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBox_ClampTo_ExtremeCoordinates(t *testing.T) {
	// Footprints computed in transformed user space can carry huge
	// coordinates whose naive x+width sum wraps around.
	huge := NewBox(math.MinInt/2, math.MinInt/2, math.MaxInt, math.MaxInt)
	got := huge.ClampTo(640, 480)
	if got != NewBox(0, 0, 640, 480) {
		t.Errorf("ClampTo() = %+v, want full image", got)
	}
}
