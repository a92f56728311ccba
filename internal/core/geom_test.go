package core

import (
	"math"
	"testing"
)

func TestCenteredRect(t *testing.T) {
	tests := []struct {
		name     string
		cx, cy   int
		w, h     int
		expected Rect
	}{
		{name: "odd size", cx: 10, cy: 5, w: 3, h: 3, expected: NewRect(9, 4, 3, 3)},
		{name: "even size", cx: 10, cy: 5, w: 4, h: 2, expected: NewRect(8, 4, 4, 2)},
		{name: "single cell", cx: 0, cy: 0, w: 1, h: 1, expected: NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CenteredRect(tc.cx, tc.cy, tc.w, tc.h)
			if got != tc.expected {
				t.Errorf("CenteredRect() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 5, 4)
	if r.Right() != 7 {
		t.Errorf("Right() = %d, expected 7", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, expected 7", r.Bottom())
	}
	if r.Empty() {
		t.Error("5x4 rect should not be empty")
	}
	if !NewRect(0, 0, 0, 3).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0.5, 0.5, 0.5, 0.5},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 3) != 0 || Clamp(4, 0, 3) != 3 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp should restrict values to [min, max]")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Error("1.5 should be finite")
	}
	if IsFinite(math.NaN()) {
		t.Error("NaN should not be finite")
	}
	if IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Error("infinities should not be finite")
	}
}
