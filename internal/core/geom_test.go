package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectCenterIn(t *testing.T) {
	tests := []struct {
		name     string
		inner    Rect
		outer    Rect
		expected Rect
	}{
		{"fits", NewRect(0, 0, 10, 4), NewRect(0, 0, 20, 10), NewRect(5, 3, 10, 4)},
		{"offset outer", NewRect(0, 0, 2, 2), NewRect(4, 4, 6, 6), NewRect(6, 6, 2, 2)},
		{"too large", NewRect(0, 0, 30, 30), NewRect(1, 2, 10, 10), NewRect(1, 2, 30, 30)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.inner.CenterIn(tc.outer); got != tc.expected {
				t.Errorf("CenterIn() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionNone)
	f.Set(ActionUndo)
	f.Set(ActionLeft)
	if !f.Has(ActionUndo) || f.Has(ActionRight) {
		t.Error("Has() reported wrong actions")
	}
	if got := f.Actions(); len(got) != 2 || got[0] != ActionUndo || got[1] != ActionLeft {
		t.Errorf("Actions() = %v, expected arrival order", got)
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}
