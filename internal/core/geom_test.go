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

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(80, 24, 30, 6)
	if r.X != 25 || r.Y != 9 || r.Right() != 55 || r.Bottom() != 15 {
		t.Errorf("CenteredRect = %+v, expected x=25 y=9 30x6", r)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := DefaultViewport()

	tests := []struct {
		col, row int
	}{
		{0, 1},
		{5, 3},
		{79, 23},
	}

	for _, tc := range tests {
		x, y := v.ToArena(tc.col, tc.row)
		col, row := v.ToCell(x, y)
		if col != tc.col || row != tc.row {
			t.Errorf("ToCell(ToArena(%d, %d)) = (%d, %d)", tc.col, tc.row, col, row)
		}
	}
}

func TestViewportArenaSize(t *testing.T) {
	v := DefaultViewport()

	w, h := v.ArenaSize(80, 24)
	if w != 800 || h != 460 {
		t.Errorf("ArenaSize(80, 24) = (%f, %f), expected (800, 460)", w, h)
	}

	w, h = v.ArenaSize(0, 0)
	if w != 10 || h != 20 {
		t.Errorf("ArenaSize(0, 0) = (%f, %f), expected one cell", w, h)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
