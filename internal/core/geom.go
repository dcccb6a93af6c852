// Package core provides fundamental types and utilities shared by the game
// logic and the platform layer. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle centered inside a screen of size sw×sh.
func CenteredRect(sw, sh, w, h int) Rect {
	return Rect{X: (sw - w) / 2, Y: (sh - h) / 2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps continuous arena units onto terminal cells.
// Terminal cells are roughly twice as tall as they are wide, so the default
// scale uses 10 units per column and 20 units per row.
type Viewport struct {
	UnitsPerCol float64
	UnitsPerRow float64
	OffsetRow   int // rows reserved above the arena (HUD)
}

// DefaultViewport returns the standard cell scale with one HUD row.
func DefaultViewport() Viewport {
	return Viewport{UnitsPerCol: 10, UnitsPerRow: 20, OffsetRow: 1}
}

// ArenaSize returns the arena dimensions covered by a cols×rows screen.
func (v Viewport) ArenaSize(cols, rows int) (w, h float64) {
	rows -= v.OffsetRow
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return float64(cols) * v.UnitsPerCol, float64(rows) * v.UnitsPerRow
}

// ToArena returns the arena point at the center of screen cell (col, row).
func (v Viewport) ToArena(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.UnitsPerCol, (float64(row-v.OffsetRow) + 0.5) * v.UnitsPerRow
}

// ToCell returns the screen cell containing arena point (x, y).
func (v Viewport) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / v.UnitsPerCol)), int(math.Floor(y/v.UnitsPerRow)) + v.OffsetRow
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
