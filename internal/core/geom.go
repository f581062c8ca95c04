// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Span is a closed interval [Min, Max] on one axis.
type Span struct {
	Min, Max float64
}

// NewSpan creates a span starting at start with the given length.
func NewSpan(start, length float64) Span {
	return Span{Min: start, Max: start + length}
}

// Len returns the length of the span.
func (s Span) Len() float64 {
	return s.Max - s.Min
}

// Contains returns true if inner lies entirely within s. Touching edges count
// as contained.
func (s Span) Contains(inner Span) bool {
	return inner.Min >= s.Min && inner.Max <= s.Max
}

// Overlaps returns true if the two spans share more than an edge.
func (s Span) Overlaps(other Span) bool {
	return s.Min < other.Max && s.Max > other.Min
}

// Rect represents an axis-aligned box in logical pixel space.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// HSpan returns the horizontal extent of the rectangle.
func (r Rect) HSpan() Span {
	return Span{Min: r.X, Max: r.Right()}
}

// VSpan returns the vertical extent of the rectangle.
func (r Rect) VSpan() Span {
	return Span{Min: r.Y, Max: r.Bottom()}
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection.
func (r Rect) Intersects(other Rect) bool {
	return r.HSpan().Overlaps(other.HSpan()) && r.VSpan().Overlaps(other.VSpan())
}

// Pixels returns the integer pixel bounds [x0, x1) x [y0, y1) covered by the
// rectangle, with each edge snapped to the nearest pixel boundary.
func (r Rect) Pixels() (x0, y0, x1, y1 int) {
	x0 = int(math.Round(r.X))
	y0 = int(math.Round(r.Y))
	x1 = int(math.Round(r.Right()))
	y1 = int(math.Round(r.Bottom()))
	return x0, y0, x1, y1
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
