package softgui

import "image"

// Geometry is a widget's placement on the surface, in pixels with a
// top-left origin. It is assigned either explicitly through Place or
// SetBounds, or by the pack layout for widgets that opted in.
type Geometry struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) in surface coordinates falls
// inside the rectangle. The right and bottom edges are exclusive.
func (g Geometry) Contains(x, y int) bool {
	return x >= g.X && x < g.X+g.W && y >= g.Y && y < g.Y+g.H
}

// Local converts surface coordinates to coordinates relative to the
// rectangle's top-left corner.
func (g Geometry) Local(x, y int) (int, int) {
	return x - g.X, y - g.Y
}

// Rect returns the geometry as an image.Rectangle.
func (g Geometry) Rect() image.Rectangle {
	return image.Rect(g.X, g.Y, g.X+g.W, g.Y+g.H)
}

// Side selects which flow a packed widget joins. Top-side widgets stack
// downward from the top inset; left-side widgets stack rightward from the
// left inset. The two flows advance independently.
type Side uint8

const (
	SideTop Side = iota
	SideLeft
)

// Fill controls whether a packed widget stretches across the axis
// perpendicular to its flow.
type Fill uint8

const (
	FillNone Fill = iota
	FillX
	FillY
	FillBoth
)

// PackOptions configures a widget's participation in the flow layout.
// The zero value packs top-side with no fill and no padding.
type PackOptions struct {
	Side Side
	Fill Fill
	PadX int
	PadY int
}
