// Package geom holds the pixel-space primitives that the layout and
// compositing packages produce. All values are ephemeral, rebuilt every
// frame, and carry no reference to the state they were derived from.
package geom

import "github.com/hnimtadd/gridview/view/size"

type Point struct {
	X size.Pixels
	Y size.Pixels
}

func NewPoint(x, y size.Pixels) Point {
	return Point{X: x, Y: y}
}

type Size struct {
	Width  size.Pixels
	Height size.Pixels
}

type Rect struct {
	Origin Point
	Size   Size
}

func NewRect(x, y, w, h size.Pixels) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// FromCorners builds the rectangle spanning two opposite corners.
func FromCorners(a, b Point) Rect {
	x, y := a.X, a.Y
	if b.X < x {
		x = b.X
	}
	if b.Y < y {
		y = b.Y
	}
	w := a.X - b.X
	if w < 0 {
		w = -w
	}
	h := a.Y - b.Y
	if h < 0 {
		h = -h
	}
	return NewRect(x, y, w, h)
}

func (r Rect) MaxX() size.Pixels { return r.Origin.X + r.Size.Width }

func (r Rect) MaxY() size.Pixels { return r.Origin.Y + r.Size.Height }

func (r Rect) IsEmpty() bool { return r.Size.Width <= 0 || r.Size.Height <= 0 }

// Contains reports whether p is inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.MaxX() &&
		p.Y >= r.Origin.Y && p.Y < r.MaxY()
}
