package geom

import (
	"image"

	"github.com/chewxy/math32"
)

type Point struct{ X, Y float32 }

func Pt(x, y float32) Point { return Point{x, y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

type Size struct{ W, H float32 }

// Rect is an axis aligned rectangle with its origin at the top-left corner.
// Positive Y goes downward, matching the surfaces it is drawn on.
type Rect struct{ X, Y, W, H float32 }

func R(x, y, w, h float32) Rect { return Rect{x, y, w, h} }

func (r Rect) Left() float32   { return r.X }
func (r Rect) Top() float32    { return r.Y }
func (r Rect) Right() float32  { return r.X + r.W }
func (r Rect) Bottom() float32 { return r.Y + r.H }

func (r Rect) TopLeft() Point     { return Point{r.X, r.Y} }
func (r Rect) TopRight() Point    { return Point{r.Right(), r.Y} }
func (r Rect) BottomLeft() Point  { return Point{r.X, r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }
func (r Rect) Center() Point      { return Point{r.X + r.W*0.5, r.Y + r.H*0.5} }
func (r Rect) Size() Size         { return Size{r.W, r.H} }
func (r Rect) Empty() bool        { return r.W <= 0 || r.H <= 0 }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Inset shrinks the rectangle by d on every side. The result never has a
// negative size.
func (r Rect) Inset(d float32) Rect {
	out := Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

func (r Rect) Intersect(o Rect) Rect {
	x0 := math32.Max(r.X, o.X)
	y0 := math32.Max(r.Y, o.Y)
	x1 := math32.Min(r.Right(), o.Right())
	y1 := math32.Min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{x0, y0, 0, 0}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Image returns the smallest integer rectangle covering r.
func (r Rect) Image() image.Rectangle {
	return image.Rect(
		int(math32.Floor(r.X)), int(math32.Floor(r.Y)),
		int(math32.Ceil(r.Right())), int(math32.Ceil(r.Bottom())),
	)
}

// Align centers a box of size s inside r.
func (r Rect) Align(s Size) Rect {
	c := r.Center()
	return Rect{c.X - s.W*0.5, c.Y - s.H*0.5, s.W, s.H}
}
