package geom

import "github.com/chewxy/math32"

// Affine is a 2D affine transform laid out like a cairo matrix:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Affine struct {
	XX, YX, XY, YY, X0, Y0 float32
}

func Identity() Affine { return Affine{XX: 1, YY: 1} }

// FlipX mirrors around the vertical line x = width/2.
func FlipX(width float32) Affine { return Affine{XX: -1, YY: 1, X0: width} }

// FlipY mirrors around the horizontal line y = height/2.
func FlipY(height float32) Affine { return Affine{XX: 1, YY: -1, Y0: height} }

func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.XX*p.X + m.XY*p.Y + m.X0,
		Y: m.YX*p.X + m.YY*p.Y + m.Y0,
	}
}

// Mul returns the transform applying n first and then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		XX: m.XX*n.XX + m.XY*n.YX,
		YX: m.YX*n.XX + m.YY*n.YX,
		XY: m.XX*n.XY + m.XY*n.YY,
		YY: m.YX*n.XY + m.YY*n.YY,
		X0: m.XX*n.X0 + m.XY*n.Y0 + m.X0,
		Y0: m.YX*n.X0 + m.YY*n.Y0 + m.Y0,
	}
}

type SegmentKind int

const (
	SegMoveTo SegmentKind = iota
	SegLineTo
	SegCubeTo
	SegClose
)

// Segment holds up to three points; only CubeTo uses all of them
// (two control points followed by the end point).
type Segment struct {
	Kind SegmentKind
	Pts  [3]Point
}

type Path struct {
	Segs []Segment
}

func (p *Path) MoveTo(x, y float32) *Path {
	p.Segs = append(p.Segs, Segment{Kind: SegMoveTo, Pts: [3]Point{{x, y}}})
	return p
}

func (p *Path) LineTo(x, y float32) *Path {
	p.Segs = append(p.Segs, Segment{Kind: SegLineTo, Pts: [3]Point{{x, y}}})
	return p
}

func (p *Path) CubeTo(c1, c2, end Point) *Path {
	p.Segs = append(p.Segs, Segment{Kind: SegCubeTo, Pts: [3]Point{c1, c2, end}})
	return p
}

func (p *Path) Close() *Path {
	p.Segs = append(p.Segs, Segment{Kind: SegClose})
	return p
}

func (p *Path) Line(a, b Point) *Path { return p.MoveTo(a.X, a.Y).LineTo(b.X, b.Y) }

func (p *Path) Polygon(pts ...Point) *Path {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, q := range pts[1:] {
		p.LineTo(q.X, q.Y)
	}
	return p.Close()
}

func (p *Path) Rect(r Rect) *Path {
	return p.Polygon(r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft())
}

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847

// Ellipse adds a closed ellipse inscribed in r.
func (p *Path) Ellipse(r Rect) *Path {
	c := r.Center()
	rx, ry := r.W*0.5, r.H*0.5
	kx, ky := rx*kappa, ry*kappa
	p.MoveTo(c.X+rx, c.Y)
	p.CubeTo(Pt(c.X+rx, c.Y+ky), Pt(c.X+kx, c.Y+ry), Pt(c.X, c.Y+ry))
	p.CubeTo(Pt(c.X-kx, c.Y+ry), Pt(c.X-rx, c.Y+ky), Pt(c.X-rx, c.Y))
	p.CubeTo(Pt(c.X-rx, c.Y-ky), Pt(c.X-kx, c.Y-ry), Pt(c.X, c.Y-ry))
	p.CubeTo(Pt(c.X+kx, c.Y-ry), Pt(c.X+rx, c.Y-ky), Pt(c.X+rx, c.Y))
	return p.Close()
}

// RoundedRect adds a rectangle whose corners are rounded by radius.
func (p *Path) RoundedRect(r Rect, radius float32) *Path {
	radius = math32.Min(radius, math32.Min(r.W, r.H)*0.5)
	if radius <= 0 {
		return p.Rect(r)
	}
	k := radius * (1 - kappa)
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	p.MoveTo(x0+radius, y0)
	p.LineTo(x1-radius, y0)
	p.CubeTo(Pt(x1-k, y0), Pt(x1, y0+k), Pt(x1, y0+radius))
	p.LineTo(x1, y1-radius)
	p.CubeTo(Pt(x1, y1-k), Pt(x1-k, y1), Pt(x1-radius, y1))
	p.LineTo(x0+radius, y1)
	p.CubeTo(Pt(x0+k, y1), Pt(x0, y1-k), Pt(x0, y1-radius))
	p.LineTo(x0, y0+radius)
	p.CubeTo(Pt(x0, y0+k), Pt(x0+k, y0), Pt(x0+radius, y0))
	return p.Close()
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Affine) *Path {
	out := &Path{Segs: make([]Segment, len(p.Segs))}
	for i, s := range p.Segs {
		for j := range s.Pts {
			s.Pts[j] = m.Apply(s.Pts[j])
		}
		out.Segs[i] = s
	}
	return out
}

// Flatten converts the path to polylines, subdividing cubic curves until every
// chord is within tolerance pixels of the curve. Closed subpaths repeat their
// first point at the end.
func (p *Path) Flatten(tolerance float32) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		out   [][]Point
		cur   []Point
		start Point
	)
	flush := func() {
		if len(cur) > 1 {
			out = append(out, cur)
		}
		cur = nil
	}
	for _, s := range p.Segs {
		switch s.Kind {
		case SegMoveTo:
			flush()
			start = s.Pts[0]
			cur = []Point{start}
		case SegLineTo:
			if cur == nil {
				cur = []Point{start}
			}
			cur = append(cur, s.Pts[0])
		case SegCubeTo:
			if cur == nil {
				cur = []Point{start}
			}
			cur = flattenCubic(cur, cur[len(cur)-1], s.Pts[0], s.Pts[1], s.Pts[2], tolerance)
		case SegClose:
			if cur != nil {
				cur = append(cur, start)
			}
			flush()
		}
	}
	flush()
	return out
}

func flattenCubic(dst []Point, a, b, c, d Point, tol float32) []Point {
	// Number of steps from the control polygon length; good enough for the
	// handle-sized curves drawn here.
	l := dist(a, b) + dist(b, c) + dist(c, d)
	n := int(math32.Ceil(math32.Sqrt(l / tol)))
	if n < 1 {
		n = 1
	}
	if n > 256 {
		n = 256
	}
	for i := 1; i <= n; i++ {
		t := float32(i) / float32(n)
		mt := 1 - t
		w0 := mt * mt * mt
		w1 := 3 * mt * mt * t
		w2 := 3 * mt * t * t
		w3 := t * t * t
		dst = append(dst, Point{
			X: w0*a.X + w1*b.X + w2*c.X + w3*d.X,
			Y: w0*a.Y + w1*b.Y + w2*c.Y + w3*d.Y,
		})
	}
	return dst
}

func dist(a, b Point) float32 { return math32.Hypot(b.X-a.X, b.Y-a.Y) }
