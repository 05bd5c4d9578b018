package ui

import (
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
)

var log = logrus.WithField("component", "ui")

type SizeMode int

const (
	SizeModeFit SizeMode = iota
	SizeModeFixed
	SizeModeExpand
)

type Constraints struct {
	Min [2]float32
	Max [2]float32
}

type LayoutResult struct {
	Size [2]float32
}

type Context struct {
	Viewport geom.Rect
	Painter  renderer2d.Painter
	// Theme applies to every element without a theme of its own.
	Theme *colors.Theme
}

type UIElement interface {
	Node() *Base
	Layout(ctx *Context, constraints Constraints) LayoutResult
	Draw(ctx *Context)
	// HandleEvent returns true when the element consumed ev.
	HandleEvent(ev core.Event) bool
}

var fallbackTheme = colors.DefaultTheme()

var lastWidgetID atomic.Int64

func nextWidgetID() int64 { return lastWidgetID.Add(1) }

type Base struct {
	parent    UIElement
	children  []UIElement
	name      string
	position  [2]float32
	size      [2]float32
	color     colors.Color
	widthMod  SizeMode
	heightMod SizeMode
	widthVal  float32
	heightVal float32
	padding   [4]float32 // left, top, right, bottom
	theme     *colors.Theme
	damaged   bool
}

func (b *Base) Parent() UIElement       { return b.parent }
func (b *Base) Children() []UIElement   { return b.children }
func (b *Base) Name() string            { return b.name }
func (b *Base) Pos() (x, y float32)     { return b.position[0], b.position[1] }
func (b *Base) Size() (w, h float32)    { return b.size[0], b.size[1] }
func (b *Base) SetColor(c colors.Color) { b.color = c; b.Damage() }
func (b *Base) Padding() [4]float32     { return b.padding }
func (b *Base) SetPadding(l, t, r, btm float32) {
	b.padding = [4]float32{l, t, r, btm}
	b.Damage()
}

func (b *Base) SetPos(x, y float32) {
	if b.position != [2]float32{x, y} {
		b.position = [2]float32{x, y}
		b.Damage()
	}
}

func (b *Base) SetSize(w, h float32) {
	if b.size != [2]float32{w, h} {
		b.size = [2]float32{w, h}
		b.Damage()
	}
}

func (b *Base) Bounds() geom.Rect {
	return geom.R(b.position[0], b.position[1], b.size[0], b.size[1])
}

// ContentArea is the bounds minus the theme border and the padding.
func (b *Base) ContentArea() geom.Rect {
	r := b.Bounds().Inset(b.Theme().BorderWidth)
	r.X += b.padding[0]
	r.Y += b.padding[1]
	r.W = maxf(0, r.W-b.padding[0]-b.padding[2])
	r.H = maxf(0, r.H-b.padding[1]-b.padding[3])
	return r
}

// Theme returns the closest theme set on b or one of its ancestors.
func (b *Base) Theme() *colors.Theme {
	for n := b; n != nil; {
		if n.theme != nil {
			return n.theme
		}
		if n.parent == nil {
			break
		}
		n = n.parent.Node()
	}
	return fallbackTheme
}

func (b *Base) SetTheme(t *colors.Theme) {
	b.theme = t
	b.Damage()
}

// Damage marks b and its ancestors as needing a redraw.
func (b *Base) Damage() {
	for n := b; n != nil; {
		n.damaged = true
		if n.parent == nil {
			return
		}
		n = n.parent.Node()
	}
}

func (b *Base) Damaged() bool { return b.damaged }

// NeedsRedraw reports whether anything in the tree rooted at e changed since
// it was last drawn.
func NeedsRedraw(e UIElement) bool { return e.Node().damaged }

func clearDamage(e UIElement) {
	n := e.Node()
	n.damaged = false
	for _, c := range n.children {
		clearDamage(c)
	}
}

func (b *Base) initDefaults() {
	if b.widthMod == 0 && b.widthVal == 0 {
		b.widthMod = SizeModeFit
	}
	if b.heightMod == 0 && b.heightVal == 0 {
		b.heightMod = SizeModeFit
	}
	b.damaged = true
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func resolveConstraint(max float32) float32 {
	if max == 0 {
		return float32(math.MaxFloat32)
	}
	return max
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func (b *Base) resolveAxis(mode SizeMode, fixed, content, min, max float32) float32 {
	switch mode {
	case SizeModeFixed:
		if fixed > 0 {
			return clamp(fixed, min, resolveConstraint(max))
		}
		return clamp(content, min, resolveConstraint(max))
	case SizeModeExpand:
		return clamp(resolveConstraint(max), min, resolveConstraint(max))
	default:
		return clamp(content, min, resolveConstraint(max))
	}
}

func (b *Base) innerPosition() (float32, float32) {
	return b.position[0] + b.padding[0], b.position[1] + b.padding[1]
}

// ------ Helper ------

type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	var b Base
	b.initDefaults()
	return Common[T]{owner: owner, base: b}
}

func (c *Common[T]) Node() *Base              { return &c.base }
func (c *Common[T]) Position(x, y float32) T  { c.base.SetPos(x, y); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.SetColor(col); return c.owner }
func (c *Common[T]) Name(name string) T       { c.base.name = name; return c.owner }
func (c *Common[T]) Theme(t *colors.Theme) T  { c.base.SetTheme(t); return c.owner }

// Size sets the current size; with the default Fit mode it is kept by Layout.
func (c *Common[T]) Size(w, h float32) T { c.base.SetSize(w, h); return c.owner }

func (c *Common[T]) WidthFit() T {
	c.base.widthMod = SizeModeFit
	return c.owner
}

func (c *Common[T]) WidthFixed(width float32) T {
	c.base.widthMod = SizeModeFixed
	c.base.widthVal = width
	return c.owner
}

func (c *Common[T]) WidthExpand() T {
	c.base.widthMod = SizeModeExpand
	return c.owner
}

func (c *Common[T]) HeightFit() T {
	c.base.heightMod = SizeModeFit
	return c.owner
}

func (c *Common[T]) HeightFixed(height float32) T {
	c.base.heightMod = SizeModeFixed
	c.base.heightVal = height
	return c.owner
}

func (c *Common[T]) HeightExpand() T {
	c.base.heightMod = SizeModeExpand
	return c.owner
}

func (c *Common[T]) Padding(all float32) T {
	c.base.SetPadding(all, all, all, all)
	return c.owner
}

func (c *Common[T]) Padding2(horizontal, vertical float32) T {
	c.base.SetPadding(horizontal, vertical, horizontal, vertical)
	return c.owner
}

func (c *Common[T]) Padding4(left, top, right, bottom float32) T {
	c.base.SetPadding(left, top, right, bottom)
	return c.owner
}

func (c *Common[T]) Children(kids ...UIElement) T {
	c.base.children = append(c.base.children, kids...)
	for _, k := range kids {
		k.Node().parent = any(c.owner).(UIElement)
	}
	return c.owner
}
