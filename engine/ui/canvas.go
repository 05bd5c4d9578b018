package ui

import (
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
)

// UICanvas places its children at fixed offsets from its own content origin
// instead of flowing them. Each child keeps the position it had when it was
// added; widgets created from a rectangle land exactly there.
type UICanvas struct {
	Common[*UICanvas]
	offsets [][2]float32
	router  pointerRouter
}

func Canvas(children ...UIElement) *UICanvas {
	c := &UICanvas{}
	c.Common = NewCommon(c)
	return c.Add(children...)
}

// Add appends children at their current positions.
func (l *UICanvas) Add(children ...UIElement) *UICanvas {
	for _, child := range children {
		x, y := child.Node().Pos()
		l.offsets = append(l.offsets, [2]float32{x, y})
	}
	l.Children(children...)
	l.base.Damage()
	return l
}

// Place moves child to (x, y) relative to the canvas content origin.
func (l *UICanvas) Place(child UIElement, x, y float32) *UICanvas {
	for i, c := range l.base.children {
		if c == child {
			l.offsets[i] = [2]float32{x, y}
			l.base.Damage()
			break
		}
	}
	return l
}

func (l *UICanvas) BgColor(color colors.Color) *UICanvas { l.base.color = color; return l }

// Layout gives every child the space from its offset to the canvas edge and
// fits the canvas around the union of the children.
func (l *UICanvas) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	maxWidth := resolveConstraint(constraints.Max[0])
	maxHeight := resolveConstraint(constraints.Max[1])

	var extentW, extentH float32
	for i, child := range l.base.children {
		off := l.offsets[i]
		res := child.Layout(ctx, Constraints{
			Max: [2]float32{
				maxf(0, maxWidth-padding[0]-padding[2]-off[0]),
				maxf(0, maxHeight-padding[1]-padding[3]-off[1]),
			},
		})
		extentW = maxf(extentW, off[0]+res.Size[0])
		extentH = maxf(extentH, off[1]+res.Size[1])
	}

	w := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, extentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	h := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, extentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])
	l.base.SetSize(w, h)
	l.placeChildren()
	return LayoutResult{Size: [2]float32{w, h}}
}

// placeChildren positions the children from the current canvas position.
// A parent may move the canvas after its layout, so Draw repeats it.
func (l *UICanvas) placeChildren() {
	x, y := l.base.innerPosition()
	for i, child := range l.base.children {
		child.Node().SetPos(x+l.offsets[i][0], y+l.offsets[i][1])
	}
}

func (l *UICanvas) Draw(ctx *Context) {
	root := l.base.parent == nil
	if root {
		beginRoot(l, ctx)
	}
	l.placeChildren()
	drawContainer(l, ctx)
	if root {
		clearDamage(l)
	}
}

func (l *UICanvas) HandleEvent(ev core.Event) bool { return l.router.route(l.base.children, ev) }

// Captured returns the child currently receiving the pointer gesture.
func (l *UICanvas) Captured() UIElement { return l.router.captured }
