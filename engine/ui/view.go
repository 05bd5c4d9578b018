package ui

import (
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/geom"
)

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type UIView struct {
	Common[*UIView]
	gap        float32
	mainAlign  Align
	crossAlign Align
	flow       Orientation
	router     pointerRouter
}

func View(children ...UIElement) *UIView {
	v := &UIView{
		gap:        10,
		mainAlign:  AlignStart,
		crossAlign: AlignStart,
	}
	v.Common = NewCommon(v)
	return v.Children(children...)
}

func (l *UIView) BgColor(color colors.Color) *UIView          { l.base.color = color; return l }
func (l *UIView) FlowDirection(direction Orientation) *UIView { l.flow = direction; return l }
func (l *UIView) Gap(g float32) *UIView                       { l.gap = g; return l }
func (l *UIView) AlignMain(a Align) *UIView                   { l.mainAlign = a; return l }
func (l *UIView) AlignCross(a Align) *UIView                  { l.crossAlign = a; return l }

func (l *UIView) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	maxWidth := resolveConstraint(constraints.Max[0])
	maxHeight := resolveConstraint(constraints.Max[1])
	minWidth := constraints.Min[0]
	minHeight := constraints.Min[1]

	innerMaxWidth := maxf(0, maxWidth-padding[0]-padding[2])
	innerMaxHeight := maxf(0, maxHeight-padding[1]-padding[3])
	innerMinWidth := maxf(0, minWidth-padding[0]-padding[2])
	innerMinHeight := maxf(0, minHeight-padding[1]-padding[3])

	children := l.base.children
	childSizes := make([][2]float32, len(children))

	var fixedMainSum float32
	var expandMainSum float32
	var maxCross float32
	var expandCount int

	childConstraints := Constraints{
		Min: [2]float32{0, 0},
		Max: [2]float32{innerMaxWidth, innerMaxHeight},
	}

	for i, child := range children {
		res := child.Layout(ctx, childConstraints)
		size := res.Size
		childSizes[i] = size
		if l.flow == Vertical {
			if child.Node().heightMod == SizeModeExpand {
				expandMainSum += size[1]
				expandCount++
			} else {
				fixedMainSum += size[1]
			}
			maxCross = maxf(maxCross, size[0])
		} else {
			if child.Node().widthMod == SizeModeExpand {
				expandMainSum += size[0]
				expandCount++
			} else {
				fixedMainSum += size[0]
			}
			maxCross = maxf(maxCross, size[1])
		}
	}

	gapTotal := float32(0)
	if len(children) > 1 {
		gapTotal = l.gap * float32(len(children)-1)
	}

	var innerMainTarget float32
	var innerCrossTarget float32

	if l.flow == Vertical {
		contentMain := fixedMainSum + expandMainSum + gapTotal
		outerHeight := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, contentMain+padding[1]+padding[3], minHeight, constraints.Max[1])
		innerMainTarget = maxf(0, outerHeight-padding[1]-padding[3])
		innerMainTarget = maxf(innerMainTarget, innerMinHeight)
		outerWidth := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, maxCross+padding[0]+padding[2], minWidth, constraints.Max[0])
		innerCrossTarget = maxf(0, outerWidth-padding[0]-padding[2])
		innerCrossTarget = maxf(innerCrossTarget, innerMinWidth)
		l.base.SetSize(outerWidth, outerHeight)
	} else {
		contentMain := fixedMainSum + expandMainSum + gapTotal
		outerWidth := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, contentMain+padding[0]+padding[2], minWidth, constraints.Max[0])
		innerMainTarget = maxf(0, outerWidth-padding[0]-padding[2])
		innerMainTarget = maxf(innerMainTarget, innerMinWidth)
		outerHeight := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, maxCross+padding[1]+padding[3], minHeight, constraints.Max[1])
		innerCrossTarget = maxf(0, outerHeight-padding[1]-padding[3])
		innerCrossTarget = maxf(innerCrossTarget, innerMinHeight)
		l.base.SetSize(outerWidth, outerHeight)
	}

	// Distribute extra space along main axis to expanding children.
	mainMinTotal := fixedMainSum + expandMainSum
	if expandCount > 0 {
		extra := innerMainTarget - (mainMinTotal + gapTotal)
		if extra < 0 {
			extra = 0
		}
		share := extra / float32(expandCount)
		for i, child := range children {
			if l.flow == Vertical {
				if child.Node().heightMod == SizeModeExpand {
					childSizes[i][1] += share
				}
			} else {
				if child.Node().widthMod == SizeModeExpand {
					childSizes[i][0] += share
				}
			}
		}
	}

	innerOriginX, innerOriginY := l.base.innerPosition()
	mainCursor := float32(0)

	// Calculate total space used after potential expansion for alignment.
	mainUsed := float32(0)
	for i := range children {
		if l.flow == Vertical {
			mainUsed += childSizes[i][1]
		} else {
			mainUsed += childSizes[i][0]
		}
	}
	mainUsed += gapTotal

	startOffset := float32(0)
	remaining := innerMainTarget - mainUsed
	if remaining < 0 {
		remaining = 0
	}
	switch l.mainAlign {
	case AlignCenter:
		startOffset = remaining * 0.5
	case AlignEnd:
		startOffset = remaining
	default:
		startOffset = 0
	}
	mainCursor = startOffset

	for i, child := range children {
		childSize := childSizes[i]
		childBase := child.Node()
		if l.flow == Vertical {
			width := childSize[0]
			if l.crossAlign == AlignStretch || childBase.widthMod == SizeModeExpand {
				width = innerCrossTarget
			}
			width = clamp(width, 0, innerCrossTarget)

			var x float32
			switch l.crossAlign {
			case AlignCenter:
				x = innerOriginX + (innerCrossTarget-width)/2
			case AlignEnd:
				x = innerOriginX + (innerCrossTarget - width)
			default:
				x = innerOriginX
			}
			y := innerOriginY + mainCursor
			height := childSize[1]
			childBase.SetPos(x, y)
			childBase.SetSize(width, height)
			mainCursor += height
		} else {
			height := childSize[1]
			if l.crossAlign == AlignStretch || childBase.heightMod == SizeModeExpand {
				height = innerCrossTarget
			}
			height = clamp(height, 0, innerCrossTarget)

			var y float32
			switch l.crossAlign {
			case AlignCenter:
				y = innerOriginY + (innerCrossTarget-height)/2
			case AlignEnd:
				y = innerOriginY + (innerCrossTarget - height)
			default:
				y = innerOriginY
			}
			x := innerOriginX + mainCursor
			width := childSize[0]
			childBase.SetPos(x, y)
			childBase.SetSize(width, height)
			mainCursor += width
		}
		if i < len(children)-1 {
			mainCursor += l.gap
		}
	}

	return LayoutResult{Size: l.base.size}
}

func (l *UIView) Draw(ctx *Context) {
	root := l.base.parent == nil
	if root {
		beginRoot(l, ctx)
	}
	drawContainer(l, ctx)
	if root {
		clearDamage(l)
	}
}

// beginRoot adopts the context theme and lays the tree out in the viewport.
func beginRoot(e UIElement, ctx *Context) {
	b := e.Node()
	if ctx.Theme != nil && b.theme != ctx.Theme {
		b.SetTheme(ctx.Theme)
	}
	b.SetPos(ctx.Viewport.X, ctx.Viewport.Y)
	e.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport.W, ctx.Viewport.H}})
}

func drawContainer(e UIElement, ctx *Context) {
	b := e.Node()
	if b.color[3] > 0 {
		ctx.Painter.FillPath(new(geom.Path).Rect(b.Bounds()), b.color)
	}
	for _, c := range b.children {
		c.Draw(ctx)
	}
}

// HandleEvent routes pointer gestures to the children; see pointerRouter.
func (l *UIView) HandleEvent(ev core.Event) bool { return l.router.route(l.base.children, ev) }

// Captured returns the child currently receiving the pointer gesture.
func (l *UIView) Captured() UIElement { return l.router.captured }

// pointerRouter delivers pointer gestures to a list of children. A press
// goes to the topmost child under the pointer; the child that accepts it
// captures the rest of the gesture until the pointer is released, even when
// the pointer leaves it. Other events are offered topmost first.
type pointerRouter struct {
	captured UIElement
}

func (r *pointerRouter) route(children []UIElement, ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventPointerDown:
		r.captured = childAt(children, geom.Pt(e.X, e.Y), ev)
		return r.captured != nil
	case core.EventPointerDragStart:
		if r.captured == nil {
			r.captured = childAt(children, geom.Pt(e.StartX, e.StartY), core.EventPointerDown{X: e.StartX, Y: e.StartY})
		}
		return r.forward(ev)
	case core.EventPointerDrag:
		return r.forward(ev)
	case core.EventPointerUp:
		handled := r.forward(ev)
		r.captured = nil
		return handled
	}
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].HandleEvent(ev) {
			return true
		}
	}
	return false
}

func (r *pointerRouter) forward(ev core.Event) bool {
	if r.captured == nil {
		return false
	}
	return r.captured.HandleEvent(ev)
}

// childAt offers press to the children under p, topmost first, and returns
// the one that accepted it.
func childAt(children []UIElement, p geom.Point, press core.Event) UIElement {
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if !c.Node().Bounds().Contains(p) {
			continue
		}
		if c.HandleEvent(press) {
			return c
		}
	}
	return nil
}
