package ui

import (
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/geom"
)

type UIButton struct {
	Common[*UIButton]
	label   *UILabel
	pressed bool
	onClick []func()
}

func Button(str string) *UIButton {
	b := &UIButton{}
	b.Common = NewCommon(b)
	b.label = Label(str)
	b.Children(b.label)
	b.base.SetPadding(10, 10, 10, 10)
	return b
}

// BgColor overrides the theme button background.
func (b *UIButton) BgColor(color colors.Color) *UIButton   { b.base.SetColor(color); return b }
func (b *UIButton) TextColor(color colors.Color) *UIButton { b.label.Color(color); return b }
func (b *UIButton) FontSize(size float32) *UIButton        { b.label.FontSize(size); return b }
func (b *UIButton) OnClick(f func()) *UIButton             { b.onClick = append(b.onClick, f); return b }

func (b *UIButton) SetText(s string) { b.label.SetText(s) }
func (b *UIButton) Pressed() bool    { return b.pressed }

func (b *UIButton) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := b.base.Padding()
	innerConstraints := Constraints{
		Min: [2]float32{0, 0},
		Max: [2]float32{
			maxf(0, resolveConstraint(constraints.Max[0])-padding[0]-padding[2]),
			maxf(0, resolveConstraint(constraints.Max[1])-padding[1]-padding[3]),
		},
	}

	res := b.label.Layout(ctx, innerConstraints)
	contentW := res.Size[0]
	contentH := res.Size[1]

	width := b.base.resolveAxis(b.base.widthMod, b.base.widthVal, contentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := b.base.resolveAxis(b.base.heightMod, b.base.heightVal, contentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])

	innerWidth := maxf(0, width-padding[0]-padding[2])
	innerHeight := maxf(0, height-padding[1]-padding[3])

	b.base.SetSize(width, height)

	child := b.label.Node()
	childWidth := clamp(contentW, 0, innerWidth)
	if child.widthMod == SizeModeExpand {
		childWidth = innerWidth
	}
	childHeight := clamp(contentH, 0, innerHeight)
	if child.heightMod == SizeModeExpand {
		childHeight = innerHeight
	}
	child.SetSize(childWidth, childHeight)

	return LayoutResult{Size: [2]float32{width, height}}
}

func (b *UIButton) Draw(ctx *Context) {
	th := b.base.Theme()
	bg := b.base.color
	if bg == colors.Transparent {
		bg = th.Color(colors.ColorButtonBg)
	}
	if b.pressed {
		bg = th.Color(colors.ColorButtonFg)
	}
	DrawBox(ctx.Painter, th, b.base.Bounds(), th.BorderRadius, bg, th.Color(colors.ColorBorder))

	padding := b.base.Padding()
	b.label.Node().SetPos(b.base.position[0]+padding[0], b.base.position[1]+padding[1])
	b.label.Draw(ctx)
}

// HandleEvent fires the click handlers when a press is released over the
// button.
func (b *UIButton) HandleEvent(ev core.Event) bool {
	switch e := ev.(type) {
	case core.EventPointerDown:
		if !b.base.Bounds().Contains(geom.Pt(e.X, e.Y)) {
			return false
		}
		b.pressed = true
		b.base.Damage()
		return true
	case core.EventPointerUp:
		if !b.pressed {
			return false
		}
		b.pressed = false
		b.base.Damage()
		if b.base.Bounds().Contains(geom.Pt(e.X, e.Y)) {
			for _, f := range b.onClick {
				f()
			}
		}
		return true
	case core.EventPointerDragStart, core.EventPointerDrag:
		return b.pressed
	}
	return false
}
