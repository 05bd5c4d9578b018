package ui

import (
	"strings"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/core"
	"github.com/hubastard/bumpslider/engine/geom"
	"github.com/hubastard/bumpslider/engine/gfx/renderer2d"
)

type UILabel struct {
	Common[*UILabel]
	text      string
	fontSize  float32 // 0 uses the theme font size
	wrap      bool
	maxWidth  float32
	layoutStr string
}

func Label(str string) *UILabel {
	l := &UILabel{text: str}
	l.Common = NewCommon(l)
	return l
}

func (l *UILabel) FontSize(size float32) *UILabel { l.fontSize = size; l.base.Damage(); return l }
func (l *UILabel) Wrap(enabled bool) *UILabel     { l.wrap = enabled; return l }
func (l *UILabel) MaxWidth(width float32) *UILabel {
	l.maxWidth = width
	if width > 0 {
		l.wrap = true
	}
	return l
}

// Color overrides the theme text color.
func (l *UILabel) Color(c colors.Color) *UILabel { l.base.SetColor(c); return l }

func (l *UILabel) Text() string { return l.text }

func (l *UILabel) SetText(s string) {
	if l.text != s {
		l.text = s
		l.layoutStr = ""
		l.base.Damage()
	}
}

func (l *UILabel) size() float32 {
	if l.fontSize > 0 {
		return l.fontSize
	}
	return l.base.Theme().FontSize
}

func (l *UILabel) Layout(ctx *Context, constraints Constraints) LayoutResult {
	padding := l.base.Padding()
	effectiveMax := constraints.Max[0]
	if l.maxWidth > 0 && (effectiveMax == 0 || l.maxWidth < effectiveMax) {
		effectiveMax = l.maxWidth
	}
	if effectiveMax > 0 {
		effectiveMax = maxf(0, effectiveMax-padding[0]-padding[2])
	}

	contentW, contentH, laidOut := l.measureText(ctx.Painter, effectiveMax)
	l.layoutStr = laidOut

	width := l.base.resolveAxis(l.base.widthMod, l.base.widthVal, contentW+padding[0]+padding[2], constraints.Min[0], constraints.Max[0])
	height := l.base.resolveAxis(l.base.heightMod, l.base.heightVal, contentH+padding[1]+padding[3], constraints.Min[1], constraints.Max[1])

	l.base.SetSize(width, height)
	return LayoutResult{Size: [2]float32{width, height}}
}

func (l *UILabel) Draw(ctx *Context) {
	if l.layoutStr == "" {
		l.layoutStr = l.text
	}
	c := l.base.color
	if c == colors.Transparent {
		c = l.base.Theme().Color(colors.ColorText)
	}
	if l.layoutStr == "" || c[3] <= 0 {
		return
	}
	x, y := l.base.innerPosition()
	ctx.Painter.DrawText(l.layoutStr, l.size(), geom.Pt(x, y), c)
}

func (l *UILabel) HandleEvent(core.Event) bool { return false }

func (l *UILabel) measureText(p renderer2d.Painter, maxWidth float32) (float32, float32, string) {
	if l.text == "" {
		return 0, 0, ""
	}
	size := l.size()
	if !l.wrap || maxWidth <= 0 {
		sz := p.MeasureText(l.text, size)
		return sz.W, sz.H, l.text
	}

	lineH := p.MeasureText("", size).H
	spaceWidth := p.MeasureText(" ", size).W

	var wrapped []string
	var maxLineWidth float32

	for _, raw := range strings.Split(l.text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}

		current := words[0]
		currentWidth := p.MeasureText(current, size).W
		for _, word := range words[1:] {
			wordWidth := p.MeasureText(word, size).W
			if currentWidth+spaceWidth+wordWidth > maxWidth {
				wrapped = append(wrapped, current)
				maxLineWidth = maxf(maxLineWidth, currentWidth)
				current = word
				currentWidth = wordWidth
			} else {
				current += " " + word
				currentWidth += spaceWidth + wordWidth
			}
		}
		wrapped = append(wrapped, current)
		maxLineWidth = maxf(maxLineWidth, currentWidth)
	}

	if lineH == 0 {
		lineH = 1
	}
	return maxLineWidth, lineH * float32(len(wrapped)), strings.Join(wrapped, "\n")
}
