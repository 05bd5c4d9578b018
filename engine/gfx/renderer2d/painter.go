package renderer2d

import (
	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
)

// Painter is the drawing surface widgets render onto. Coordinates are in
// pixels with Y pointing down.
type Painter interface {
	FillPath(p *geom.Path, c colors.Color)
	StrokePath(p *geom.Path, width float32, c colors.Color)

	MeasureText(s string, size float32) geom.Size
	// DrawText draws s with the top-left corner of its box at at.
	DrawText(s string, size float32, at geom.Point, c colors.Color)

	PushClip(r geom.Rect)
	PopClip()

	// NewSurface returns a transparent off-screen painter of w x h pixels.
	NewSurface(w, h int) Surface
	DrawSurface(s Surface, at geom.Point)
}

// Surface is an off-screen Painter that can be composited with DrawSurface.
type Surface interface {
	Painter
	Size() geom.Size
}
