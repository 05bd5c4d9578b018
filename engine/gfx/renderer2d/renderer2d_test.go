package renderer2d

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/bumpslider/engine/colors"
	"github.com/hubastard/bumpslider/engine/geom"
)

func newTarget(w, h int) *Renderer2D {
	return New(image.NewRGBA(image.Rect(0, 0, w, h)), nil)
}

func TestFillPathCoversInterior(t *testing.T) {
	rd := newTarget(20, 20)
	rd.FillPath(new(geom.Path).Rect(geom.R(5, 5, 10, 10)), colors.Red)

	assert.Equal(t, uint8(255), rd.Target().RGBAAt(10, 10).R)
	assert.Equal(t, uint8(255), rd.Target().RGBAAt(10, 10).A)
	assert.Zero(t, rd.Target().RGBAAt(2, 2).A)
	assert.Zero(t, rd.Target().RGBAAt(16, 16).A)
	assert.Equal(t, 1, rd.Stats().Fills)
}

func TestBoundsCoverAllPolylines(t *testing.T) {
	polys := [][]geom.Point{
		{geom.Pt(-2.5, 4), geom.Pt(3, 1.2)},
		{geom.Pt(7.1, -1), geom.Pt(0, 9.5)},
	}
	assert.Equal(t, image.Rect(-3, -1, 8, 10), bounds(polys))

	q, ok := segmentQuad(geom.Pt(0, 0), geom.Pt(10, 0), 1)
	require.True(t, ok)
	assert.Equal(t, []geom.Point{geom.Pt(0, 1), geom.Pt(10, 1), geom.Pt(10, -1), geom.Pt(0, -1)}, q)
}

func TestClipStack(t *testing.T) {
	rd := newTarget(20, 20)
	rd.PushClip(geom.R(0, 0, 10, 20))
	rd.PushClip(geom.R(5, 0, 10, 20))
	rd.FillPath(new(geom.Path).Rect(geom.R(0, 0, 20, 20)), colors.White)
	rd.PopClip()
	rd.PopClip()

	img := rd.Target()
	assert.Zero(t, img.RGBAAt(2, 5).A)
	assert.Equal(t, uint8(255), img.RGBAAt(7, 5).A)
	assert.Zero(t, img.RGBAAt(12, 5).A)

	// popping past the bottom is harmless
	rd.PopClip()
	rd.FillPath(new(geom.Path).Rect(geom.R(0, 0, 20, 20)), colors.White)
	assert.Equal(t, uint8(255), img.RGBAAt(15, 15).A)
}

func TestStrokePathBothDirections(t *testing.T) {
	rd := newTarget(30, 30)
	// a closed square stroked around; the left and right edges run in
	// opposite directions and must both be painted
	rd.StrokePath(new(geom.Path).Rect(geom.R(5, 5, 20, 20)), 2, colors.Blue)

	img := rd.Target()
	assert.Equal(t, uint8(255), img.RGBAAt(5, 15).B)
	assert.Equal(t, uint8(255), img.RGBAAt(24, 15).B)
	assert.Equal(t, uint8(255), img.RGBAAt(15, 5).B)
	assert.Zero(t, img.RGBAAt(15, 15).A)
}

func TestSurfaceBlit(t *testing.T) {
	rd := newTarget(20, 20)
	s := rd.NewSurface(4, 4)
	require.Equal(t, geom.Size{W: 4, H: 4}, s.Size())
	s.FillPath(new(geom.Path).Rect(geom.R(0, 0, 4, 4)), colors.Green)

	rd.PushClip(geom.R(0, 0, 12, 20))
	rd.DrawSurface(s, geom.Pt(10, 10))
	rd.PopClip()

	img := rd.Target()
	assert.Equal(t, uint8(255), img.RGBAAt(10, 10).G)
	assert.Equal(t, uint8(255), img.RGBAAt(11, 13).G)
	assert.Zero(t, img.RGBAAt(12, 10).A)
	assert.Zero(t, img.RGBAAt(9, 9).A)
	assert.Equal(t, 1, rd.Stats().Blits)
	assert.Equal(t, 1, rd.Stats().Surfaces)
}

func TestTransparentFillIsSkipped(t *testing.T) {
	rd := newTarget(8, 8)
	rd.FillPath(new(geom.Path).Rect(geom.R(0, 0, 8, 8)), colors.Transparent)
	assert.Zero(t, rd.Target().RGBAAt(4, 4).A)
}

func TestDrawTextMarksPixels(t *testing.T) {
	rd := newTarget(60, 30)
	sz := rd.MeasureText("42", 18)
	assert.Greater(t, sz.W, float32(0))
	rd.DrawText("42", 18, geom.Pt(2, 2), colors.White)

	var lit int
	pix := rd.Target().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] > 0 {
			lit++
		}
	}
	assert.Greater(t, lit, 0)
	assert.Equal(t, 1, rd.Stats().Texts)
}
