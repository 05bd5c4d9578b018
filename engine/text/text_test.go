package text

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMeasureText(t *testing.T) {
	f := Default()
	w1, h1 := MeasureText(f, "100", 16)
	w2, h2 := MeasureText(f, "100", 32)
	assert.Greater(t, w1, float32(0))
	assert.Greater(t, w2, w1)
	assert.Greater(t, h2, h1)

	_, h := MeasureText(f, "a\nb", 16)
	assert.InDelta(t, 2*h1, h, 0.01)
}

func TestFaceCache(t *testing.T) {
	f, err := Parse("test", goregular.TTF)
	require.NoError(t, err)
	a := f.Face(12.2)
	b := f.Face(11.8)
	assert.Same(t, a, b)
	assert.Len(t, f.faces, 1)
	f.Close()
	assert.Empty(t, f.faces)
}

func TestDrawTextRespectsClip(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 64, 32))
	clip := image.Rect(0, 0, 32, 32)
	DrawText(dst, clip, Default(), 20, 0, 4, "WWWWWW", color.White)

	var inside, outside int
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if dst.RGBAAt(x, y).A == 0 {
				continue
			}
			if x < 32 {
				inside++
			} else {
				outside++
			}
		}
	}
	assert.Greater(t, inside, 0)
	assert.Zero(t, outside)
}
