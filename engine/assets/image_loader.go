package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// LoadPNG decodes the PNG at path into an RGBA image with its origin at (0, 0).
func LoadPNG(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return clone.AsRGBA(img), nil
}

// SavePNG writes img to path, scaled by scale when it is not 1.
func SavePNG(path string, img image.Image, scale float64) error {
	if scale > 0 && scale != 1 {
		b := img.Bounds()
		w := int(float64(b.Dx())*scale + 0.5)
		h := int(float64(b.Dy())*scale + 0.5)
		img = transform.Resize(img, max(w, 1), max(h, 1), transform.Linear)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png %q: %w", path, err)
	}
	return f.Close()
}

// FlipVertical returns a copy of img with the rows reversed, for uploads to
// APIs with a bottom-left origin.
func FlipVertical(img *image.RGBA) *image.RGBA {
	return transform.FlipV(img)
}
