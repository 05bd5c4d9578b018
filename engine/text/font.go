package text

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font is a parsed opentype font with a cache of faces keyed by pixel size.
// Faces are created lazily, sizes are rounded to whole pixels.
type Font struct {
	Name  string
	ft    *opentype.Font
	faces map[int]font.Face
}

// Metrics are the vertical metrics of a face in pixels.
type Metrics struct {
	Ascent, Descent, LineGap float32
}

func (m Metrics) LineHeight() float32 { return m.Ascent + m.Descent + m.LineGap }

// Parse builds a Font from TTF/OTF data.
func Parse(name string, data []byte) (*Font, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{Name: name, ft: ft, faces: make(map[int]font.Face)}, nil
}

// LoadTTF reads a font from disk.
func LoadTTF(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Parse(path, data)
}

var defaultFont *Font

// Default returns the Go Regular font shared by every caller.
func Default() *Font {
	if defaultFont == nil {
		f, err := Parse("goregular", goregular.TTF)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	}
	return defaultFont
}

func pixelSize(size float32) int {
	px := int(math32.Round(size))
	if px < 1 {
		px = 1
	}
	return px
}

// Face returns the face for size, creating it on first use.
func (f *Font) Face(size float32) font.Face {
	px := pixelSize(size)
	if face, ok := f.faces[px]; ok {
		return face
	}
	face, err := opentype.NewFace(f.ft, &opentype.FaceOptions{
		Size: float64(px), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		// only fails for invalid options, which pixelSize rules out
		panic(fmt.Errorf("new face: %w", err))
	}
	f.faces[px] = face
	return face
}

func (f *Font) Metrics(size float32) Metrics {
	m := f.Face(size).Metrics()
	ascent := float32(m.Ascent.Round())
	descent := float32(m.Descent.Round())
	return Metrics{
		Ascent:  ascent,
		Descent: descent,
		LineGap: math32.Max(0, float32(m.Height.Round())-ascent-descent),
	}
}

func (f *Font) Close() {
	if f == nil {
		return
	}
	for px, face := range f.faces {
		_ = face.Close()
		delete(f.faces, px)
	}
}
