package colors

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Theme carries everything widgets resolve at draw time: the palette plus a
// few shared metrics.
type Theme struct {
	Name         string
	Palette      Palette
	BorderWidth  float32
	BorderRadius float32
	FontSize     float32
}

func (t *Theme) Color(id ColorID) Color { return t.Palette.Get(id) }

func DefaultTheme() *Theme {
	t := &Theme{Name: "default", BorderWidth: 1, BorderRadius: 4, FontSize: 16}
	t.Palette.Set(ColorBg, RGBA8(0xffffffff))
	t.Palette.Set(ColorBorder, RGBA8(0x8c8c8cff))
	t.Palette.Set(ColorButtonBg, RGBA8(0xe6e6e6ff))
	t.Palette.Set(ColorButtonFg, RGBA8(0x1a73e8ff))
	t.Palette.Set(ColorText, RGBA8(0x202124ff))
	t.Palette.Set(ColorTextHighlight, RGBA8(0xd93025ff))
	t.Palette.Set(ColorLabelText, RGBA8(0x202124ff))
	return t
}

func MidnightTheme() *Theme {
	t := DefaultTheme()
	t.Name = "midnight"
	t.Palette.Set(ColorBg, RGBA8(0x1c1f26ff))
	t.Palette.Set(ColorBorder, RGBA8(0x3c4150ff))
	t.Palette.Set(ColorButtonBg, RGBA8(0x2a2f3aff))
	t.Palette.Set(ColorButtonFg, RGBA8(0x8ab4f8ff))
	t.Palette.Set(ColorText, RGBA8(0xe8eaedff))
	t.Palette.Set(ColorTextHighlight, RGBA8(0xfdd663ff))
	t.Palette.Set(ColorLabelText, RGBA8(0xe8eaedff))
	return t
}

// TealTheme is black with white text and a teal highlight.
func TealTheme() *Theme {
	t := DefaultTheme()
	t.Name = "teal"
	t.Palette.Set(ColorButtonBg, Black)
	t.Palette.Set(ColorText, White)
	t.Palette.Set(ColorTextHighlight, RGBA8(0x37949eff))
	t.Palette.Set(ColorButtonFg, RGBA8(0x37949eff))
	return t
}

func ClayTheme() *Theme {
	t := DefaultTheme()
	t.Name = "clay"
	t.Palette.Set(ColorButtonBg, RGBA8(0xab7e6dff))
	t.Palette.Set(ColorText, White)
	t.Palette.Set(ColorTextHighlight, RGBA8(0x825639ff))
	t.Palette.Set(ColorButtonFg, RGBA8(0x825639ff))
	return t
}

var builtin = map[string]func() *Theme{
	"default":  DefaultTheme,
	"midnight": MidnightTheme,
	"teal":     TealTheme,
	"clay":     ClayTheme,
}

// Builtin returns a fresh copy of a named built-in theme.
func Builtin(name string) (*Theme, bool) {
	f, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

func BuiltinNames() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// themeFile is the TOML layout of a theme. Palette entries not listed keep
// the value of the base theme.
type themeFile struct {
	Name         string            `toml:"name"`
	Base         string            `toml:"base,omitempty"`
	BorderWidth  *float32          `toml:"border_width"`
	BorderRadius *float32          `toml:"border_radius"`
	FontSize     *float32          `toml:"font_size"`
	Palette      map[string]string `toml:"palette"`
}

// ParseTheme decodes a TOML theme document.
func ParseTheme(data []byte) (*Theme, error) {
	var f themeFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode theme: %w", err)
	}

	base := "default"
	if f.Base != "" {
		base = f.Base
	}
	t, ok := Builtin(base)
	if !ok {
		return nil, fmt.Errorf("theme base %q: no such built-in theme", base)
	}
	if f.Name != "" {
		t.Name = f.Name
	}
	if f.BorderWidth != nil {
		t.BorderWidth = *f.BorderWidth
	}
	if f.BorderRadius != nil {
		t.BorderRadius = *f.BorderRadius
	}
	if f.FontSize != nil {
		t.FontSize = *f.FontSize
	}

	// validate everything before touching the palette
	pal := t.Palette
	for name, hex := range f.Palette {
		id, err := ParseColorID(name)
		if err != nil {
			return nil, err
		}
		c, err := ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		pal.Set(id, c)
	}
	t.Palette = pal
	return t, nil
}

func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// EncodeTOML encodes t in the layout ParseTheme reads.
func (t *Theme) EncodeTOML() ([]byte, error) {
	f := themeFile{
		Name:         t.Name,
		BorderWidth:  &t.BorderWidth,
		BorderRadius: &t.BorderRadius,
		FontSize:     &t.FontSize,
		Palette:      make(map[string]string, numColorIDs),
	}
	for i := ColorID(0); i < numColorIDs; i++ {
		f.Palette[i.String()] = t.Palette.Get(i).Hex()
	}
	return toml.Marshal(f)
}
