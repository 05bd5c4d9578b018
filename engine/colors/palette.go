package colors

import "fmt"

type ColorID int

const (
	ColorBg ColorID = iota
	ColorBorder
	ColorButtonBg
	ColorButtonFg
	ColorText
	ColorTextHighlight
	ColorLabelText
	numColorIDs
)

var colorIDNames = [numColorIDs]string{
	ColorBg:            "bg",
	ColorBorder:        "border",
	ColorButtonBg:      "button_bg",
	ColorButtonFg:      "button_fg",
	ColorText:          "text",
	ColorTextHighlight: "text_highlight",
	ColorLabelText:     "label_text",
}

func (id ColorID) String() string {
	if id < 0 || id >= numColorIDs {
		return fmt.Sprintf("ColorID(%d)", int(id))
	}
	return colorIDNames[id]
}

// ParseColorID is the inverse of ColorID.String.
func ParseColorID(name string) (ColorID, error) {
	for i, n := range colorIDNames {
		if n == name {
			return ColorID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown palette color %q", name)
}

// Palette maps every ColorID to a color. It is a value type; assigning a
// palette copies it.
type Palette [numColorIDs]Color

func (p *Palette) Set(id ColorID, c Color) { p[id] = c }
func (p Palette) Get(id ColorID) Color     { return p[id] }
