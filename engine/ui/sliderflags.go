package ui

import (
	"fmt"
	"strings"
)

type SliderFlag uint8

const (
	// ShowLabels draws the value of every scale tick.
	ShowLabels SliderFlag = iota
	// ShowValue draws the current value inside the handle instead of the
	// button.
	ShowValue
	// BumpTop puts the handle on the top edge of a horizontal slider.
	BumpTop
	// BumpRight puts the handle on the right edge of a vertical slider.
	BumpRight
	// HighlightValue draws the tick matching the current value in the
	// highlight color.
	HighlightValue
	numSliderFlags
)

// sliderFlagNames is used for serialization and String alike.
var sliderFlagNames = [numSliderFlags]string{
	ShowLabels:     "show_labels",
	ShowValue:      "show_value",
	BumpTop:        "bump_top",
	BumpRight:      "bump_right",
	HighlightValue: "highlight_value",
}

func (f SliderFlag) String() string {
	if f >= numSliderFlags {
		return fmt.Sprintf("SliderFlag(%d)", int(f))
	}
	return sliderFlagNames[f]
}

const flagSeparator = "|"

// SliderFlags is a set of SliderFlag. The zero value is the empty set.
type SliderFlags struct {
	bits uint8
}

func NewSliderFlags(flags ...SliderFlag) SliderFlags {
	var s SliderFlags
	for _, f := range flags {
		s = s.With(f)
	}
	return s
}

func (s SliderFlags) Has(f SliderFlag) bool { return f < numSliderFlags && s.bits&(1<<f) != 0 }
func (s SliderFlags) Empty() bool           { return s.bits == 0 }

func (s SliderFlags) With(f SliderFlag) SliderFlags {
	if f < numSliderFlags {
		s.bits |= 1 << f
	}
	return s
}

func (s SliderFlags) Without(f SliderFlag) SliderFlags {
	s.bits &^= 1 << f
	return s
}

func (s SliderFlags) Set(f SliderFlag, on bool) SliderFlags {
	if on {
		return s.With(f)
	}
	return s.Without(f)
}

// List returns the members in declaration order.
func (s SliderFlags) List() []SliderFlag {
	var out []SliderFlag
	for f := SliderFlag(0); f < numSliderFlags; f++ {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// String joins the member names with "|", e.g. "show_labels|bump_top".
func (s SliderFlags) String() string {
	var names []string
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return strings.Join(names, flagSeparator)
}

// ParseSliderFlags is the inverse of SliderFlags.String. Blank tokens are
// skipped; any other unknown token is an error.
func ParseSliderFlags(str string) (SliderFlags, error) {
	var s SliderFlags
	for _, tok := range strings.Split(str, flagSeparator) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		f, ok := lookupSliderFlag(tok)
		if !ok {
			return SliderFlags{}, fmt.Errorf("%w: %q", ErrUnknownFlag, tok)
		}
		s = s.With(f)
	}
	return s, nil
}

func lookupSliderFlag(name string) (SliderFlag, bool) {
	for i, n := range sliderFlagNames {
		if n == name {
			return SliderFlag(i), true
		}
	}
	return 0, false
}
