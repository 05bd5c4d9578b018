package ui

import "fmt"

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

var orientationNames = [...]string{
	Horizontal: "horizontal",
	Vertical:   "vertical",
}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

func ParseOrientation(s string) (Orientation, error) {
	for i, n := range orientationNames {
		if n == s {
			return Orientation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}
