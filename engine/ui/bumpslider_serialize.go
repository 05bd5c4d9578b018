package ui

import (
	"fmt"

	"github.com/hubastard/bumpslider/engine/serialize"
)

const (
	propSliderFlags = "sliderflags"
	propOrient      = "orient"
)

// Type returns SliderB, SliderBF or SliderBD.
func (s *BumpSlider[T]) Type() string { return s.typeName }

// Serialize writes the range properties followed by sliderflags and orient.
func (s *BumpSlider[T]) Serialize(props *serialize.Properties) {
	s.ValueRange.Serialize(props)
	props.Add(propSliderFlags, s.flags.String())
	props.Add(propOrient, s.orient.String())
}

// Deserialize consumes the range, sliderflags and orient properties and
// leaves the others in props. Every recognized property is validated before
// anything is applied, so a failure leaves the slider unchanged.
func (s *BumpSlider[T]) Deserialize(props *serialize.Properties) error {
	flags, orient := s.flags, s.orient
	if v, ok := props.Get(propSliderFlags); ok {
		f, err := ParseSliderFlags(v)
		if err != nil {
			return fmt.Errorf("%s %s: %w", s.base.name, propSliderFlags, err)
		}
		flags = f
	}
	if v, ok := props.Get(propOrient); ok {
		o, err := ParseOrientation(v)
		if err != nil {
			return fmt.Errorf("%s %s: %w", s.base.name, propOrient, err)
		}
		orient = o
	}
	u, err := s.decode(*props)
	if err != nil {
		return fmt.Errorf("%s: %w", s.base.name, err)
	}

	s.SetFlags(flags)
	s.SetOrientation(orient)
	if s.apply(u, props) {
		s.changed()
		s.flushPending()
	}
	s.base.Damage()
	props.Remove(propSliderFlags)
	props.Remove(propOrient)
	return nil
}
