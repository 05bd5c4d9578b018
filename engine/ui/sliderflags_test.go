package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliderFlagsString(t *testing.T) {
	assert.Equal(t, "", SliderFlags{}.String())
	assert.Equal(t, "show_labels|bump_top", NewSliderFlags(BumpTop, ShowLabels).String())
	assert.Equal(t, "show_labels|show_value|bump_top|bump_right|highlight_value",
		NewSliderFlags(HighlightValue, BumpRight, BumpTop, ShowValue, ShowLabels).String())
}

func TestParseSliderFlags(t *testing.T) {
	f, err := ParseSliderFlags(" bump_right | | show_value|")
	require.NoError(t, err)
	assert.Equal(t, NewSliderFlags(BumpRight, ShowValue), f)
	assert.Equal(t, []SliderFlag{ShowValue, BumpRight}, f.List())

	f, err = ParseSliderFlags("")
	require.NoError(t, err)
	assert.True(t, f.Empty())

	for i := SliderFlag(0); i < numSliderFlags; i++ {
		f, err := ParseSliderFlags(NewSliderFlags(i).String())
		require.NoError(t, err)
		assert.True(t, f.Has(i))
	}

	_, err = ParseSliderFlags("show_labels|sparkles")
	assert.True(t, errors.Is(err, ErrUnknownFlag))
	assert.Contains(t, err.Error(), "sparkles")
}

func TestSliderFlagsSetOperations(t *testing.T) {
	f := NewSliderFlags(ShowLabels)
	g := f.With(BumpTop)
	assert.False(t, f.Has(BumpTop), "flags are values")
	assert.True(t, g.Has(BumpTop))
	assert.False(t, g.Without(BumpTop).Has(BumpTop))
	assert.Equal(t, g, f.Set(BumpTop, true))
	assert.Equal(t, f, g.Set(BumpTop, false))
	assert.False(t, f.Has(numSliderFlags))
	assert.Equal(t, "SliderFlag(9)", SliderFlag(9).String())
}

func TestOrientationNames(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		got, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	_, err := ParseOrientation("diagonal")
	assert.True(t, errors.Is(err, ErrUnknownOrientation))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "42", DefaultFormatter[int]()(42))
	assert.Equal(t, "-7", FormatDecimal(-7))
	assert.Equal(t, "0.5", DefaultFormatter[float32]()(0.5))
	assert.Equal(t, "3.0", DefaultFormatter[float64]()(3))
	assert.Equal(t, "2.3", FormatFixed1(2.25+0.01))

	assert.Equal(t, "0.1", formatNumber(float32(0.1)))
	assert.Equal(t, "0.1", formatNumber(0.1))
	assert.Equal(t, "-12", formatNumber(-12))

	v, err := parseNumber[float32]("0.1")
	require.NoError(t, err)
	assert.Equal(t, float32(0.1), v)

	_, err = parseNumber[int]("1.5")
	assert.True(t, errors.Is(err, ErrBadProperty))
	_, err = parseNumber[float64]("abc")
	assert.True(t, errors.Is(err, ErrBadProperty))
}
