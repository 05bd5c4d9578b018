package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/bumpslider/engine/serialize"
)

func TestSliderSerialize(t *testing.T) {
	s := NewSliderB(verticalRect, 0, 100, 30, Vertical)
	s.SetFlags(NewSliderFlags(ShowLabels, BumpTop))

	var props serialize.Properties
	s.Serialize(&props)
	assert.Equal(t, serialize.Properties{
		{Key: "value", Value: "30"},
		{Key: "start", Value: "0"},
		{Key: "end", Value: "100"},
		{Key: "sliderflags", Value: "show_labels|bump_top"},
		{Key: "orient", Value: "vertical"},
	}, props)
}

func TestSliderDeserialize(t *testing.T) {
	src := NewSliderB(verticalRect, 0, 100, 30, Vertical)
	src.SetFlags(NewSliderFlags(ShowLabels, BumpTop))
	var props serialize.Properties
	src.Serialize(&props)
	props.Add("caption", "volume")

	dst := NewSliderB(horizontalRect, 0, 10, 0, Horizontal)
	var got []int
	dst.OnValueChanged(func(v int) { got = append(got, v) })

	require.NoError(t, dst.Deserialize(&props))
	assert.Equal(t, NewSliderFlags(ShowLabels, BumpTop), dst.Flags())
	assert.Equal(t, Vertical, dst.Orientation())
	assert.Equal(t, 0, dst.Start())
	assert.Equal(t, 100, dst.End())
	assert.Equal(t, 30, dst.Value())
	assert.Equal(t, []int{30}, got)

	// unknown keys are left for the caller
	assert.Equal(t, []string{"caption"}, props.Keys())
}

func TestSliderDeserializePartial(t *testing.T) {
	s := NewSliderBD(horizontalRect, 0, 1, 0.25, Horizontal)
	s.SetFlag(ShowValue, true)

	props := serialize.Properties{{Key: "end", Value: "0.2"}}
	require.NoError(t, s.Deserialize(&props))
	assert.Equal(t, 0.2, s.Value(), "value is clamped into the new range")
	assert.Equal(t, Horizontal, s.Orientation())
	assert.True(t, s.Flags().Has(ShowValue))
	assert.Empty(t, props)
}

func TestSliderDeserializeErrors(t *testing.T) {
	cases := []struct {
		name string
		bad  serialize.Property
		want error
	}{
		{"flag", serialize.Property{Key: "sliderflags", Value: "show_labels|bogus"}, ErrUnknownFlag},
		{"orient", serialize.Property{Key: "orient", Value: "diagonal"}, ErrUnknownOrientation},
		{"value", serialize.Property{Key: "value", Value: "abc"}, ErrBadProperty},
		{"start", serialize.Property{Key: "start", Value: "1.5"}, ErrBadProperty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSliderB(horizontalRect, 0, 100, 40, Horizontal)
			s.SetFlag(ShowValue, true)
			calls := 0
			s.OnValueChanged(func(int) { calls++ })

			props := serialize.Properties{
				{Key: "value", Value: "70"},
				{Key: "end", Value: "80"},
				{Key: "sliderflags", Value: "bump_top"},
				{Key: "orient", Value: "vertical"},
			}
			props.Add(tc.bad.Key, tc.bad.Value)
			before := props.Clone()

			err := s.Deserialize(&props)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), err.Error())
			assert.Contains(t, err.Error(), s.Node().Name())

			// nothing applied, nothing consumed
			assert.Equal(t, 40, s.Value())
			assert.Equal(t, 100, s.End())
			assert.Equal(t, NewSliderFlags(ShowValue), s.Flags())
			assert.Equal(t, Horizontal, s.Orientation())
			assert.Zero(t, calls)
			assert.Equal(t, before, props)
		})
	}
}

func TestSliderDocumentRoundTrip(t *testing.T) {
	a := NewSliderB(horizontalRect, 0, 100, 30, Horizontal)
	b := NewSliderBF(verticalRect, -1, 1, 0.5, Vertical)
	b.SetFlags(NewSliderFlags(BumpRight, HighlightValue))

	data, err := serialize.Marshal([]serialize.Node{
		serialize.Collect("volume", a),
		serialize.Collect("balance", b),
	})
	require.NoError(t, err)

	nodes, err := serialize.Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "SliderBF", nodes[1].Type)

	a2 := NewSliderB(horizontalRect, 0, 1, 0, Horizontal)
	left, err := serialize.Apply(nodes[0], a2)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.Equal(t, 30, a2.Value())

	n, ok := serialize.Find(nodes, "balance")
	require.True(t, ok)
	b2 := NewSliderBF(horizontalRect, 0, 1, 0, Horizontal)
	_, err = serialize.Apply(n, b2)
	require.NoError(t, err)
	assert.Equal(t, Vertical, b2.Orientation())
	assert.Equal(t, float32(-1), b2.Start())
	assert.Equal(t, float32(0.5), b2.Value())
	assert.Equal(t, b.Flags(), b2.Flags())

	_, err = serialize.Apply(n, NewSliderB(horizontalRect, 0, 1, 0, Horizontal))
	assert.True(t, errors.Is(err, serialize.ErrTypeMismatch))
}

func TestSliderDeserializeRejectsNonFinite(t *testing.T) {
	for _, bad := range []serialize.Property{
		{Key: "value", Value: "NaN"},
		{Key: "end", Value: "+Inf"},
		{Key: "start", Value: "-Inf"},
		{Key: "value", Value: "Inf"},
	} {
		t.Run(bad.Key+"="+bad.Value, func(t *testing.T) {
			s := NewSliderBD(horizontalRect, 0, 100, 40, Horizontal)
			props := serialize.Properties{bad}

			err := s.Deserialize(&props)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadProperty)
			assert.Equal(t, 40.0, s.Value())
			assert.Equal(t, 0.0, s.Start())
			assert.Equal(t, 100.0, s.End())
			assert.Len(t, props, 1)
			assert.Len(t, s.Ticks(), 3)
		})
	}
}
