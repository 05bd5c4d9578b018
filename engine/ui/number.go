package ui

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types a range widget can hold.
type Number interface {
	constraints.Signed | constraints.Float
}

// integral reports whether T drops fractions on conversion.
func integral[T Number]() bool {
	h := 0.5
	return T(h) == 0
}

func bitSize[T Number]() int {
	var z T
	switch any(z).(type) {
	case float32, int32, int16, int8:
		return 32
	}
	return 64
}

// Formatter turns a value into label text.
type Formatter[T Number] func(T) string

// FormatDecimal formats integers in plain decimal.
func FormatDecimal[T Number](v T) string { return strconv.FormatInt(int64(v), 10) }

// FormatFixed1 formats with exactly one fractional digit.
func FormatFixed1[T Number](v T) string { return strconv.FormatFloat(float64(v), 'f', 1, 64) }

// DefaultFormatter picks FormatDecimal for integer types and FormatFixed1
// for floating point ones.
func DefaultFormatter[T Number]() Formatter[T] {
	if integral[T]() {
		return FormatDecimal[T]
	}
	return FormatFixed1[T]
}

// formatNumber is the lossless form used in serialized documents.
func formatNumber[T Number](v T) string {
	if integral[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}

func parseNumber[T Number](s string) (T, error) {
	if integral[T]() {
		n, err := strconv.ParseInt(s, 10, bitSize[T]())
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrBadProperty, s)
		}
		return T(n), nil
	}
	f, err := strconv.ParseFloat(s, bitSize[T]())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadProperty, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrBadProperty, s)
	}
	return T(f), nil
}
