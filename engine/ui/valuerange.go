package ui

import (
	"github.com/hubastard/bumpslider/engine/serialize"
)

// ValueRange stores a value bounded by start and end. start may be greater
// than end; clamping always uses the numeric minimum and maximum.
type ValueRange[T Number] struct {
	value, start, end T
	handlers          []func(T)
}

func NewValueRange[T Number](start, end, value T) ValueRange[T] {
	r := ValueRange[T]{start: start, end: end}
	r.value = r.Clamp(value)
	return r
}

func (r *ValueRange[T]) Value() T { return r.value }
func (r *ValueRange[T]) Start() T { return r.start }
func (r *ValueRange[T]) End() T   { return r.end }

func (r *ValueRange[T]) Min() T {
	if r.start < r.end {
		return r.start
	}
	return r.end
}

func (r *ValueRange[T]) Max() T {
	if r.start < r.end {
		return r.end
	}
	return r.start
}

// Clamp returns v limited to [Min, Max]. NaN clamps to Min.
func (r *ValueRange[T]) Clamp(v T) T {
	lo, hi := r.Min(), r.Max()
	switch {
	case v != v:
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// OnValueChanged registers a handler called with the new value.
func (r *ValueRange[T]) OnValueChanged(f func(T)) { r.handlers = append(r.handlers, f) }

func (r *ValueRange[T]) notify() {
	v := r.value
	for _, h := range r.handlers {
		h(v)
	}
}

// store clamps v and assigns it, reporting whether the value changed. NaN
// is ignored.
func (r *ValueRange[T]) store(v T) bool {
	if v != v {
		return false
	}
	v = r.Clamp(v)
	if v == r.value {
		return false
	}
	r.value = v
	return true
}

// setRange replaces the bounds and clamps the value into them.
func (r *ValueRange[T]) setRange(start, end T) bool {
	r.start, r.end = start, end
	return r.store(r.value)
}

// Serialize writes value, start and end.
func (r *ValueRange[T]) Serialize(props *serialize.Properties) {
	props.Add("value", formatNumber(r.value))
	props.Add("start", formatNumber(r.start))
	props.Add("end", formatNumber(r.end))
}

// rangeUpdate holds decoded but not yet applied range properties.
type rangeUpdate[T Number] struct {
	start, end, value T
	hasValue          bool
}

func (r *ValueRange[T]) decode(props serialize.Properties) (rangeUpdate[T], error) {
	u := rangeUpdate[T]{start: r.start, end: r.end, value: r.value}
	for _, kv := range props {
		var dst *T
		switch kv.Key {
		case "value":
			dst = &u.value
			u.hasValue = true
		case "start":
			dst = &u.start
		case "end":
			dst = &u.end
		default:
			continue
		}
		v, err := parseNumber[T](kv.Value)
		if err != nil {
			return u, err
		}
		*dst = v
	}
	return u, nil
}

// apply assigns u, reporting whether the stored value changed.
func (r *ValueRange[T]) apply(u rangeUpdate[T], props *serialize.Properties) bool {
	old := r.value
	r.setRange(u.start, u.end)
	if u.hasValue {
		r.store(u.value)
	}
	for _, k := range []string{"value", "start", "end"} {
		props.Remove(k)
	}
	return r.value != old
}

// Deserialize consumes value, start and end. Nothing is assigned unless
// all three parse.
func (r *ValueRange[T]) Deserialize(props *serialize.Properties) error {
	u, err := r.decode(*props)
	if err != nil {
		return err
	}
	r.apply(u, props)
	return nil
}
