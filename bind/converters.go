package bind

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// ErrConverterResult is reported when a converter returns a value that cannot
// be stored in its target type.
var ErrConverterResult = errors.New("bind: converter returned a value of the wrong type")

// Converter parses text into a value of the type it is registered for.
type Converter func(text string) (any, error)

// Converters is a conversion table keyed by target type. Register every
// converter before the table is shared; lookups are read-only afterwards.
type Converters struct {
	byType map[reflect.Type]Converter
}

// NewConverters returns an empty table.
func NewConverters() *Converters {
	return &Converters{byType: make(map[reflect.Type]Converter)}
}

// DefaultConverters returns a table for strings, booleans, numbers,
// durations, times and comma separated string lists.
func DefaultConverters() *Converters {
	c := NewConverters()

	Register(c, func(s string) (string, error) { return s, nil })
	Register(c, strconv.ParseBool)

	Register(c, signed[int](strconv.IntSize))
	Register(c, signed[int8](8))
	Register(c, signed[int16](16))
	Register(c, signed[int32](32))
	Register(c, signed[int64](64))

	Register(c, unsigned[uint](strconv.IntSize))
	Register(c, unsigned[uint8](8))
	Register(c, unsigned[uint16](16))
	Register(c, unsigned[uint32](32))
	Register(c, unsigned[uint64](64))

	Register(c, float[float32](32))
	Register(c, float[float64](64))

	Register(c, time.ParseDuration)
	Register(c, parseTime)
	Register(c, splitList)

	return c
}

// Register adds or replaces the converter for T.
func Register[T any](c *Converters, fn func(string) (T, error)) {
	c.byType[reflect.TypeFor[T]()] = func(text string) (any, error) {
		return fn(text)
	}
}

// Set adds or replaces the converter for t.
func (c *Converters) Set(t reflect.Type, fn Converter) {
	c.byType[t] = fn
}

// Clone returns an independent copy of the table.
func (c *Converters) Clone() *Converters {
	clone := NewConverters()
	for t, fn := range c.byType {
		clone.byType[t] = fn
	}
	return clone
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// kindBase maps a basic kind to the builtin type whose converter also serves
// named types of that kind.
var kindBase = map[reflect.Kind]reflect.Type{
	reflect.String:  reflect.TypeFor[string](),
	reflect.Bool:    reflect.TypeFor[bool](),
	reflect.Int:     reflect.TypeFor[int](),
	reflect.Int8:    reflect.TypeFor[int8](),
	reflect.Int16:   reflect.TypeFor[int16](),
	reflect.Int32:   reflect.TypeFor[int32](),
	reflect.Int64:   reflect.TypeFor[int64](),
	reflect.Uint:    reflect.TypeFor[uint](),
	reflect.Uint8:   reflect.TypeFor[uint8](),
	reflect.Uint16:  reflect.TypeFor[uint16](),
	reflect.Uint32:  reflect.TypeFor[uint32](),
	reflect.Uint64:  reflect.TypeFor[uint64](),
	reflect.Float32: reflect.TypeFor[float32](),
	reflect.Float64: reflect.TypeFor[float64](),
}

// Convert parses text into a value of type t. found is false when the table
// has no way to produce t.
//
// Lookup order: exact type, encoding.TextUnmarshaler, pointer to a
// convertible type, then the builtin type of the same basic kind.
func (c *Converters) Convert(t reflect.Type, text string) (v reflect.Value, found bool, err error) {
	if fn, ok := c.byType[t]; ok {
		v, err := call(fn, t, text)
		return v, true, err
	}

	if reflect.PointerTo(t).Implements(textUnmarshalerType) {
		ptr := reflect.New(t)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(text)); err != nil {
			return reflect.Value{}, true, err
		}
		return ptr.Elem(), true, nil
	}

	if t.Kind() == reflect.Pointer {
		elem, found, err := c.Convert(t.Elem(), text)
		if !found || err != nil {
			return reflect.Value{}, found, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, true, nil
	}

	if base, ok := kindBase[t.Kind()]; ok && base != t {
		if fn, ok := c.byType[base]; ok {
			v, err := call(fn, base, text)
			if err != nil {
				return reflect.Value{}, true, err
			}
			return v.Convert(t), true, nil
		}
	}

	return reflect.Value{}, false, nil
}

func call(fn Converter, t reflect.Type, text string) (reflect.Value, error) {
	out, err := fn(text)
	if err != nil {
		return reflect.Value{}, err
	}
	v := reflect.ValueOf(out)
	switch {
	case !v.IsValid():
		return reflect.Value{}, fmt.Errorf("%w: nil for %s", ErrConverterResult, t)
	case v.Type().AssignableTo(t):
		return v, nil
	case v.Type().ConvertibleTo(t) && v.Kind() == t.Kind():
		return v.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s for %s", ErrConverterResult, v.Type(), t)
	}
}

func signed[T ~int | ~int8 | ~int16 | ~int32 | ~int64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, bits)
		return T(n), err
	}
}

func unsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, bits)
		return T(n), err
	}
}

func float[T ~float32 | ~float64](bits int) func(string) (T, error) {
	return func(s string) (T, error) {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), bits)
		return T(f), err
	}
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected RFC 3339 or YYYY-MM-DD, got %q", s)
	}
	return t, nil
}

func splitList(s string) ([]string, error) {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
