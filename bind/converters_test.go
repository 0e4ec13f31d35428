package bind

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConverters_Convert(t *testing.T) {
	c := DefaultConverters()

	tests := []struct {
		name string
		typ  reflect.Type
		text string
		want any
	}{
		{name: "string", typ: reflect.TypeFor[string](), text: "a b", want: "a b"},
		{name: "bool", typ: reflect.TypeFor[bool](), text: "1", want: true},
		{name: "int", typ: reflect.TypeFor[int](), text: "199", want: 199},
		{name: "int8", typ: reflect.TypeFor[int8](), text: "-5", want: int8(-5)},
		{name: "uint64", typ: reflect.TypeFor[uint64](), text: "7", want: uint64(7)},
		{name: "float32", typ: reflect.TypeFor[float32](), text: "1.5", want: float32(1.5)},
		{name: "duration", typ: reflect.TypeFor[time.Duration](), text: "2s", want: 2 * time.Second},
		{name: "named string", typ: reflect.TypeFor[upper](), text: "abc", want: upper("ABC")},
		{name: "named int", typ: reflect.TypeFor[level](), text: "4", want: level(4)},
		{name: "rfc3339", typ: reflect.TypeFor[time.Time](), text: "2024-03-01T10:00:00Z", want: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, found, err := c.Convert(tt.typ, tt.text)
			require.True(t, found)
			require.NoError(t, err)
			require.Equal(t, tt.want, v.Interface())
		})
	}
}

func TestConverters_Errors(t *testing.T) {
	c := DefaultConverters()

	_, found, err := c.Convert(reflect.TypeFor[int8](), "300")
	require.True(t, found)
	require.Error(t, err)

	_, found, err = c.Convert(reflect.TypeFor[time.Time](), "yesterday")
	require.True(t, found)
	require.Error(t, err)

	_, found, _ = c.Convert(reflect.TypeFor[map[string]int](), "a")
	require.False(t, found)
}

func TestConverters_RegisterAndClone(t *testing.T) {
	base := DefaultConverters()
	custom := base.Clone()
	Register(custom, func(s string) (point, error) { return point{X: len(s)}, nil })

	_, found, _ := base.Convert(reflect.TypeFor[point](), "abc")
	require.False(t, found)

	v, found, err := custom.Convert(reflect.TypeFor[point](), "abc")
	require.True(t, found)
	require.NoError(t, err)
	require.Equal(t, point{X: 3}, v.Interface())
}
