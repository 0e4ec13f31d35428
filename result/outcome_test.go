package result

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type first struct{ Name string }
type second struct{ Name string }

func TestMatch_Value(t *testing.T) {
	o := Match(42)

	require.Equal(t, Matched, o.State())
	require.True(t, o.IsMatched())

	v, err := o.Value()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = o.Errors()
	require.ErrorIs(t, err, ErrNotUnmatched)
}

func TestNoMatch_Errors(t *testing.T) {
	o := NoMatch[int](
		Error{Text: "a", Code: BrokenInput},
		Error{Text: "b", Code: BrokenInput},
	)

	require.True(t, o.IsUnmatched())

	errs, err := o.Errors()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, []string{errs[0].Text, errs[1].Text})

	_, err = o.Value()
	require.ErrorIs(t, err, ErrNotMatched)
	require.Panics(t, func() { o.MustValue() })
}

func TestWhenMatched_FinalConsumes(t *testing.T) {
	called := 0
	o := Match("create").WhenMatched(func(v string) {
		called++
		require.Equal(t, "create", v)
	})

	require.Equal(t, 1, called)
	require.True(t, o.IsConsumed())
	require.True(t, o.Original().IsMatched())
	require.Equal(t, "create", o.MustValue())

	// A consumed outcome never fires again.
	o = o.WhenMatched(func(string) { called++ })
	require.Equal(t, 1, called)
	require.True(t, o.IsConsumed())
}

func TestWhenMatched_NotFinalKeepsMatch(t *testing.T) {
	var calls []string
	o := Match("x").
		WhenMatched(func(string) { calls = append(calls, "first") }, NotFinal()).
		WhenMatched(func(string) { calls = append(calls, "second") })

	require.Equal(t, []string{"first", "second"}, calls)
	require.True(t, o.IsConsumed())
}

func TestWhenMatched_SkipsUnmatched(t *testing.T) {
	o := NoMatch[string](Error{Text: "bad", Code: BrokenInput})

	out := o.WhenMatched(func(string) { t.Fatal("handler must not run") })

	require.True(t, out.IsUnmatched())
}

func TestWhenUnmatched(t *testing.T) {
	var got []Error
	o := NoMatch[string](Error{Text: "bad", Code: BindingFailed}).
		WhenMatched(func(string) { t.Fatal("handler must not run") }).
		WhenUnmatched(func(errs []Error) { got = errs })

	require.Len(t, got, 1)
	require.Equal(t, BindingFailed, got[0].Code)
	require.True(t, o.IsConsumed())

	errs, err := o.Errors()
	require.NoError(t, err)
	require.Equal(t, got, errs)

	// Reading the value of a consumed unmatched outcome is a programming error.
	_, err = o.Value()
	require.ErrorIs(t, err, ErrNotMatched)
}

func TestWhenUnmatched_SkipsMatched(t *testing.T) {
	o := Match(1).WhenUnmatched(func([]Error) { t.Fatal("handler must not run") })
	require.True(t, o.IsMatched())
}

func TestWhenMatchedAs_DispatchesByType(t *testing.T) {
	var hit []string
	var o Outcome[any] = Match[any](&second{Name: "s"})

	o = WhenMatchedAs(o, func(v *first) { hit = append(hit, "first") })
	require.True(t, o.IsMatched())

	o = WhenMatchedAs(o, func(v *second) { hit = append(hit, "second:"+v.Name) })
	require.True(t, o.IsConsumed())

	o = WhenMatchedAs(o, func(v *second) { hit = append(hit, "again") })

	require.Equal(t, []string{"second:s"}, hit)
}

func TestWhenMatchedAs_ValueTypeMismatch(t *testing.T) {
	o := WhenMatchedAs(Match[any](second{}), func(*second) {
		t.Fatal("pointer handler must not match a value")
	})
	require.True(t, o.IsMatched())
}

func TestConsume_Idempotent(t *testing.T) {
	c := Consume(Match(1))
	require.Equal(t, c, Consume(c))
	require.True(t, Consume(c).Original().IsMatched())
}

func TestZeroOutcome(t *testing.T) {
	var o Outcome[int]

	require.Equal(t, Undefined, o.State())
	_, err := o.Value()
	require.ErrorIs(t, err, ErrNotMatched)
	_, err = o.Errors()
	require.ErrorIs(t, err, ErrNotUnmatched)
}

func TestFailure(t *testing.T) {
	f := Fail(BrokenInput, "one", "two")

	require.Equal(t, "BrokenInput: one; two", f.Error())
	require.Equal(t, []Error{
		{Text: "one", Code: BrokenInput},
		{Text: "two", Code: BrokenInput},
	}, f.Errors())
}

func TestCodeString(t *testing.T) {
	require.Equal(t, "BrokenInput", BrokenInput.String())
	require.Equal(t, "BindingFailed", BindingFailed.String())
	require.Equal(t, "TypeResolutionFailed", TypeResolutionFailed.String())
	require.Equal(t, "Undefined", Code(0).String())
}
