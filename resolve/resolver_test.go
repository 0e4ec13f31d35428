package resolve

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/settings"
	"github.com/footprint-tools/verbparse/shape"
	"github.com/footprint-tools/verbparse/token"
)

type First struct {
	Value string `param:"v,optional"`
}

func (First) Verb() string { return "first" }

type Second struct {
	Value string `param:"v,optional"`
}

func (Second) Verb() string { return "second" }

type AnotherSecond struct{}

func (AnotherSecond) Verb() string { return "Second" }

type Untagged struct{}

type Create struct{}

func (Create) Verb() string { return "create" }

type Delete struct{}

func (Delete) Verb() string { return "delete" }

func cmd(verb string) token.Command { return token.Command{Verb: verb} }

func requireFailure(t *testing.T, err error) *result.Failure {
	t.Helper()
	var f *result.Failure
	require.True(t, errors.As(err, &f), "expected *result.Failure, got %v", err)
	return f
}

func TestVerbResolver_SymmetricInCandidateOrder(t *testing.T) {
	first, second := shape.MustOf[First](), shape.MustOf[Second]()

	for _, candidates := range [][]*shape.Shape{{first, second}, {second, first}} {
		got, err := VerbResolver{}.Resolve(candidates, cmd("second"), settings.Default())
		require.NoError(t, err)
		require.Same(t, second, got)
	}
}

func TestVerbResolver_Comparison(t *testing.T) {
	candidates := []*shape.Shape{shape.MustOf[First](), shape.MustOf[Second]()}

	got, err := VerbResolver{}.Resolve(candidates, cmd("SECOND"), settings.Default())
	require.NoError(t, err)
	require.Equal(t, "Second", got.Name())

	exact := settings.Default()
	exact.Comparison = settings.Exact
	_, err = VerbResolver{}.Resolve(candidates, cmd("SECOND"), exact)
	require.Equal(t, result.TypeResolutionFailed, requireFailure(t, err).Code)
}

func TestVerbResolver_Ambiguous(t *testing.T) {
	candidates := []*shape.Shape{shape.MustOf[Second](), shape.MustOf[First](), shape.MustOf[AnotherSecond]()}

	_, err := VerbResolver{}.Resolve(candidates, cmd("second"), settings.Default())

	f := requireFailure(t, err)
	require.Equal(t, result.TypeResolutionFailed, f.Code)
	require.Equal(t, []string{`verb "second" is ambiguous between shapes: AnotherSecond, Second`}, f.Messages)
}

func TestVerbResolver_Untagged(t *testing.T) {
	candidates := []*shape.Shape{shape.MustOf[First](), shape.MustOf[Untagged]()}

	// Untagged shapes fail even when the verb would match another candidate.
	_, err := VerbResolver{}.Resolve(candidates, cmd("first"), settings.Default())

	f := requireFailure(t, err)
	require.Equal(t, result.TypeResolutionFailed, f.Code)
	require.Equal(t, []string{"shapes without a verb: Untagged"}, f.Messages)
}

func TestVerbResolver_NoMatch(t *testing.T) {
	candidates := []*shape.Shape{shape.MustOf[Create](), shape.MustOf[Delete]()}

	_, err := VerbResolver{}.Resolve(candidates, cmd("crate"), settings.Default())
	f := requireFailure(t, err)
	require.Equal(t, []string{`no shape for verb "crate", did you mean: create?`}, f.Messages)

	_, err = VerbResolver{MaxSuggestions: -1}.Resolve(candidates, cmd("crate"), settings.Default())
	f = requireFailure(t, err)
	require.Equal(t, []string{`no shape for verb "crate"`}, f.Messages)

	_, err = VerbResolver{}.Resolve(candidates, cmd("zzzzzzzz"), settings.Default())
	f = requireFailure(t, err)
	require.Equal(t, []string{`no shape for verb "zzzzzzzz"`}, f.Messages)
}

func TestVerbResolver_Fatal(t *testing.T) {
	_, err := VerbResolver{}.Resolve(nil, cmd("x"), settings.Default())
	require.ErrorIs(t, err, ErrNoCandidates)

	_, err = VerbResolver{}.Resolve([]*shape.Shape{nil}, cmd("x"), settings.Default())
	require.Error(t, err)
	var f *result.Failure
	require.False(t, errors.As(err, &f))
}

func TestSuggest(t *testing.T) {
	verbs := []string{"create", "delete", "list"}

	require.Equal(t, []string{"create"}, Suggest("crate", verbs, 3))
	require.Equal(t, []string{"delete"}, Suggest("del", verbs, 3))
	require.Equal(t, []string{"list"}, Suggest("LST", verbs, 3))
	require.Empty(t, Suggest("create", verbs, 3))
	require.Empty(t, Suggest("crate", verbs, 0))
}
