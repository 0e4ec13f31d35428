// Package resolve selects the shape a tokenized command binds to.
package resolve

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/settings"
	"github.com/footprint-tools/verbparse/shape"
	"github.com/footprint-tools/verbparse/token"
)

// ErrNoCandidates is returned when a resolver is called without shapes.
var ErrNoCandidates = errors.New("resolve: no candidate shapes")

// Resolver picks exactly one candidate for cmd.
//
// A *result.Failure error means the verb does not select a single shape. Any
// other error is fatal to the call.
type Resolver interface {
	Resolve(candidates []*shape.Shape, cmd token.Command, s settings.Settings) (*shape.Shape, error)
}

// DefaultMaxSuggestions is the number of verbs offered when nothing matches.
const DefaultMaxSuggestions = 3

// VerbResolver matches the command verb against each shape's declared verb.
// The outcome does not depend on candidate order.
type VerbResolver struct {
	// MaxSuggestions limits "did you mean" hints. Zero means
	// DefaultMaxSuggestions, a negative value disables them.
	MaxSuggestions int
}

// Resolve implements Resolver.
func (r VerbResolver) Resolve(candidates []*shape.Shape, cmd token.Command, s settings.Settings) (*shape.Shape, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	var untagged []string
	for i, sh := range candidates {
		if sh == nil {
			return nil, fmt.Errorf("resolve: candidate %d is nil", i)
		}
		if !sh.HasVerb() {
			untagged = append(untagged, sh.Name())
		}
	}
	if len(untagged) > 0 {
		sort.Strings(untagged)
		return nil, result.Fail(result.TypeResolutionFailed,
			fmt.Sprintf("shapes without a verb: %s", strings.Join(untagged, ", ")))
	}

	var matches []*shape.Shape
	for _, sh := range candidates {
		if s.Equal(sh.Verb, cmd.Verb) {
			matches = append(matches, sh)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		msg := fmt.Sprintf("no shape for verb %q", cmd.Verb)
		if hints := Suggest(cmd.Verb, verbs(candidates), r.maxSuggestions()); len(hints) > 0 {
			msg += fmt.Sprintf(", did you mean: %s?", strings.Join(hints, ", "))
		}
		return nil, result.Fail(result.TypeResolutionFailed, msg)
	default:
		names := make([]string, len(matches))
		for i, sh := range matches {
			names[i] = sh.Name()
		}
		sort.Strings(names)
		return nil, result.Fail(result.TypeResolutionFailed,
			fmt.Sprintf("verb %q is ambiguous between shapes: %s", cmd.Verb, strings.Join(names, ", ")))
	}
}

func (r VerbResolver) maxSuggestions() int {
	if r.MaxSuggestions == 0 {
		return DefaultMaxSuggestions
	}
	return max(r.MaxSuggestions, 0)
}

func verbs(candidates []*shape.Shape) []string {
	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, sh := range candidates {
		if !seen[sh.Verb] {
			seen[sh.Verb] = true
			out = append(out, sh.Verb)
		}
	}
	return out
}
