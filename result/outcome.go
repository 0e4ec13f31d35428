// Package result represents the outcome of a parse call and provides the
// handler combinators callers chain on it.
//
// An Outcome starts as Matched or Unmatched. A final handler wraps it into
// Consumed, which signals that the outcome was already handled while still
// giving access to the original.
package result

import (
	"errors"
	"fmt"
)

// State is the top-level tag of an Outcome.
type State int

const (
	Undefined State = iota
	Matched
	Unmatched
	Consumed
)

func (s State) String() string {
	switch s {
	case Matched:
		return "matched"
	case Unmatched:
		return "unmatched"
	case Consumed:
		return "consumed"
	default:
		return "undefined"
	}
}

var (
	// ErrNotMatched is returned when reading the value of an outcome that did not match.
	ErrNotMatched = errors.New("result: outcome is not matched")

	// ErrNotUnmatched is returned when reading the errors of a matched outcome.
	ErrNotUnmatched = errors.New("result: outcome is not unmatched")
)

// Outcome is the immutable result of one parse call.
type Outcome[T any] struct {
	state    State
	value    T
	errs     []Error
	original *Outcome[T]
}

// Match creates a Matched outcome.
func Match[T any](value T) Outcome[T] {
	return Outcome[T]{state: Matched, value: value}
}

// NoMatch creates an Unmatched outcome holding errs in order.
func NoMatch[T any](errs ...Error) Outcome[T] {
	return Outcome[T]{state: Unmatched, errs: append([]Error(nil), errs...)}
}

// Consume wraps o into a Consumed outcome. Consuming a consumed outcome
// returns it unchanged.
func Consume[T any](o Outcome[T]) Outcome[T] {
	if o.state == Consumed {
		return o
	}
	return Outcome[T]{state: Consumed, original: &o}
}

// State returns the top-level tag.
func (o Outcome[T]) State() State {
	return o.state
}

func (o Outcome[T]) IsMatched() bool   { return o.state == Matched }
func (o Outcome[T]) IsUnmatched() bool { return o.state == Unmatched }
func (o Outcome[T]) IsConsumed() bool  { return o.state == Consumed }

// Original returns the wrapped outcome of a Consumed outcome, or o itself.
func (o Outcome[T]) Original() Outcome[T] {
	if o.state == Consumed && o.original != nil {
		return *o.original
	}
	return o
}

// Value returns the bound value. It looks through Consumed and fails with
// ErrNotMatched when the underlying outcome did not match.
func (o Outcome[T]) Value() (T, error) {
	orig := o.Original()
	if orig.state != Matched {
		var zero T
		return zero, fmt.Errorf("%w (state %s)", ErrNotMatched, orig.state)
	}
	return orig.value, nil
}

// MustValue is like Value but panics on a facet mismatch.
func (o Outcome[T]) MustValue() T {
	v, err := o.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Errors returns the ordered errors. It looks through Consumed and fails with
// ErrNotUnmatched when the underlying outcome matched.
func (o Outcome[T]) Errors() ([]Error, error) {
	orig := o.Original()
	if orig.state != Unmatched {
		return nil, fmt.Errorf("%w (state %s)", ErrNotUnmatched, orig.state)
	}
	return orig.errs, nil
}

func (o Outcome[T]) String() string {
	orig := o.Original()
	switch orig.state {
	case Matched:
		s := fmt.Sprintf("matched(%v)", orig.value)
		if o.state == Consumed {
			return "consumed " + s
		}
		return s
	case Unmatched:
		s := fmt.Sprintf("unmatched(%v)", orig.errs)
		if o.state == Consumed {
			return "consumed " + s
		}
		return s
	default:
		return orig.state.String()
	}
}
