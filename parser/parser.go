// Package parser runs the tokenize, resolve and bind stages and turns their
// results into an Outcome.
package parser

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/footprint-tools/verbparse/bind"
	"github.com/footprint-tools/verbparse/internal/log"
	"github.com/footprint-tools/verbparse/resolve"
	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/settings"
	"github.com/footprint-tools/verbparse/shape"
	"github.com/footprint-tools/verbparse/token"
)

// Logger receives stage failures at debug level and faults at error level.
type Logger interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

var (
	errNilSettings  = errors.New("settings provider is nil")
	errNilTokenizer = errors.New("tokenizer is nil")
	errNilResolver  = errors.New("resolver is nil")
	errNilBinder    = errors.New("binder is nil")
)

// Parser is immutable after New and safe for concurrent use.
type Parser struct {
	settings  settings.Provider
	tokenizer token.Tokenizer
	resolver  resolve.Resolver
	binder    bind.Binder
	logger    Logger
}

// New returns a parser with the default stages and settings, adjusted by opts.
func New(opts ...Option) *Parser {
	p := &Parser{
		settings:  settings.Default,
		tokenizer: token.PrefixTokenizer{},
		resolver:  resolve.VerbResolver{},
		binder:    bind.NewReflectBinder(nil),
		logger:    log.NopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Default returns a parser with default stages and settings.
func Default() *Parser {
	return New()
}

// Parse binds input onto a new T. The verb is not checked against T.
func Parse[T any](p *Parser, input string) (out result.Outcome[*T], err error) {
	target := reflect.TypeFor[T]().String()
	defer p.recoverFault(input, target, &err)

	sh, err := shape.For(reflect.TypeFor[T]())
	if err != nil {
		return out, p.fault(input, target, err)
	}
	if p.binder == nil {
		return out, p.fault(input, target, errNilBinder)
	}

	s, cmd, err := p.tokenize(input)
	if err != nil {
		return settle[*T](p, input, target, err)
	}

	instance := new(T)
	if err := p.binder.Bind(sh, instance, cmd, s); err != nil {
		return settle[*T](p, input, target, err)
	}
	return result.Match(instance), nil
}

// ParseAny resolves input against candidates and binds it onto a new
// instance of the selected shape. The matched value is a pointer to that
// shape's struct type.
func (p *Parser) ParseAny(input string, candidates ...*shape.Shape) (out result.Outcome[any], err error) {
	target := describe(candidates)
	defer p.recoverFault(input, target, &err)

	switch {
	case p.resolver == nil:
		return out, p.fault(input, target, errNilResolver)
	case p.binder == nil:
		return out, p.fault(input, target, errNilBinder)
	}

	s, cmd, err := p.tokenize(input)
	if err != nil {
		return settle[any](p, input, target, err)
	}

	sh, err := p.resolver.Resolve(candidates, cmd, s)
	if err != nil {
		return settle[any](p, input, target, err)
	}
	target = sh.Name()

	instance := sh.New()
	if err := p.binder.Bind(sh, instance, cmd, s); err != nil {
		return settle[any](p, input, target, err)
	}
	return result.Match(instance), nil
}

// Tokenize runs only the tokenizer stage. Bad input is reported as a
// *result.Failure, anything else as a *Fault.
func (p *Parser) Tokenize(input string) (cmd token.Command, err error) {
	defer p.recoverFault(input, "tokens", &err)

	_, cmd, err = p.tokenize(input)
	var f *result.Failure
	if err != nil && !errors.As(err, &f) {
		return token.Command{}, p.fault(input, "tokens", err)
	}
	return cmd, err
}

// tokenize snapshots the settings and runs the tokenizer with them.
func (p *Parser) tokenize(input string) (settings.Settings, token.Command, error) {
	if p.settings == nil {
		return settings.Settings{}, token.Command{}, errNilSettings
	}
	if p.tokenizer == nil {
		return settings.Settings{}, token.Command{}, errNilTokenizer
	}

	s := p.settings()
	cmd, err := p.tokenizer.Tokenize(input, s)
	return s, cmd, err
}

// settle maps a stage error to an Unmatched outcome or a Fault.
func settle[T any](p *Parser, input, target string, err error) (result.Outcome[T], error) {
	var f *result.Failure
	if errors.As(err, &f) {
		p.logger.Debug("parse %q as %s: %s", input, target, f)
		return result.NoMatch[T](f.Errors()...), nil
	}
	return result.Outcome[T]{}, p.fault(input, target, err)
}

func (p *Parser) fault(input, target string, err error) error {
	var existing *Fault
	if errors.As(err, &existing) {
		return existing
	}
	f := newFault(input, target, err)
	p.logger.Error("%s", f)
	return f
}

// recoverFault turns a panic inside a stage into a Fault.
func (p *Parser) recoverFault(input, target string, err *error) {
	if r := recover(); r != nil {
		*err = p.fault(input, target, fmt.Errorf("panic: %v", r))
	}
}

func describe(candidates []*shape.Shape) string {
	names := make([]string, 0, len(candidates))
	for _, sh := range candidates {
		if sh != nil {
			names = append(names, sh.Name())
		}
	}
	if len(names) == 0 {
		return "no candidates"
	}
	return "one of " + strings.Join(names, ", ")
}
