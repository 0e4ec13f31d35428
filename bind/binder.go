// Package bind fills a command struct from tokenized arguments.
package bind

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/footprint-tools/verbparse/result"
	"github.com/footprint-tools/verbparse/settings"
	"github.com/footprint-tools/verbparse/shape"
	"github.com/footprint-tools/verbparse/token"
)

// Binder populates target, a pointer to a zero instance of sh.Type, from cmd.
//
// A *result.Failure error lists every validation problem. A
// *ConversionFault or any other error is fatal to the call.
type Binder interface {
	Bind(sh *shape.Shape, target any, cmd token.Command, s settings.Settings) error
}

// ConversionFault collects the converter panics and broken converter results
// of one bind call.
type ConversionFault struct {
	Shape string
	Errs  []error
}

func (f *ConversionFault) Error() string {
	msgs := make([]string, len(f.Errs))
	for i, err := range f.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("bind: %d conversion fault(s) in %s: %s", len(f.Errs), f.Shape, strings.Join(msgs, "; "))
}

// Unwrap exposes every collected fault to errors.Is and errors.As.
func (f *ConversionFault) Unwrap() []error {
	return f.Errs
}

// ReflectBinder binds through the cached shape descriptors. A nil Converters
// table means DefaultConverters.
type ReflectBinder struct {
	Converters *Converters
}

// NewReflectBinder returns a binder using converters, or the default table
// when converters is nil.
func NewReflectBinder(converters *Converters) ReflectBinder {
	if converters == nil {
		converters = DefaultConverters()
	}
	return ReflectBinder{Converters: converters}
}

// Bind implements Binder.
func (b ReflectBinder) Bind(sh *shape.Shape, target any, cmd token.Command, s settings.Settings) error {
	if sh == nil {
		return errors.New("bind: shape is nil")
	}
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Type() != sh.Type {
		return fmt.Errorf("bind: target must be a non-nil *%s, got %T", sh.Type, target)
	}

	if invalid := sh.InvalidOptions(); len(invalid) > 0 {
		names := make([]string, len(invalid))
		for i, o := range invalid {
			names[i] = fmt.Sprintf("%s (%s)", o.Field, o.Type)
		}
		return result.Fail(result.BindingFailed,
			fmt.Sprintf("options of %s must be bool fields: %s", sh.Name(), strings.Join(names, ", ")))
	}

	converters := b.Converters
	if converters == nil {
		converters = DefaultConverters()
	}
	run := &binding{
		shape:      sh,
		instance:   v.Elem(),
		converters: converters,
	}

	if cmd.HasOnlyPositionalValues() {
		if s.RequireArgumentKeyPrefix {
			return result.Fail(result.BindingFailed,
				"argument keys are required, positional values cannot be bound")
		}
		for i, p := range sh.Positional() {
			var tok *token.ArgumentToken
			if i < len(cmd.Arguments) {
				tok = &cmd.Arguments[i]
			}
			run.parameter(p, tok)
		}
	} else {
		for _, o := range sh.Options {
			if tok := find(cmd, o.Name, o.LongName, s); tok != nil {
				run.option(o)
			}
		}
		for _, p := range sh.Parameters {
			run.parameter(p, find(cmd, p.Name, p.LongName, s))
		}
	}

	if len(run.faults) > 0 {
		return &ConversionFault{Shape: sh.Name(), Errs: run.faults}
	}
	if len(run.problems) > 0 {
		return result.Fail(result.BindingFailed, run.problems...)
	}
	return nil
}

// find returns the first token whose key matches name or long.
func find(cmd token.Command, name, long string, s settings.Settings) *token.ArgumentToken {
	for i := range cmd.Arguments {
		key := cmd.Arguments[i].Key
		if key == "" {
			continue
		}
		if s.Equal(key, name) || s.Equal(key, long) {
			return &cmd.Arguments[i]
		}
	}
	return nil
}

// binding is the state of one Bind call.
type binding struct {
	shape      *shape.Shape
	instance   reflect.Value
	converters *Converters

	problems []string
	faults   []error
}

func (b *binding) problem(long, format string, args ...any) {
	b.problems = append(b.problems, fmt.Sprintf("argument '%s': %s", long, fmt.Sprintf(format, args...)))
}

func (b *binding) option(o shape.Option) {
	if !o.Settable {
		b.problem(o.LongName, "cannot set field %s of %s", o.Field, b.shape.Name())
		return
	}
	b.instance.FieldByIndex(o.Index).SetBool(true)
}

func (b *binding) parameter(p shape.Parameter, tok *token.ArgumentToken) {
	if tok == nil || tok.Value == "" {
		if p.Required {
			b.problem(p.LongName, "parameter is not set")
		}
		return
	}
	if !p.Settable {
		b.problem(p.LongName, "cannot set field %s of %s", p.Field, b.shape.Name())
		return
	}

	v, found, err := b.convert(p, tok.Value)
	switch {
	case errors.Is(err, errFaulted):
		return
	case errors.Is(err, ErrConverterResult):
		b.faults = append(b.faults, fmt.Errorf("field %s of %s: %w", p.Field, b.shape.Name(), err))
		return
	case !found:
		b.problem(p.LongName, "cannot convert %q to %s", tok.Value, p.Type)
		return
	case err != nil:
		b.problem(p.LongName, "invalid value %q: %v", tok.Value, err)
		return
	}

	b.instance.FieldByIndex(p.Index).Set(v)
}

var errFaulted = errors.New("converter panicked")

// convert runs the converter for p, turning a panic into a collected fault.
func (b *binding) convert(p shape.Parameter, text string) (v reflect.Value, found bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			b.faults = append(b.faults,
				fmt.Errorf("field %s of %s: converter panicked on %q: %v", p.Field, b.shape.Name(), text, r))
			v, found, err = reflect.Value{}, true, errFaulted
		}
	}()
	return b.converters.Convert(p.Type, text)
}
