// Package shape describes the command structs text is bound onto.
//
// A shape is a struct whose fields carry param or option tags:
//
//	type CreatePackage struct {
//		Name     string `param:"n,name"`
//		Tag      string `param:"t,tag,optional"`
//		IsHidden bool   `option:"h,hidden"`
//	}
//
//	func (CreatePackage) Verb() string { return "create" }
//
// Parameters are required unless marked optional. The long name defaults to
// the short name. Descriptors are built once per type and cached for the
// lifetime of the process.
package shape

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Verber is implemented by shapes that declare the verb selecting them.
type Verber interface {
	Verb() string
}

// ErrNotStruct is returned for types that cannot describe a command.
var ErrNotStruct = errors.New("shape: type must be a struct or a pointer to a struct")

// Parameter describes a field bound from a keyed or positional value.
type Parameter struct {
	Name     string
	LongName string
	Field    string
	Index    []int
	Type     reflect.Type
	Required bool
	Order    int
	Settable bool
}

// Option describes a boolean field set by the presence of its key.
type Option struct {
	Name     string
	LongName string
	Field    string
	Index    []int
	Type     reflect.Type
	Settable bool
}

// Shape is the cached descriptor table of one command struct.
type Shape struct {
	Type       reflect.Type
	Verb       string
	Parameters []Parameter
	Options    []Option

	positional []Parameter
}

var cache sync.Map // reflect.Type -> *Shape

// Of returns the shape of T.
func Of[T any]() (*Shape, error) {
	return For(reflect.TypeFor[T]())
}

// MustOf is like Of but panics on an invalid shape. It is meant for
// package-level candidate lists.
func MustOf[T any]() *Shape {
	sh, err := Of[T]()
	if err != nil {
		panic(err)
	}
	return sh
}

// For returns the shape of t, building and caching it on first use.
func For(t reflect.Type) (*Shape, error) {
	if t == nil {
		return nil, ErrNotStruct
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}

	if cached, ok := cache.Load(t); ok {
		return cached.(*Shape), nil
	}

	sh, err := build(t)
	if err != nil {
		return nil, err
	}
	actual, _ := cache.LoadOrStore(t, sh)
	return actual.(*Shape), nil
}

// Name returns the type name used in messages.
func (s *Shape) Name() string {
	if n := s.Type.Name(); n != "" {
		return n
	}
	return s.Type.String()
}

// New returns a pointer to a fresh zero instance.
func (s *Shape) New() any {
	return reflect.New(s.Type).Interface()
}

// HasVerb reports whether the shape declares a non-empty verb.
func (s *Shape) HasVerb() bool {
	return s.Verb != ""
}

// InvalidOptions returns the options whose field is not a bool.
func (s *Shape) InvalidOptions() []Option {
	var invalid []Option
	for _, o := range s.Options {
		if o.Type.Kind() != reflect.Bool {
			invalid = append(invalid, o)
		}
	}
	return invalid
}

// Positional returns the parameters in positional binding order: by Order,
// then by declaration.
func (s *Shape) Positional() []Parameter {
	return s.positional
}

var verberType = reflect.TypeFor[Verber]()

func build(t reflect.Type) (*Shape, error) {
	sh := &Shape{Type: t}

	if reflect.PointerTo(t).Implements(verberType) {
		sh.Verb = reflect.New(t).Interface().(Verber).Verb()
	}

	seen := make(map[string]string)
	claim := func(field string, names ...string) error {
		for _, n := range names {
			if other, dup := seen[n]; dup && other != field {
				return fmt.Errorf("shape %s: name %q used by fields %s and %s", t, n, other, field)
			}
			seen[n] = field
		}
		return nil
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		paramTag, isParam := f.Tag.Lookup("param")
		optionTag, isOption := f.Tag.Lookup("option")

		switch {
		case isParam && isOption:
			return nil, fmt.Errorf("shape %s: field %s has both param and option tags", t, f.Name)

		case isParam:
			p, err := parseParamTag(paramTag)
			if err != nil {
				return nil, fmt.Errorf("shape %s: field %s: %w", t, f.Name, err)
			}
			p.Field, p.Index, p.Type, p.Settable = f.Name, f.Index, f.Type, f.IsExported()
			if err := claim(f.Name, p.Name, p.LongName); err != nil {
				return nil, err
			}
			sh.Parameters = append(sh.Parameters, p)

		case isOption:
			o, err := parseOptionTag(optionTag)
			if err != nil {
				return nil, fmt.Errorf("shape %s: field %s: %w", t, f.Name, err)
			}
			o.Field, o.Index, o.Type, o.Settable = f.Name, f.Index, f.Type, f.IsExported()
			if err := claim(f.Name, o.Name, o.LongName); err != nil {
				return nil, err
			}
			sh.Options = append(sh.Options, o)
		}
	}

	sh.positional = append([]Parameter(nil), sh.Parameters...)
	sort.SliceStable(sh.positional, func(i, j int) bool {
		return sh.positional[i].Order < sh.positional[j].Order
	})

	return sh, nil
}
