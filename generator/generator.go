package generator

import (
	"errors"
	"fmt"

	"object-synth/hints"
)

// Generator produces a value for a slot.
type Generator interface {
	Generate(r *Random) (any, error)
}

// Hinter is implemented by generators that return hints with their values.
type Hinter interface {
	Hints() hints.Hints
}

// Resetter is implemented by stateful generators. Reset is called at the
// start of every population run that references the generator.
type Resetter interface {
	Reset()
}

// Func adapts a function to the Generator interface.
type Func func(r *Random) (any, error)

func (f Func) Generate(r *Random) (any, error) {
	return f(r)
}

type hinted struct {
	Generator
	hints hints.Hints
}

func (h hinted) Hints() hints.Hints {
	return h.hints
}

func (h hinted) Unwrap() Generator {
	return h.Generator
}

// WithHints attaches hints to a generator.
func WithHints(g Generator, h hints.Hints) Generator {
	return hinted{Generator: g, hints: h}
}

// Value returns a generator that always produces v.
func Value(v any) Generator {
	return Func(func(*Random) (any, error) {
		return v, nil
	})
}

// OneOf returns a generator that picks one of values.
func OneOf(values ...any) Generator {
	return Func(func(r *Random) (any, error) {
		i := r.Pick(len(values))
		if i < 0 {
			return nil, errors.New("no values to pick from")
		}

		return values[i], nil
	})
}

// HintsOf returns the hints of g, or zero hints.
func HintsOf(g Generator) hints.Hints {
	if h, ok := g.(Hinter); ok {
		return h.Hints()
	}

	return hints.Hints{}
}

// AsResetter finds a Resetter in g or the generators it wraps.
func AsResetter(g Generator) (Resetter, bool) {
	for g != nil {
		if r, ok := g.(Resetter); ok {
			return r, true
		}

		u, ok := g.(interface{ Unwrap() Generator })
		if !ok {
			return nil, false
		}
		g = u.Unwrap()
	}

	return nil, false
}

// InvocationError reports a custom generator that failed or panicked.
type InvocationError struct {
	Path  string
	Err   error
	Panic any
}

func (e *InvocationError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("generator panicked at %s: %v", e.Path, e.Panic)
	}

	return fmt.Sprintf("generator failed at %s: %v", e.Path, e.Err)
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Invoke calls g once and collects its hints. Errors and panics are
// returned as *InvocationError carrying path.
func Invoke(g Generator, r *Random, path string) (value any, h hints.Hints, err error) {
	defer func() {
		if p := recover(); p != nil {
			value = nil
			err = &InvocationError{Path: path, Panic: p}
		}
	}()

	value, err = g.Generate(r)
	if err != nil {
		return nil, hints.Hints{}, &InvocationError{Path: path, Err: err}
	}

	return value, HintsOf(g), nil
}
