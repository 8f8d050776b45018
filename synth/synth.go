package synth

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"reflect"
	"strings"
	"sync"

	"object-synth/generator"
	"object-synth/internal/diagnostic"
	"object-synth/internal/populate"
	"object-synth/schema"
	"object-synth/selector"
	"object-synth/settings"
	"object-synth/typedesc"
)

// ErrUnusedSelectors is returned in strict mode when a selector matched
// no node of the populated graph.
var ErrUnusedSelectors = errors.New("unused selectors")

// Result describes a finished run.
type Result struct {
	// Seed reproduces the run when set through settings.WithSeed.
	Seed        uint64
	Diagnostics diagnostic.Diagnostics
}

// Synth creates and fills values. A Synth is immutable and safe for
// concurrent use.
type Synth struct {
	settings  settings.Settings
	selectors *selector.Registry
	factory   *schema.Factory
	engine    *populate.Engine
	logger    *slog.Logger
	graphs    sync.Map // reflect.Type -> *schema.Node
}

// New creates a Synth. Settings are validated once here.
func New(opts ...Option) (*Synth, error) {
	c := config{settings: settings.Defaults(), logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}

	s, err := c.settings.Validate()
	if err != nil {
		return nil, err
	}

	selectors := selector.NewRegistry(c.selectors...)

	return &Synth{
		settings:  s,
		selectors: selectors,
		factory: schema.NewFactory(
			schema.WithMaxDepth(s.MaxDepth),
			schema.WithClassifier(typedesc.NewClassifier(s.LeafTypes...)),
			schema.WithLogger(c.logger),
		),
		engine: populate.NewEngine(s, selectors, populate.WithLogger(c.logger)),
		logger: c.logger,
	}, nil
}

// Settings returns the validated settings.
func (s *Synth) Settings() settings.Settings {
	return s.settings
}

// Schema returns the schema graph of rt, building it on first use.
func (s *Synth) Schema(rt reflect.Type) (*schema.Node, error) {
	if n, ok := s.graphs.Load(rt); ok {
		return n.(*schema.Node), nil
	}

	n, err := s.factory.BuildReflect(rt)
	if err != nil {
		return nil, err
	}

	actual, _ := s.graphs.LoadOrStore(rt, n)

	return actual.(*schema.Node), nil
}

// Create returns a new value of type T.
func Create[T any](s *Synth) (T, Result, error) {
	var zero T

	v, res, err := s.create(reflect.TypeFor[T](), s.seed())
	if err != nil {
		return zero, res, err
	}

	// a nil interface root yields the zero T
	out, _ := v.Interface().(T)

	return out, res, nil
}

// Fill populates an existing value. The value is treated as the origin of
// the run, governed by the configured after-generate action.
func Fill[T any](s *Synth, target *T) (Result, error) {
	if target == nil {
		return Result{}, errors.New("fill: nil target")
	}

	root, err := s.Schema(reflect.TypeFor[T]())
	if err != nil {
		return Result{}, err
	}

	return s.Populate(root, target)
}

// Populate fills the value target points to along a prebuilt graph, for
// example one built from a statically loaded type. The graph's type must
// be the type target points to.
func (s *Synth) Populate(root *schema.Node, target any) (Result, error) {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return Result{}, fmt.Errorf("populate: target must be a non-nil pointer, got %T", target)
	}

	seed := s.seed()
	res, err := s.engine.Populate(root, rv.Elem(), generator.NewRandom(seed))

	return s.finish(res, seed, err)
}

func (s *Synth) create(rt reflect.Type, seed uint64) (reflect.Value, Result, error) {
	root, err := s.Schema(rt)
	if err != nil {
		return reflect.Value{}, Result{Seed: seed}, err
	}

	v, res, err := s.engine.Create(root, rt, generator.NewRandom(seed))
	out, err := s.finish(res, seed, err)
	if err != nil {
		return reflect.Value{}, out, err
	}

	return v, out, nil
}

func (s *Synth) finish(res populate.Result, seed uint64, err error) (Result, error) {
	out := Result{Seed: seed, Diagnostics: res.Diagnostics}
	if err != nil {
		return out, err
	}

	if len(res.Unused) > 0 && s.settings.Strict() {
		return out, unusedError(res.Unused)
	}

	return out, nil
}

func unusedError(unused []selector.Selector) error {
	names := make([]string, len(unused))
	for i, sel := range unused {
		names[i] = sel.String()
	}

	return fmt.Errorf("%w: %s", ErrUnusedSelectors, strings.Join(names, ", "))
}

func (s *Synth) seed() uint64 {
	if s.settings.Seed != nil {
		return *s.settings.Seed
	}

	return rand.Uint64()
}
