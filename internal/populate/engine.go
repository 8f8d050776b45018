package populate

import (
	"fmt"
	"log/slog"
	"reflect"

	"object-synth/generator"
	"object-synth/hints"
	"object-synth/internal/diagnostic"
	"object-synth/internal/match"
	"object-synth/schema"
	"object-synth/selector"
	"object-synth/settings"
	"object-synth/typedesc"
)

// maxKeyAttempts bounds the key draws per requested map entry.
const maxKeyAttempts = 4

// Engine populates values described by schema graphs. An Engine holds no
// per-run state and is safe for concurrent use as long as every run gets
// its own Random.
type Engine struct {
	settings  settings.Settings
	selectors *selector.Registry
	catalog   *generator.Catalog
	logger    *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalog replaces the leaf value catalog.
func WithCatalog(c *generator.Catalog) Option {
	return func(e *Engine) {
		e.catalog = c
	}
}

// WithLogger sets the logger for population events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an Engine for the given settings and selectors.
func NewEngine(s settings.Settings, selectors *selector.Registry, opts ...Option) *Engine {
	e := &Engine{
		settings:  s,
		selectors: selectors,
		catalog:   generator.NewCatalog(s.Limits()),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Result describes a finished run.
type Result struct {
	Diagnostics diagnostic.Diagnostics
	// Unused lists the selectors that matched no visited node.
	Unused []selector.Selector
}

// Create returns a new value of type rt populated along root. The value
// is engine-created, so it is filled with hints.ActionFillAll.
func (e *Engine) Create(root *schema.Node, rt reflect.Type, rnd *generator.Random) (reflect.Value, Result, error) {
	if err := checkRoot(root, rt); err != nil {
		return reflect.Value{}, Result{}, err
	}

	v := reflect.New(rt).Elem()
	res, err := e.run(root, v, hints.ActionFillAll, rnd)
	if err != nil {
		return reflect.Value{}, res, err
	}

	return v, res, nil
}

// Populate fills an existing settable value along root. The value is
// governed by the configured after-generate action.
func (e *Engine) Populate(root *schema.Node, target reflect.Value, rnd *generator.Random) (Result, error) {
	if !target.IsValid() || !target.CanSet() {
		return Result{}, &ShapeError{Path: root.String(), Want: "settable " + root.Key(), Got: "unaddressable value"}
	}

	if err := checkRoot(root, target.Type()); err != nil {
		return Result{}, err
	}

	return e.run(root, target, e.settings.AfterGenerate, rnd)
}

func checkRoot(root *schema.Node, rt reflect.Type) error {
	if got := typedesc.ReflectKey(rt); got != root.Key() {
		return &ShapeError{Path: root.String(), Want: root.Key(), Got: got}
	}

	return nil
}

func (e *Engine) run(root *schema.Node, v reflect.Value, action hints.Action, rnd *generator.Random) (Result, error) {
	for _, g := range e.selectors.Generators() {
		if rs, ok := generator.AsResetter(g); ok {
			rs.Reset()
		}
	}

	r := &run{
		e:       e,
		rnd:     rnd,
		matcher: e.selectors.Matcher(),
		root:    root.String(),
		noted:   make(map[string]struct{}),
	}

	e.logger.Debug("population run", "root", r.root, "seed", rnd.Seed(), "action", action)

	if err := r.populate(root, v, action); err != nil {
		return Result{Diagnostics: r.diags}, err
	}

	res := Result{Diagnostics: r.diags, Unused: r.matcher.Unused()}
	for _, sel := range res.Unused {
		res.Diagnostics.AddWarningWithSuggestions(diagnostic.CodeUnusedSelector,
			fmt.Sprintf("selector %s matched no node", sel), r.root, "", suggest(root, sel.Target))
	}

	return res, nil
}

// suggest lists member names or paths of the graph resembling a target
// that matched nothing.
func suggest(root *schema.Node, target selector.Target) []string {
	sp, ok := target.(selector.Spelled)
	if !ok {
		return nil
	}

	text, path := sp.Spelling()

	var names []string
	root.Walk(func(n *schema.Node) bool {
		switch {
		case path && !n.IsRoot():
			names = append(names, n.Path().String())
		case !path && n.Role() == schema.RoleMember:
			names = append(names, n.Member())
		}
		return true
	})

	return match.Suggest(text, names, path, 3)
}
