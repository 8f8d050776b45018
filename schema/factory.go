package schema

import (
	"fmt"
	"go/types"
	"log/slog"
	"reflect"

	"object-synth/typedesc"
)

// DefaultMaxDepth limits how deep the Factory expands a graph.
const DefaultMaxDepth = 8

// Factory builds schema graphs. A Factory is safe for concurrent use.
type Factory struct {
	resolver   *Resolver
	classifier *typedesc.Classifier
	bridge     *typedesc.Bridge
	maxDepth   int
	logger     *slog.Logger
}

// Option configures a Factory.
type Option func(*Factory)

// WithMaxDepth sets the depth at which structural nodes stop expanding.
// Values <= 0 disable the limit; cycle detection still terminates.
func WithMaxDepth(n int) Option {
	return func(f *Factory) {
		f.maxDepth = n
	}
}

// WithClassifier replaces the default leaf registry.
func WithClassifier(c *typedesc.Classifier) Option {
	return func(f *Factory) {
		f.classifier = c
	}
}

// WithContext shares an instantiation context, typically the analyze
// loader's, so that equal instantiations are pointer-identical.
func WithContext(ctxt *types.Context) Option {
	return func(f *Factory) {
		f.resolver = NewResolver(ctxt)
	}
}

// WithBridge sets the reflect bridge used by BuildReflect.
func WithBridge(b *typedesc.Bridge) Option {
	return func(f *Factory) {
		f.bridge = b
	}
}

// WithLogger sets the logger for graph construction events.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		f.logger = l
	}
}

// NewFactory creates a Factory.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		resolver:   NewResolver(nil),
		classifier: typedesc.DefaultClassifier,
		bridge:     typedesc.NewBridge(),
		maxDepth:   DefaultMaxDepth,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// MaxDepth returns the configured depth limit.
func (f *Factory) MaxDepth() int {
	return f.maxDepth
}

// Build creates the graph rooted at root. When args are given, root must
// be a generic declaration and args bind its slots in order.
func (f *Factory) Build(root types.Type, args ...types.Type) (*Node, error) {
	if root == nil {
		return nil, &SchemaResolutionError{Path: "<nil>", Type: "<nil>", Err: ErrNilType}
	}

	root = types.Unalias(root)

	if len(args) > 0 {
		inst, err := f.instantiate(root, args)
		if err != nil {
			return nil, err
		}
		root = inst
	}

	b := &builder{f: f, rootName: displayName(root)}

	return b.build(root, nil, nil, EmptyBinding(), RoleRoot, RootPath(), member{index: -1})
}

// BuildReflect creates the graph for a runtime type.
func (f *Factory) BuildReflect(rt reflect.Type) (*Node, error) {
	if rt == nil {
		return nil, &SchemaResolutionError{Path: "<nil>", Type: "<nil>", Err: ErrNilType}
	}

	return f.Build(f.bridge.FromReflect(rt))
}

func (f *Factory) instantiate(root types.Type, args []types.Type) (types.Type, error) {
	fail := func(err error) error {
		return &SchemaResolutionError{Path: displayName(root), Type: typedesc.Key(root), Err: err}
	}

	if !typedesc.IsGenericOrigin(root) {
		return nil, fail(ErrNotGeneric)
	}

	if params := typedesc.TypeParameters(root); len(params) != len(args) {
		return nil, fail(fmt.Errorf("%w: want %d, got %d", ErrArity, len(params), len(args)))
	}

	inst, err := types.Instantiate(f.resolver.ctxt, root, args, true)
	if err != nil {
		return nil, fail(err)
	}

	return inst, nil
}

type member struct {
	name     string
	index    int
	tag      reflect.StructTag
	embedded bool
}

type visit struct {
	base types.Type
	sig  string
}

// builder holds the state of one Build call: the ancestor stack used for
// cycle detection.
type builder struct {
	f        *Factory
	rootName string
	stack    []visit
}

func (b *builder) visits(v visit) int {
	n := 0
	for _, s := range b.stack {
		if s.sig == v.sig && types.Identical(s.base, v.base) {
			n++
		}
	}

	return n
}

func (b *builder) build(
	declared types.Type,
	owner *types.Named,
	parent *Node,
	enclosing *Binding,
	role Role,
	path TypePath,
	m member,
) (*Node, error) {
	effective, binding, err := b.f.resolver.Resolve(declared, owner, enclosing)
	if err != nil {
		return nil, &SchemaResolutionError{Path: path.Qualified(b.rootName), Type: typedesc.Key(declared), Err: err}
	}

	n := &Node{
		kind:     b.f.classifier.Classify(effective),
		role:     role,
		declared: declared,
		typ:      effective,
		owner:    owner,
		member:   m.name,
		index:    m.index,
		tag:      m.tag,
		embedded: m.embedded,
		binding:  binding,
		parent:   parent,
		path:     path,
		rootName: b.rootName,
	}
	if parent != nil {
		n.depth = parent.depth + 1
	}

	if !n.kind.IsStructural() {
		return n, nil
	}

	v := visit{base: typedesc.Deref(effective), sig: binding.Signature()}
	switch hits := b.visits(v); {
	case hits > 1:
		return nil, &CycleDepthExceededError{Path: n.String(), Type: n.Key(), Visits: hits}
	case hits == 1:
		n.cyclic = true
		b.f.logger.Debug("cyclic node", "path", n.String(), "type", n.Key())
		return n, nil
	}

	if b.f.maxDepth > 0 && n.depth >= b.f.maxDepth {
		n.truncated = true
		b.f.logger.Debug("depth limit reached", "path", n.String(), "max_depth", b.f.maxDepth)
		return n, nil
	}

	b.stack = append(b.stack, v)
	defer func() { b.stack = b.stack[:len(b.stack)-1] }()

	if err := b.expand(n); err != nil {
		return nil, err
	}

	return n, nil
}

// source returns the structural type whose components the children are
// declared with, and the owner those declarations belong to. Named types
// use their origin's declaration so that slots resolve through bindings.
func (b *builder) source(n *Node) (types.Type, *types.Named) {
	decl := typedesc.Deref(n.declared)
	if _, ok := decl.(*types.TypeParam); ok {
		decl = n.Base()
	}

	if named, ok := decl.(*types.Named); ok {
		origin := named.Origin()
		return origin.Underlying(), origin
	}

	return decl.Underlying(), n.owner
}

func (b *builder) expand(n *Node) error {
	src, owner := b.source(n)

	add := func(declared types.Type, role Role, path TypePath, m member) error {
		child, err := b.build(declared, owner, n, n.binding, role, path, m)
		if err != nil {
			return err
		}
		n.children = append(n.children, child)
		return nil
	}

	switch u := src.(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			field := u.Field(i)
			if !field.Exported() {
				continue
			}

			m := member{
				name:     field.Name(),
				index:    i,
				tag:      reflect.StructTag(u.Tag(i)),
				embedded: field.Embedded(),
			}
			if err := add(field.Type(), RoleMember, n.path.Field(field.Name()), m); err != nil {
				return err
			}
		}

	case *types.Slice:
		return add(u.Elem(), RoleElement, n.path.Element(), member{index: -1})

	case *types.Array:
		return add(u.Elem(), RoleElement, n.path.Element(), member{index: -1})

	case *types.Map:
		if err := add(u.Key(), RoleKey, n.path.Key(), member{index: -1}); err != nil {
			return err
		}
		return add(u.Elem(), RoleValue, n.path.Value(), member{index: -1})
	}

	return nil
}
