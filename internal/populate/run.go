package populate

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"object-synth/generator"
	"object-synth/hints"
	"object-synth/internal/diagnostic"
	"object-synth/schema"
	"object-synth/selector"
	"object-synth/settings"
	"object-synth/typedesc"
)

// run is the state of one population run.
type run struct {
	e       *Engine
	rnd     *generator.Random
	matcher *selector.Matcher
	diags   diagnostic.Diagnostics
	root    string
	noted   map[string]struct{}
}

// populate processes one slot. parent is the action of the value the slot
// belongs to; the overwrite switch caps it for this slot only.
func (r *run) populate(n *schema.Node, slot reflect.Value, parent hints.Action) error {
	ov, overridden := r.matcher.Override(n)
	if overridden && ov.Ignore() {
		return nil
	}

	state := hints.StateOf(slot)
	_, fill := hints.Decide(hints.ActionUnset, parent, r.e.settings.OverwriteExistingValues, state)
	gen, custom := r.matcher.Generator(n)

	switch {
	case overridden && !(fill && custom):
		return r.override(n, slot, ov)
	case !fill:
		return r.descend(n, slot, parent)
	case !custom:
		return r.create(n, slot, hints.Hints{})
	}

	value, h, err := generator.Invoke(gen, r.rnd, n.String())
	if err != nil {
		return err
	}

	keep := h.Action == hints.ActionKeep
	if overridden && (value == nil || !keep) {
		return r.override(n, slot, ov)
	}

	if value == nil {
		return r.create(n, slot, h)
	}

	if err := r.assign(n, slot, value); err != nil {
		return err
	}

	if overridden {
		r.conflict(n, ov, value)
	}

	if err := r.descend(n, slot, hints.Resolve(h.Action, r.e.settings.AfterGenerate)); err != nil {
		return err
	}

	return r.extend(n, slot, h)
}

// descend visits the children of an existing value.
func (r *run) descend(n *schema.Node, slot reflect.Value, action hints.Action) error {
	if !n.Kind().IsStructural() || len(n.Children()) == 0 {
		return nil
	}

	base, ok := deref(slot)
	if !ok {
		return nil
	}

	if err := r.checkShape(n, base); err != nil {
		return err
	}

	switch n.Kind() {
	case typedesc.KindObject:
		for _, c := range n.Children() {
			if err := r.populate(c, base.Field(c.FieldIndex()), action); err != nil {
				return err
			}
		}

	case typedesc.KindCollection, typedesc.KindArray:
		elem := n.Element()
		for i := range base.Len() {
			if err := r.populate(elem, base.Index(i), action); err != nil {
				return err
			}
		}

	case typedesc.KindMap:
		key, value := n.MapKey(), n.MapValue()
		for _, k := range sortedKeys(base) {
			v := reflect.New(base.Type().Elem()).Elem()
			v.Set(base.MapIndex(k))
			if err := r.populate(value, v, action); err != nil {
				return err
			}

			nk := reflect.New(base.Type().Key()).Elem()
			nk.Set(k)
			if err := r.populate(key, nk, action); err != nil {
				return err
			}

			// a rewritten key moves its entry unless it collides
			if !nk.Equal(k) && !base.MapIndex(nk).IsValid() {
				base.SetMapIndex(k, reflect.Value{})
				k = nk
			}
			base.SetMapIndex(k, v)
		}
	}

	return nil
}

// create builds a new value for the slot and fills it completely.
func (r *run) create(n *schema.Node, slot reflect.Value, h hints.Hints) error {
	if n.Cyclic() || n.Truncated() {
		r.unexpanded(n)
		return nil
	}

	if n.Kind() == typedesc.KindLeaf {
		return r.leaf(n, slot)
	}

	base := alloc(slot)
	if err := r.checkShape(n, base); err != nil {
		return err
	}

	switch n.Kind() {
	case typedesc.KindObject:
		return r.descend(n, slot, hints.ActionFillAll)

	case typedesc.KindCollection:
		size := r.size(h, r.e.settings.CollectionSize)
		if !r.expandable(n.Element()) {
			size = 0
		}

		base.Set(reflect.MakeSlice(base.Type(), size, size))
		if err := r.descend(n, slot, hints.ActionFillAll); err != nil {
			return err
		}

	case typedesc.KindArray:
		if r.expandable(n.Element()) {
			if err := r.descend(n, slot, hints.ActionFillAll); err != nil {
				return err
			}
		}

	case typedesc.KindMap:
		if err := r.entries(n, base, r.size(h, r.e.settings.MapSize)); err != nil {
			return err
		}
	}

	return r.extend(n, slot, h)
}

// entries fills an empty map with up to size generated entries.
func (r *run) entries(n *schema.Node, base reflect.Value, size int) error {
	key, value := n.MapKey(), n.MapValue()
	if !r.expandable(key) || !r.expandable(value) {
		size = 0
	}

	m := reflect.MakeMapWithSize(base.Type(), size)
	for attempt := 0; m.Len() < size && attempt < size*maxKeyAttempts; attempt++ {
		k := reflect.New(base.Type().Key()).Elem()
		if err := r.populate(key, k, hints.ActionFillAll); err != nil {
			return err
		}

		if m.MapIndex(k).IsValid() {
			continue
		}

		v := reflect.New(base.Type().Elem()).Elem()
		if err := r.populate(value, v, hints.ActionFillAll); err != nil {
			return err
		}

		m.SetMapIndex(k, v)
	}

	base.Set(m)

	return nil
}

// leaf generates a leaf value from the catalog. Leaves the catalog cannot
// generate (interfaces, funcs, channels, unknown leaf types) stay absent.
func (r *run) leaf(n *schema.Node, slot reflect.Value) error {
	_, bt := ptrDepthAndBase(slot.Type())

	v, ok, err := r.e.catalog.Generate(bt, r.rnd)
	if err != nil {
		return &generator.InvocationError{Path: n.String(), Err: err}
	}

	if !ok {
		r.note(n, diagnostic.CodeNoGenerator, "no generator for "+n.Key()+", left unpopulated")
		return nil
	}

	alloc(slot).Set(v)

	return nil
}

// extend adds the extra elements of a hint to a collection, map or array.
func (r *run) extend(n *schema.Node, slot reflect.Value, h hints.Hints) error {
	if len(h.With) == 0 {
		return nil
	}

	base, ok := deref(slot)
	if !ok {
		return nil
	}

	switch base.Kind() {
	case reflect.Slice:
		for _, x := range h.With {
			v, err := r.place(n, base.Type().Elem(), x)
			if err != nil {
				return err
			}
			base.Set(reflect.Append(base, v))
		}

	case reflect.Array:
		i := 0
		for _, x := range h.With {
			for i < base.Len() && hints.StateOf(base.Index(i)) == hints.SlotPresent {
				i++
			}
			if i == base.Len() {
				break
			}

			v, err := r.place(n, base.Type().Elem(), x)
			if err != nil {
				return err
			}
			base.Index(i).Set(v)
			i++
		}

	case reflect.Map:
		if base.IsNil() {
			base.Set(reflect.MakeMap(base.Type()))
		}

		for _, x := range h.With {
			entry, ok := x.(hints.Entry)
			if !ok {
				return &ShapeError{Path: n.String(), Want: "hints.Entry", Got: fmt.Sprintf("%T", x)}
			}

			k, err := r.place(n, base.Type().Key(), entry.Key)
			if err != nil {
				return err
			}

			v, err := r.place(n, base.Type().Elem(), entry.Value)
			if err != nil {
				return err
			}

			base.SetMapIndex(k, v)
		}

	default:
		return &ShapeError{Path: n.String(), Want: "collection for extra elements", Got: base.Type().String()}
	}

	return nil
}

// override applies a Set or SetFunc selector to the slot.
func (r *run) override(n *schema.Node, slot reflect.Value, ov selector.Override) error {
	value, _, err := generator.Invoke(generator.Func(ov.Value), r.rnd, n.String())
	if err != nil {
		return err
	}

	return r.assign(n, slot, value)
}

func (r *run) assign(n *schema.Node, slot reflect.Value, value any) error {
	v, err := r.place(n, slot.Type(), value)
	if err != nil {
		return err
	}

	slot.Set(v)

	return nil
}

func (r *run) place(n *schema.Node, t reflect.Type, value any) (reflect.Value, error) {
	v, ok := convert(t, value)
	if !ok {
		return reflect.Value{}, &ShapeError{Path: n.String(), Want: t.String(), Got: fmt.Sprintf("%T", value)}
	}

	return v, nil
}

func (r *run) checkShape(n *schema.Node, base reflect.Value) error {
	if want, ok := shapes[n.Kind()]; ok && base.Kind() != want {
		return &ShapeError{Path: n.String(), Want: want.String(), Got: base.Type().String()}
	}

	return nil
}

func (r *run) size(h hints.Hints, bounds settings.Range[int]) int {
	if h.Size != nil {
		return max(*h.Size, 0)
	}

	return int(r.rnd.IntRange(int64(bounds.Min), int64(bounds.Max)))
}

// expandable reports whether values can be created for a child node.
func (r *run) expandable(n *schema.Node) bool {
	if n == nil {
		return false
	}

	if n.Cyclic() || n.Truncated() {
		r.unexpanded(n)
		return false
	}

	return true
}

func (r *run) unexpanded(n *schema.Node) {
	if n.Cyclic() {
		r.note(n, diagnostic.CodeCyclicNode, "cyclic reference left unpopulated")
		return
	}

	r.note(n, diagnostic.CodeDepthLimit, "depth limit reached, left unpopulated")
}

// conflict reports a selector that was not applied because the value it
// targets is a generated origin hinted keep.
func (r *run) conflict(n *schema.Node, ov selector.Override, value any) {
	msg := fmt.Sprintf("selector %s not applied: generated value is kept as is", ov.Selector)
	r.diags.AddWarningValue(diagnostic.CodePolicyConflict, msg, r.root, n.Path().String(), value)

	level := slog.LevelDebug
	if r.e.settings.Strict() {
		level = slog.LevelWarn
	}

	r.e.logger.Log(context.Background(), level, "policy conflict", "path", n.String(), "selector", ov.Selector.String())
}

// note records an info diagnostic once per code and node.
func (r *run) note(n *schema.Node, code, msg string) {
	key := code + "\x00" + n.String()
	if _, ok := r.noted[key]; ok {
		return
	}
	r.noted[key] = struct{}{}

	r.diags.AddInfo(code, msg, r.root, n.Path().String())
	r.e.logger.Debug(msg, "path", n.String(), "code", code)
}
