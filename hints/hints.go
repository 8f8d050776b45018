package hints

// Hints accompany a generated value.
type Hints struct {
	// Action overrides the run's after-generate default for the value.
	Action Action
	// Size fixes the number of generated elements of a collection or map.
	Size *int
	// With lists extra elements added to a collection after generation.
	// For maps, elements are Entry values.
	With []any
}

// Entry is an extra map entry.
type Entry struct {
	Key   any
	Value any
}

// IsZero reports whether h carries no hint at all.
func (h Hints) IsZero() bool {
	return h.Action == ActionUnset && h.Size == nil && len(h.With) == 0
}

// WithAction returns hints carrying only an action.
func WithAction(a Action) Hints {
	return Hints{Action: a}
}

// WithSize returns hints carrying only a size.
func WithSize(n int) Hints {
	return Hints{Size: &n}
}
