// Package hints decides what population may do with a slot that a value
// was generated for.
//
// The decision is a pure function of four inputs: the hint returned by a
// custom generator, the run's default action, the overwrite switch and the
// state of the slot. See Decide.
package hints

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Action is the after-generation action of a value.
type Action int

const (
	// ActionUnset means no hint was given; the run's default applies.
	ActionUnset Action = iota
	// ActionKeep keeps the value as generated. Children are not populated.
	ActionKeep
	// ActionSelectorsOnly keeps the value but lets selectors modify its children.
	ActionSelectorsOnly
	// ActionFillNulls populates absent slots only.
	ActionFillNulls
	// ActionFillNullsAndDefaultPrimitives populates absent slots and
	// numeric or boolean zero values.
	ActionFillNullsAndDefaultPrimitives
	// ActionFillAll populates every slot, overwriting existing values.
	ActionFillAll
)

var actionNames = map[Action]string{
	ActionUnset:                         "unset",
	ActionKeep:                          "keep",
	ActionSelectorsOnly:                 "selectors_only",
	ActionFillNulls:                     "fill_nulls",
	ActionFillNullsAndDefaultPrimitives: "fill_nulls_and_default_primitives",
	ActionFillAll:                       "fill_all",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}

	return fmt.Sprintf("Action(%d)", int(a))
}

// ParseAction parses an action name. Matching is case-insensitive and
// accepts dashes in place of underscores ("FILL_NULLS", "fill-nulls").
func ParseAction(s string) (Action, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for a, name := range actionNames {
		if name == norm {
			return a, nil
		}
	}

	return ActionUnset, fmt.Errorf("unknown after-generate action %q", s)
}

// UnmarshalYAML implements custom YAML unmarshaling for Action.
func (a *Action) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseAction(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*a = parsed

	return nil
}

// MarshalYAML implements custom YAML marshaling for Action.
func (a Action) MarshalYAML() (any, error) {
	return a.String(), nil
}

// IsFill reports whether the action may populate slots.
func (a Action) IsFill() bool {
	return a == ActionFillNulls || a == ActionFillNullsAndDefaultPrimitives || a == ActionFillAll
}

// Permits reports whether a slot in the given state is populated.
func (a Action) Permits(state SlotState) bool {
	switch a {
	case ActionFillAll:
		return true
	case ActionFillNullsAndDefaultPrimitives:
		return state != SlotPresent
	case ActionFillNulls:
		return state == SlotAbsent
	default:
		return false
	}
}

// Recurses reports whether the children of a kept structural value are
// populated under this action. Selectors descend regardless.
func (a Action) Recurses() bool {
	return a.IsFill()
}
