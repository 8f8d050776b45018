package hints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	allActions = []Action{
		ActionKeep,
		ActionSelectorsOnly,
		ActionFillNulls,
		ActionFillNullsAndDefaultPrimitives,
		ActionFillAll,
	}
	allStates = []SlotState{SlotAbsent, SlotDefaultPrimitive, SlotPresent}
)

func TestResolve(t *testing.T) {
	assert.Equal(t, ActionKeep, Resolve(ActionKeep, ActionFillAll))
	assert.Equal(t, ActionFillAll, Resolve(ActionUnset, ActionFillAll))
}

func TestPermits(t *testing.T) {
	tests := []struct {
		action Action
		want   [3]bool // absent, default primitive, present
	}{
		{action: ActionUnset, want: [3]bool{false, false, false}},
		{action: ActionKeep, want: [3]bool{false, false, false}},
		{action: ActionSelectorsOnly, want: [3]bool{false, false, false}},
		{action: ActionFillNulls, want: [3]bool{true, false, false}},
		{action: ActionFillNullsAndDefaultPrimitives, want: [3]bool{true, true, false}},
		{action: ActionFillAll, want: [3]bool{true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			for i, state := range allStates {
				assert.Equal(t, tt.want[i], tt.action.Permits(state), state.String())
			}
		})
	}
}

func TestEffective(t *testing.T) {
	tests := []struct {
		name      string
		action    Action
		overwrite bool
		state     SlotState
		want      Action
	}{
		{name: "enabled keeps action verbatim", action: ActionFillAll, overwrite: true, state: SlotPresent, want: ActionFillAll},
		{name: "enabled keep", action: ActionKeep, overwrite: true, state: SlotAbsent, want: ActionKeep},
		{name: "disabled keep unchanged", action: ActionKeep, overwrite: false, state: SlotPresent, want: ActionKeep},
		{name: "disabled selectors only unchanged", action: ActionSelectorsOnly, overwrite: false, state: SlotPresent, want: ActionSelectorsOnly},
		{name: "disabled fill all capped", action: ActionFillAll, overwrite: false, state: SlotPresent, want: ActionFillNulls},
		{name: "disabled fill nulls unchanged", action: ActionFillNulls, overwrite: false, state: SlotPresent, want: ActionFillNulls},
		{
			name:      "disabled default primitives unchanged",
			action:    ActionFillNullsAndDefaultPrimitives,
			overwrite: false,
			state:     SlotPresent,
			want:      ActionFillNullsAndDefaultPrimitives,
		},
		{name: "disabled fill all absent", action: ActionFillAll, overwrite: false, state: SlotAbsent, want: ActionFillAll},
		{name: "disabled fill all default", action: ActionFillAll, overwrite: false, state: SlotDefaultPrimitive, want: ActionFillAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Effective(tt.action, tt.overwrite, tt.state))
		})
	}
}

func TestDecide_CustomValueScenario(t *testing.T) {
	// overwrite disabled, FILL_ALL, slot holds a non-default value
	action, fill := Decide(ActionUnset, ActionFillAll, false, SlotPresent)

	assert.Equal(t, ActionFillNulls, action)
	assert.False(t, fill)
}

func TestDecide_HintBeatsDefault(t *testing.T) {
	action, fill := Decide(ActionKeep, ActionFillAll, true, SlotAbsent)

	assert.Equal(t, ActionKeep, action)
	assert.False(t, fill)
}

func TestDecide_NeverOverwritesWhenDisabled(t *testing.T) {
	for _, a := range allActions {
		_, fill := Decide(a, ActionUnset, false, SlotPresent)
		assert.False(t, fill, a.String())
	}
}

func TestDecide_OverwriteMonotonicity(t *testing.T) {
	for _, a := range allActions {
		for _, s := range allStates {
			_, enabled := Decide(ActionUnset, a, true, s)
			_, disabled := Decide(ActionUnset, a, false, s)

			if s != SlotPresent {
				assert.Equal(t, enabled, disabled, "%s/%s: disabling overwrite must not leave a non-present slot unfilled", a, s)
			}
			if disabled {
				assert.True(t, enabled, "%s/%s: disabling overwrite must not escalate", a, s)
			}
		}
	}
}

func TestRecurses(t *testing.T) {
	assert.False(t, ActionKeep.Recurses())
	assert.False(t, ActionSelectorsOnly.Recurses())
	assert.True(t, ActionFillNulls.Recurses())
	assert.True(t, ActionFillAll.Recurses())
}
