package hints

// Resolve returns hint, or fallback when no hint was given.
func Resolve(hint, fallback Action) Action {
	if hint != ActionUnset {
		return hint
	}

	return fallback
}

// Effective applies the overwrite switch to an action for a slot.
//
//	overwrite  action                  slot present  result
//	on         any                     -             action
//	off        keep, selectors_only    -             action
//	off        fill_*                  yes           capped, never overwrites
//	off        fill_*                  no            action
func Effective(action Action, overwrite bool, state SlotState) Action {
	if overwrite || state != SlotPresent {
		return action
	}

	if action == ActionFillAll {
		return ActionFillNulls
	}

	return action
}

// Decide combines a generator hint, the run default, the overwrite switch
// and the slot state. It returns the effective action and whether the
// slot is populated.
func Decide(hint, fallback Action, overwrite bool, state SlotState) (Action, bool) {
	action := Effective(Resolve(hint, fallback), overwrite, state)

	return action, action.Permits(state)
}
