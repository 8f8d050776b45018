// Package selector matches schema nodes and attaches overrides to them.
//
// A selector pairs a Target with an action:
//
//	selector.Set(selector.MustFieldPath("Address.CountryCode"), "+9")
//	selector.Supply(selector.TypeOf[fixtures.Phone](), phoneGenerator)
//	selector.Ignore(selector.Field("secret_notes"))
//
// Set, SetFunc and Ignore are overrides: they have the final say over a
// slot's value. Supply registers a custom generator whose hints take part
// in the after-generate decision. Among selectors of the same group that
// match one node, the last registered wins.
package selector
