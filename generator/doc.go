// Package generator provides the value generators used during population:
// the run-scoped random source, the custom generator contract and the
// built-in leaf catalog.
//
// A custom generator produces a value and, optionally, hints that tell the
// population engine what to do with it afterwards:
//
//	g := generator.WithHints(
//		generator.Value(&fixtures.Phone{CountryCode: "+1"}),
//		hints.WithAction(hints.ActionKeep),
//	)
//
// Generators that keep state between calls implement Resetter; they are
// reset at the start of every population run.
package generator
