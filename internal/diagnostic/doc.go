// Package diagnostic provides structured warnings, errors and notes
// collected during a population run.
//
// Key capabilities:
//   - Policy conflict warnings (a selector overriding inside a kept value)
//   - Unused selector reports
//   - Notes about slots left unpopulated (cycles, depth limit, no generator)
package diagnostic
