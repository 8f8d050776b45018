package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// Diagnostic codes.
const (
	CodePolicyConflict = "policy_conflict"
	CodeUnusedSelector = "unused_selector"
	CodeCyclicNode     = "cyclic_node"
	CodeDepthLimit     = "depth_limit"
	CodeNoGenerator    = "no_generator"
)

// Diagnostics holds all diagnostic information from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// RootType identifies the type being populated (if any).
	RootType string
	// FieldPath identifies which slot this relates to (if any).
	FieldPath string
	// Value is a rendering of the value involved (if any).
	Value string
	// Suggestions are possible fixes.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return "unknown"
	}
}

var dumper = spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                3,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Render formats a value for the Value field of a diagnostic.
func Render(v any) string {
	return strings.Join(strings.Fields(dumper.Sdump(v)), " ")
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, rootType, fieldPath string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:  DiagnosticError,
		Code:      code,
		Message:   message,
		RootType:  rootType,
		FieldPath: fieldPath,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, rootType, fieldPath string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:  DiagnosticWarning,
		Code:      code,
		Message:   message,
		RootType:  rootType,
		FieldPath: fieldPath,
	})
}

// AddWarningValue adds a warning diagnostic that renders the value involved.
func (d *Diagnostics) AddWarningValue(code, message, rootType, fieldPath string, value any) {
	d.AddWarning(code, message, rootType, fieldPath)
	d.Warnings[len(d.Warnings)-1].Value = Render(value)
}

// AddWarningWithSuggestions adds a warning diagnostic with possible fixes.
func (d *Diagnostics) AddWarningWithSuggestions(code, message, rootType, fieldPath string, suggestions []string) {
	d.AddWarning(code, message, rootType, fieldPath)
	d.Warnings[len(d.Warnings)-1].Suggestions = suggestions
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, rootType, fieldPath string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity:  DiagnosticInfo,
		Code:      code,
		Message:   message,
		RootType:  rootType,
		FieldPath: fieldPath,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Find returns every diagnostic with the given code, in severity order
// (errors first).
func (d *Diagnostics) Find(code string) []Diagnostic {
	var out []Diagnostic
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.RootType != "" {
		prefix = append(prefix, "["+d.RootType+"]")
	}

	if d.FieldPath != "" {
		prefix = append(prefix, d.FieldPath)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if d.Value != "" {
		msg += " (value: " + d.Value + ")"
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
