// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldInput = "input"
	FieldBytes = "bytes"

	// Parse fields.
	FieldObjects = "objects"
	FieldKind    = "kind"
	FieldName    = "name"
	FieldLine    = "line"
	FieldColumn  = "column"
	FieldOffset  = "offset"

	// Ruleset fields.
	FieldRules  = "rules"
	FieldPreset = "preset"

	// Search fields.
	FieldMatches = "matches"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
