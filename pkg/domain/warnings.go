package domain

// WarningCause identifies a distinct class of format-spec finding.
// Warn-once deduplication keys on this value.
type WarningCause string

const (
	// WarnNewlineInFormat fires when a format spec contains a line break
	// (raw or as the two-character escape "\n"). The engine substitutes a
	// space and proceeds.
	WarnNewlineInFormat WarningCause = "newline_in_format"

	// WarnPlusFlagInFormat fires when the percent-directive carries a "+"
	// flag. The spec is applied as given, but the explicit sign collides
	// with the engine's own "+" prefix on relative labels.
	WarnPlusFlagInFormat WarningCause = "plus_flag_in_format"
)

// Warning is an advisory, non-fatal finding about a format spec.
type Warning struct {
	Cause  WarningCause
	Detail string
}
