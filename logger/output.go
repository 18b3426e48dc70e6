package logger

// OutputCategory defines a category of output that can be enabled/disabled.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information the CLI prints regardless of severity.
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults OutputCategory = iota // Result files and summaries
	OutputErrors                        // Errors with hints

	// Level 1 (-v)
	OutputCallSummary // Groups, items, dims, truncation
	OutputTiming      // Engine wall time

	// Level 2 (-vv)
	OutputConfig // Effective options and config sources
	OutputShapes // Per-item matrix shapes

	// Level 3 (-vvv)
	OutputRedirect // Diagnostic stream acquire/release

	// Level 4 (-vvvv)
	OutputDataDump // Full matrix contents
)

var categoryLevels = map[OutputCategory]int{
	OutputResults:     VerbosityUser,
	OutputErrors:      VerbosityUser,
	OutputCallSummary: VerbosityInfo,
	OutputTiming:      VerbosityInfo,
	OutputConfig:      VerbosityDebug,
	OutputShapes:      VerbosityDebug,
	OutputRedirect:    VerbosityTrace,
	OutputDataDump:    VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		// Unknown category, default to highest verbosity required
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:     "results",
	OutputErrors:      "errors",
	OutputCallSummary: "call-summary",
	OutputTiming:      "timing",
	OutputConfig:      "config",
	OutputShapes:      "shapes",
	OutputRedirect:    "redirect",
	OutputDataDump:    "data-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}
