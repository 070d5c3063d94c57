package logger

import "sort"

// Output controls what categories of information are shown at each verbosity level.
//
// Unlike log levels (which filter by severity), output categories control
// WHAT types of information are displayed regardless of severity.
//
//	0 (default) - results, errors with hints, final status
//	1 (-v)      - + run summaries, config source, watch events
//	2 (-vv)     - + search timing, worker split, database setup
//	3 (-vvv)    - + per-range search progress, SQL statements
//	4 (-vvvv)   - + every extension found

// OutputCategory defines a category of output that can be enabled/disabled
type OutputCategory int

const (
	// Level 0 (default) - Always shown
	OutputResults    OutputCategory = iota // Extensions and verdicts
	OutputErrors                           // Errors with hints
	OutputUserStatus                       // Final success/failure status

	// Level 1 (-v) - Informational
	OutputRunSummary  // Problem, size, answer, elapsed time
	OutputConfig      // Which config files were merged
	OutputWatchEvents // File change notifications

	// Level 2 (-vv) - Detailed
	OutputTiming  // Search duration per problem
	OutputWorkers // Worker count and range split
	OutputDBStats // Database open/migrate

	// Level 3 (-vvv) - Debug
	OutputSearchProgress // Periodic progress inside a range
	OutputSQLQueries     // Individual statements

	// Level 4 (-vvvv) - Full dump
	OutputExtensionDump // Every extension as it is found
)

// categoryLevels maps each output category to its minimum verbosity level
var categoryLevels = map[OutputCategory]int{
	OutputResults:    VerbosityUser,
	OutputErrors:     VerbosityUser,
	OutputUserStatus: VerbosityUser,

	OutputRunSummary:  VerbosityInfo,
	OutputConfig:      VerbosityInfo,
	OutputWatchEvents: VerbosityInfo,

	OutputTiming:  VerbosityDebug,
	OutputWorkers: VerbosityDebug,
	OutputDBStats: VerbosityDebug,

	OutputSearchProgress: VerbosityTrace,
	OutputSQLQueries:     VerbosityTrace,

	OutputExtensionDump: VerbosityAll,
}

// ShouldOutput returns true if the given category should be shown at the given verbosity
func ShouldOutput(verbosity int, category OutputCategory) bool {
	minLevel, ok := categoryLevels[category]
	if !ok {
		return verbosity >= VerbosityAll
	}
	return verbosity >= minLevel
}

var categoryNames = map[OutputCategory]string{
	OutputResults:        "results",
	OutputErrors:         "errors",
	OutputUserStatus:     "status",
	OutputRunSummary:     "run-summary",
	OutputConfig:         "config",
	OutputWatchEvents:    "watch-events",
	OutputTiming:         "timing",
	OutputWorkers:        "workers",
	OutputDBStats:        "db-stats",
	OutputSearchProgress: "search-progress",
	OutputSQLQueries:     "sql",
	OutputExtensionDump:  "extension-dump",
}

// CategoryName returns the human-readable name for an output category
func CategoryName(category OutputCategory) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return "unknown"
}

// EnabledCategories returns all output categories enabled at the given verbosity
func EnabledCategories(verbosity int) []OutputCategory {
	var enabled []OutputCategory
	for cat, minLevel := range categoryLevels {
		if verbosity >= minLevel {
			enabled = append(enabled, cat)
		}
	}
	return enabled
}

// EnabledCategoryNames returns the sorted names of the categories shown at
// verbosity.
func EnabledCategoryNames(verbosity int) []string {
	cats := EnabledCategories(verbosity)
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = CategoryName(c)
	}
	sort.Strings(names)
	return names
}

// VerbosityDescription returns a description of what's shown at each level
func VerbosityDescription(verbosity int) string {
	switch verbosity {
	case VerbosityUser:
		return "results and errors only"
	case VerbosityInfo:
		return "results, errors, run summaries and watch events"
	case VerbosityDebug:
		return "above + timing, worker split, database setup"
	case VerbosityTrace:
		return "above + search progress and SQL"
	case VerbosityAll:
		return "full output including every extension"
	default:
		if verbosity > VerbosityAll {
			return "maximum verbosity"
		}
		return "unknown verbosity level"
	}
}
