package logger

import (
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Verbosity levels are -v counts. Each step lowers the log level and adds
// output categories (see output.go).
const (
	VerbosityUser  = 0
	VerbosityInfo  = 1
	VerbosityDebug = 2
	VerbosityTrace = 3
	VerbosityAll   = 4
)

// VerbosityToLevel maps a -v count to a zap level: warn by default, info
// at -v, debug from -vv on.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName describes a verbosity level by its flag and the categories it
// adds, e.g. "-vv (config, shapes)". Counts past VerbosityAll describe
// VerbosityAll.
func LevelName(verbosity int) string {
	if verbosity < VerbosityUser {
		return "unknown"
	}
	if verbosity > VerbosityAll {
		verbosity = VerbosityAll
	}

	flag := "default"
	if verbosity > VerbosityUser {
		flag = "-" + strings.Repeat("v", verbosity)
	}

	var added []string
	for category, level := range categoryLevels {
		if level == verbosity {
			added = append(added, CategoryName(category))
		}
	}
	sort.Strings(added)
	return flag + " (" + strings.Join(added, ", ") + ")"
}
