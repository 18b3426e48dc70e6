package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/teranos/scm/errors"
)

var (
	// Logger is the process-wide logger. It discards everything until
	// Initialize is called, so library callers get silence rather than a
	// nil pointer.
	Logger = zap.NewNop().Sugar()

	// JSONOutput reports whether the logger encodes JSON.
	JSONOutput bool

	// Verbosity is the -v count the logger was initialized with.
	Verbosity int
)

// Initialize sets up the global logger on stderr. stdout belongs to
// results and to engine text forwarded by the diag package.
func Initialize(jsonOutput bool, verbosity int) error {
	return InitializeTo(zapcore.Lock(os.Stderr), jsonOutput, verbosity)
}

// InitializeTo sets up the global logger writing to w.
func InitializeTo(w zapcore.WriteSyncer, jsonOutput bool, verbosity int) error {
	if verbosity < 0 {
		return errors.Newf("verbosity must be >= 0, got %d", verbosity)
	}

	var enc zapcore.Encoder
	if jsonOutput {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = newMinimalEncoder()
	}

	core := zapcore.NewCore(enc, w, VerbosityToLevel(verbosity))
	Logger = zap.New(core, zap.ErrorOutput(w)).Sugar()
	JSONOutput = jsonOutput
	Verbosity = verbosity
	return nil
}

// Enabled reports whether an output category is shown at the current
// verbosity.
func Enabled(category OutputCategory) bool {
	return ShouldOutput(Verbosity, category)
}

// Cleanup flushes any buffered log entries
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Infow logs an info message with structured fields
func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

// Warnw logs a warning message with structured fields
func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

// Errorw logs an error message with structured fields
func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

// Debugw logs a debug message with structured fields
func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
