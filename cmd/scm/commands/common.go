package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teranos/scm/config"
	"github.com/teranos/scm/engine/echo"
	"github.com/teranos/scm/engine/libcluster"
	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
	"github.com/teranos/scm/logger"
	"github.com/teranos/scm/scm"
)

// Exit codes by error class.
const (
	ExitFailure       = 1
	ExitInputShape    = 2
	ExitConfiguration = 3
	ExitEngine        = 4
)

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsInputShapeError(err):
		return ExitInputShape
	case errors.IsConfigurationError(err):
		return ExitConfiguration
	case errors.IsEngineError(err):
		return ExitEngine
	default:
		return ExitFailure
	}
}

// ReportError prints err and its hints to w. This is the one place a
// failed command is reported; the adapter only logs failures at debug.
func ReportError(w io.Writer, err error) {
	if err == nil || !logger.Enabled(logger.OutputErrors) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// InitLogging sets up the global logger from -v, --log-json and the log
// section of the configuration. Configuration errors are left for the
// command to report.
func InitLogging(cmd *cobra.Command) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("log-json")

	if cfg, err := config.Load(); err == nil {
		if cfg.Log.Verbosity > verbosity {
			verbosity = cfg.Log.Verbosity
		}
		jsonOutput = jsonOutput || cfg.Log.JSON
	}

	if err := logger.Initialize(jsonOutput, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Debugw("logger initialized", "verbosity", logger.LevelName(verbosity))
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WithHint(
			errors.Wrap(err, "invalid configuration"),
			"run 'scm config show --sources' to see where each value comes from")
	}
	return cfg, nil
}

// newEngine resolves an engine by name.
func newEngine(name string) (scm.Engine, error) {
	switch name {
	case echo.Name:
		return echo.New(), nil
	case libcluster.Name:
		if !libcluster.Available {
			return nil, errors.WithHint(
				errors.Newf("engine %q is not available in this build", name),
				"run make -C engine/libcluster/shim and rebuild with CGO_ENABLED=1 -tags libcluster, or use --engine echo")
		}
		return libcluster.New(), nil
	default:
		return nil, errors.WithHint(
			errors.Newf("unknown engine %q", name),
			"available engines: libcluster, echo")
	}
}

// inputDocument is a decoded input file. A top-level mapping may carry X
// alongside inline options; anything else is X itself.
type inputDocument struct {
	X       host.Value
	Options map[string]interface{}
}

func readInput(path string) (*inputDocument, error) {
	doc, err := host.DecodeFile(path)
	if err != nil {
		return nil, errors.MarkInputShape(err)
	}

	in := &inputDocument{}
	raw := doc
	if m, ok := doc.(map[string]interface{}); ok {
		x, found := m["X"]
		if !found {
			return nil, errors.WithHint(
				errors.NewInputShapef("%s has no X key", path),
				"write X as a top-level list, or as the X entry of a mapping")
		}
		raw = x
		if opts, ok := m["options"].(map[string]interface{}); ok {
			in.Options = opts
		}
	}

	if raw == nil {
		return in, nil
	}
	if in.X, err = host.FromDocument(raw); err != nil {
		return nil, errors.MarkInputShape(err)
	}
	return in, nil
}

// optionsDocument layers option sources, lowest precedence first: the
// configuration, inline options from the input document, an options file,
// then explicitly set flags.
func optionsDocument(cmd *cobra.Command, cfg *config.Config, inline map[string]interface{}) (map[string]interface{}, error) {
	merged := cfg.Document()["options"].(map[string]interface{})
	for k, v := range inline {
		merged[k] = v
	}

	if path, _ := cmd.Flags().GetString("options"); path != "" {
		doc, err := host.DecodeFile(path)
		if err != nil {
			return nil, errors.MarkConfiguration(err)
		}
		m, ok := doc.(map[string]interface{})
		if !ok {
			return nil, errors.NewConfigurationf("options file %s must hold a mapping", path)
		}
		for k, v := range m {
			merged[k] = v
		}
	}

	flags := cmd.Flags()
	if flags.Changed("trunc") {
		merged[scm.OptTrunc], _ = flags.GetInt("trunc")
	}
	if flags.Changed("prior") {
		merged[scm.OptPrior], _ = flags.GetFloat64("prior")
	}
	if flags.Changed("progress") {
		merged[scm.OptVerbose], _ = flags.GetBool("progress")
	}
	if flags.Changed("sparse") {
		merged[scm.OptSparse], _ = flags.GetBool("sparse")
	}
	if flags.Changed("threads") {
		merged[scm.OptThreads], _ = flags.GetInt("threads")
	}
	return merged, nil
}

func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("options", "", "Options file (JSON, YAML or TOML mapping)")
	cmd.Flags().Int("trunc", config.DefaultTrunc, "Upper bound on mixture components")
	cmd.Flags().Float64("prior", config.DefaultPrior, "Prior strength")
	cmd.Flags().Bool("progress", false, "Let the engine print progress (options.verbose)")
	cmd.Flags().Bool("sparse", false, "Use approximate, faster updates")
	cmd.Flags().Int("threads", config.DefaultThreads, "Engine worker threads (0 = engine default)")
}

// outputFormat picks the result format: --format, then the output file's
// extension, then the configured default.
func outputFormat(flag, outputPath, configured string) (string, error) {
	if flag != "" {
		return host.NormalizeFormat(flag)
	}
	if outputPath != "" && filepath.Ext(outputPath) != "" {
		return host.FormatFromPath(outputPath)
	}
	return host.NormalizeFormat(configured)
}

// writeDocument encodes doc to path, or to the command's stdout when path
// is empty.
func writeDocument(cmd *cobra.Command, doc interface{}, path, format string) error {
	if path == "" {
		return host.Encode(cmd.OutOrStdout(), doc, format)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", path)
	}
	if err := host.Encode(f, doc, format); err != nil {
		f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "failed to write %s", path)
}
