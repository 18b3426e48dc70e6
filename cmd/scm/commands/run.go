package commands

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
	"github.com/teranos/scm/logger"
	"github.com/teranos/scm/scm"
)

// RunCmd runs one cluster call
var RunCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster an input document",
		Long: `Run one cluster call on an input document and write the six outputs
(qY, qZ, weights, classes, means, covariances) as a document.

The input is either X itself or a mapping with an X entry and an optional
options entry. Option values are layered, later wins:
  1. Configuration (scm config show --sources)
  2. The input document's options entry
  3. --options file
  4. --trunc, --prior, --progress, --sparse, --threads

Engine progress text goes to stdout while the engine runs; the result
document follows once the call completes (or goes to --output). A summary
table is printed on stderr.

Examples:
  scm run -i data.json
  scm run -i data.yaml --options opts.toml -o result.yaml
  scm run -i data.json --engine echo --trunc 5 --format toml`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}

	cmd.Flags().StringP("input", "i", "", "Input document (JSON, YAML or TOML)")
	_ = cmd.MarkFlagRequired("input")
	addOptionFlags(cmd)
	cmd.Flags().String("engine", "", "Clustering engine: libcluster or echo (default from config)")
	cmd.Flags().StringP("output", "o", "", "Write results to this file instead of stdout")
	cmd.Flags().String("format", "", "Result format: json, yaml or toml")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print the summary table")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	inputPath, _ := cmd.Flags().GetString("input")
	in, err := readInput(inputPath)
	if err != nil {
		return err
	}

	optsDoc, err := optionsDocument(cmd, cfg, in.Options)
	if err != nil {
		return err
	}
	opts, err := host.FromDocument(optsDoc)
	if err != nil {
		return errors.MarkConfiguration(err)
	}

	engineName := cfg.Engine.Name
	if cmd.Flags().Changed("engine") {
		engineName, _ = cmd.Flags().GetString("engine")
	}
	engine, err := newEngine(engineName)
	if err != nil {
		return err
	}

	outputPath, _ := cmd.Flags().GetString("output")
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := outputFormat(formatFlag, outputPath, cfg.Output.Format)
	if err != nil {
		return err
	}

	adapter, err := scm.NewAdapter(engine, scm.WithConsole(cmd.OutOrStdout()))
	if err != nil {
		return err
	}

	if err := reportCallInputs(cmd, in, optsDoc); err != nil {
		return err
	}

	logger.Debugw("starting cluster call", logger.FieldFile, inputPath, logger.FieldEngine, engineName)
	start := time.Now()
	out, err := adapter.Cluster(cmd.Context(), in.X, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := writeDocument(cmd, resultsDocument(out), outputPath, format); err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet || !logger.Enabled(logger.OutputResults) {
		return nil
	}
	return renderTable(cmd.ErrOrStderr(), runSummary(out, engineName, outputPath, elapsed))
}

// reportCallInputs prints what the call is about to receive, as far as the
// verbosity allows: effective options at -vv, per-item shapes at -vv and
// the raw X document at -vvvv. Everything goes to stderr.
func reportCallInputs(cmd *cobra.Command, in *inputDocument, optsDoc map[string]interface{}) error {
	w := cmd.ErrOrStderr()

	if logger.Enabled(logger.OutputConfig) {
		keys := make([]string, 0, len(optsDoc))
		for k := range optsDoc {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := [][]string{{"Option", "Value"}}
		for _, k := range keys {
			rows = append(rows, []string{k, fmt.Sprint(optsDoc[k])})
		}
		if err := renderTable(w, rows); err != nil {
			return err
		}
	}

	if logger.Enabled(logger.OutputShapes) {
		// Shape errors are left for the cluster call to report.
		if x, err := scm.MarshalInput(in.X); err == nil {
			if err := renderTable(w, shapeRows(shapeOf(x))); err != nil {
				return err
			}
		}
	}

	if logger.Enabled(logger.OutputDataDump) {
		fmt.Fprintln(w, "# X")
		if err := host.Encode(w, host.ToDocument(in.X), host.FormatYAML); err != nil {
			return err
		}
	}
	return nil
}

// resultsDocument keys each output by its conventional name.
func resultsDocument(out *scm.Output) map[string]interface{} {
	doc := make(map[string]interface{}, len(scm.OutputNames))
	for i, v := range out.Values() {
		doc[scm.OutputNames[i]] = host.ToDocument(v)
	}
	return doc
}

func runSummary(out *scm.Output, engine, outputPath string, elapsed time.Duration) [][]string {
	qZ := out.QZ.(host.Cell)
	observations := 0
	for j := 0; j < qZ.Len(); j++ {
		items := qZ.Index(j).(host.Cell)
		for i := 0; i < items.Len(); i++ {
			rows, _ := items.Index(i).(host.Matrix).Dims()
			observations += rows
		}
	}

	dims := 0
	if means := out.Means.(host.Cell); means.Len() > 0 {
		_, dims = means.Index(0).(host.Matrix).Dims()
	}

	if outputPath == "" {
		outputPath = "stdout"
	}

	return [][]string{
		{"Result", "Value"},
		{"Engine", engine},
		{"Groups (J)", fmt.Sprint(out.QY.(host.Cell).Len())},
		{"Observations", fmt.Sprint(observations)},
		{"Dimensions (D)", fmt.Sprint(dims)},
		{"Classes (T)", fmt.Sprint(out.Classes.(host.Cell).Len())},
		{"Clusters (K)", fmt.Sprint(out.Means.(host.Cell).Len())},
		{"Duration", elapsed.Round(time.Millisecond).String()},
		{"Output", outputPath},
	}
}
