package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
	"github.com/teranos/scm/logger"
	"github.com/teranos/scm/scm"
)

// OptionsCmd prints the effective cluster options
var OptionsCmd = newOptionsCmd()

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the effective cluster options",
		Long: `Layer configuration, --options file and flags exactly as run does, validate
the result, and print the options the engine would receive.`,
		Args: cobra.NoArgs,
		RunE: runOptions,
	}
	addOptionFlags(cmd)
	cmd.Flags().String("format", "", "Output format: json, yaml or toml")
	return cmd
}

func runOptions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	optsDoc, err := optionsDocument(cmd, cfg, nil)
	if err != nil {
		return err
	}
	opts, err := host.FromDocument(optsDoc)
	if err != nil {
		return errors.MarkConfiguration(err)
	}

	parsed, err := scm.ParseOptions(opts)
	if err != nil {
		return err
	}
	if ignored := scm.UnrecognizedOptions(opts); len(ignored) > 0 {
		logger.Warnw("ignoring unrecognized options", logger.FieldIgnored, ignored)
	}

	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := outputFormat(formatFlag, "", cfg.Output.Format)
	if err != nil {
		return err
	}

	return writeDocument(cmd, map[string]interface{}{
		scm.OptTrunc:   parsed.Trunc,
		scm.OptPrior:   parsed.Prior,
		scm.OptVerbose: parsed.Verbose,
		scm.OptSparse:  parsed.Sparse,
		scm.OptThreads: parsed.Threads,
	}, "", format)
}
