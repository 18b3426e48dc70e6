package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/scm/cmd/scm/commands"
	"github.com/teranos/scm/logger"
)

var rootCmd = &cobra.Command{
	Use:   "scm",
	Short: "scm - Simultaneous Clustering Model adapter",
	Long: `scm - run the Simultaneous Clustering Model on grouped observation data.

Input is a document (JSON, YAML or TOML) holding X: a list of groups, each
a list of observation matrices written as lists of rows. Every matrix must
have the same number of columns.

Available commands:
  run      - Cluster an input document and write the six posterior outputs
  inspect  - Show the shape of an input document without clustering
  options  - Show the effective cluster options
  config   - Show or validate configuration
  version  - Show version information

Examples:
  scm run -i data.json                       # Cluster with configured defaults
  scm run -i data.yaml --trunc 20 -o out.json
  scm run -i data.json --engine echo         # Exercise the pipeline without libcluster
  scm inspect -i data.json
  scm config show --sources`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.InitLogging(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON on stderr")

	rootCmd.AddCommand(commands.RunCmd)
	rootCmd.AddCommand(commands.InspectCmd)
	rootCmd.AddCommand(commands.OptionsCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		commands.ReportError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
