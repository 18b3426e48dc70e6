package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/scm/config"
	"github.com/teranos/scm/errors"
)

// ConfigCmd represents the config command
var ConfigCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate scm configuration",
		Long: `Display and validate scm configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (SCM_* prefix, e.g. SCM_OPTIONS_TRUNC)
3. Project config (./scm.toml, searched upward)
4. User config (~/.scm/config.toml)
5. System config (/etc/scm/config.toml)
6. Default values`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	show.Flags().String("format", "toml", "Output format: toml, json, yaml")
	show.Flags().Bool("sources", false, "List each setting with the source it came from")

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a configuration value using dot notation (e.g., options.trunc, engine.name)",
		Args:  cobra.ExactArgs(1),
		RunE:  runConfigGet,
	}

	validate := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigValidate,
	}

	cmd.AddCommand(show, get, validate)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if sources, _ := cmd.Flags().GetBool("sources"); sources {
		rows := [][]string{{"Key", "Value", "Source", "From"}}
		for _, s := range config.Introspect() {
			rows = append(rows, []string{s.Key, fmt.Sprint(s.Value), string(s.Source), s.SourcePath})
		}
		return renderTable(cmd.OutOrStdout(), rows)
	}

	format, _ := cmd.Flags().GetString("format")
	format, err = outputFormat(format, "", "")
	if err != nil {
		return err
	}
	return writeDocument(cmd, cfg.Document(), "", format)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	v := config.GetViper()
	if !v.IsSet(key) {
		return errors.Newf("configuration key %q not found", key)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v.Get(key))
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration is valid")
	return nil
}
