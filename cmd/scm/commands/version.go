package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/scm/engine/libcluster"
	"github.com/teranos/scm/version"
)

// VersionCmd represents the version command
var VersionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show scm version information",
		Long:  `Display version, build time, commit hash, platform and engine availability for the scm binary.`,
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().BoolP("json", "j", false, "Output version info as JSON")
	return cmd
}

type versionOutput struct {
	version.Info
	Libcluster bool `json:"libcluster"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := versionOutput{Info: version.Get(), Libcluster: libcluster.Available}
	w := cmd.OutOrStdout()

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		output, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(output))
		return nil
	}

	fmt.Fprintln(w, info.String())
	fmt.Fprintf(w, "Platform: %s\n", info.Platform)
	fmt.Fprintf(w, "Go: %s\n", info.GoVersion)
	fmt.Fprintf(w, "libcluster: %t\n", info.Libcluster)
	return nil
}
