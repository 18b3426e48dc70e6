package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/scm/scm"
)

// InspectCmd reports the shape of an input document
var InspectCmd = newInspectCmd()

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the shape of an input document",
		Long: `Validate an input document and print J, I_j, N_ij and D without calling
the engine. Shape errors are reported exactly as run would report them.`,
		Args: cobra.NoArgs,
		RunE: runInspect,
	}
	cmd.Flags().StringP("input", "i", "", "Input document (JSON, YAML or TOML)")
	_ = cmd.MarkFlagRequired("input")
	cmd.Flags().BoolP("json", "j", false, "Output shape as JSON")
	return cmd
}

// inputShape is the shape of a GroupedMatrixSet.
type inputShape struct {
	Groups       int     `json:"groups"`
	Items        []int   `json:"items"`
	Rows         [][]int `json:"rows"`
	Dims         int     `json:"dims"`
	Observations int     `json:"observations"`
}

func shapeOf(x scm.GroupedMatrixSet) inputShape {
	s := inputShape{
		Groups:       x.Groups(),
		Items:        make([]int, x.Groups()),
		Rows:         make([][]int, x.Groups()),
		Dims:         x.Dims(),
		Observations: x.Observations(),
	}
	for j, group := range x {
		s.Items[j] = len(group)
		s.Rows[j] = make([]int, len(group))
		for i, item := range group {
			s.Rows[j][i], _ = item.Dims()
		}
	}
	return s
}

func shapeRows(shape inputShape) [][]string {
	rows := [][]string{{"Group", "Item", "Rows", "Columns"}}
	for j, group := range shape.Rows {
		for i, n := range group {
			rows = append(rows, []string{fmt.Sprint(j + 1), fmt.Sprint(i + 1), fmt.Sprint(n), fmt.Sprint(shape.Dims)})
		}
	}
	return rows
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	in, err := readInput(inputPath)
	if err != nil {
		return err
	}

	x, err := scm.MarshalInput(in.X)
	if err != nil {
		return err
	}
	shape := shapeOf(x)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		data, err := json.MarshalIndent(shape, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	if err := renderTable(cmd.OutOrStdout(), shapeRows(shape)); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d groups, %d observations, %d dimensions\n",
		shape.Groups, shape.Observations, shape.Dims)
	return nil
}
