package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/teranos/scm/errors"
)

// renderTable writes a pterm table; the first row is the header.
func renderTable(w io.Writer, rows [][]string) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return errors.Wrap(err, "failed to render table")
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
