// Package cli implements the sheetfolio subcommands.
package cli

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// Commands lists every registered subcommand.
var Commands = []subcommands.Command{
	&syncCmd{},
	&holdingsCmd{},
	&ledgerCmd{},
	&cashflowCmd{},
}

// readRows loads one exported sheet tab. Exports are ragged: rows may have
// differing widths and trailing cells may be missing, which downstream
// parsers already tolerate.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}
