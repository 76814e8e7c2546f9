package cli

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/findosh/sheetfolio/internal/config"
	"github.com/findosh/sheetfolio/internal/services/ingest"
	"github.com/findosh/sheetfolio/internal/services/render"
	"github.com/google/subcommands"
)

// cashflowCmd extracts the income/expense time series from a summary export.
type cashflowCmd struct {
	file string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "extract the income/expense series from a summary export" }
func (*cashflowCmd) Usage() string {
	return `sheetfolio cashflow -file <csv>

  Scans a transaction-summary export for date header rows, the income row and
  expense category rows, anchors each value column to its nearest preceding date
  row, and prints the resulting series.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV export of the summary tab")
}

func (c *cashflowCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	cfg := config.Load()

	rows, err := readRows(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	cf := ingest.ExtractCashflow(rows)
	if len(cf.Income) == 0 && len(cf.Expenses) == 0 {
		// Heuristics found no anchors; flag for manual mapping, do not guess.
		slog.Warn("no date or income rows recognized in sheet", "file", c.file)
	}
	fmt.Print(render.Cashflow(cf, cfg.BaseCurrency))
	return subcommands.ExitSuccess
}
