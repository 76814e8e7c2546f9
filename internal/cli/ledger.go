package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findosh/sheetfolio/internal/config"
	"github.com/findosh/sheetfolio/internal/services/ingest"
	"github.com/findosh/sheetfolio/internal/services/render"
	"github.com/google/subcommands"
)

// ledgerCmd parses a monthly budget grid export and prints category totals.
type ledgerCmd struct {
	file   string
	income bool
}

func (*ledgerCmd) Name() string     { return "ledger" }
func (*ledgerCmd) Synopsis() string { return "parse a monthly budget grid export" }
func (*ledgerCmd) Usage() string {
	return `sheetfolio ledger -file <csv> [-income]

  Reconstructs the category/line-item tree from a budget grid export and
  prints per-category totals. With -income the flat income-sources shape is
  parsed instead.
`
}

func (c *ledgerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "CSV export of the budget tab")
	f.BoolVar(&c.income, "income", false, "parse the flat income-sources shape")
}

func (c *ledgerCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	budget := ingest.ParseBudget(rows)
	if c.income {
		budget = ingest.ParseIncomeSources(rows)
	}
	fmt.Print(render.Budget(budget, cfg.BaseCurrency))
	return subcommands.ExitSuccess
}
