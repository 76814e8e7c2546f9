package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/findosh/sheetfolio/internal/config"
	"github.com/findosh/sheetfolio/internal/models"
	"github.com/findosh/sheetfolio/internal/services/ingest"
	"github.com/findosh/sheetfolio/internal/services/reconcile"
	"github.com/findosh/sheetfolio/internal/services/render"
	"github.com/findosh/sheetfolio/internal/storage"
	"github.com/google/subcommands"
)

// holdingsCmd reconciles a snapshot export against a trade export and prints
// the resulting holdings.
type holdingsCmd struct {
	positionsFile string
	tradesFile    string
	db            string
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "reconcile snapshot and trade exports into current holdings" }
func (*holdingsCmd) Usage() string {
	return `sheetfolio holdings [-positions <csv>] [-trades <csv>] [-db <sqlite file>]

  Merges the static investment snapshot with the trade ledger and prints the
  reconciled holdings. Tickers traded but missing from the snapshot appear as
  synthetic holdings without a price. Without file flags the last stored sync
  is reconciled instead.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.positionsFile, "positions", "", "CSV export of the investments tab")
	f.StringVar(&c.tradesFile, "trades", "", "CSV export of the trades tab")
	f.StringVar(&c.db, "db", "", "sqlite database file (default from config)")
}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()

	var (
		positions []*models.Position
		trades    []*models.Trade
		err       error
	)
	if c.positionsFile == "" && c.tradesFile == "" {
		positions, trades, err = c.loadStored(cfg)
	} else {
		positions, err = loadPositions(c.positionsFile)
		if err == nil {
			trades, err = loadTrades(c.tradesFile)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	holdings := reconcile.Holdings(positions, trades)
	fmt.Print(render.Holdings(holdings, cfg.BaseCurrency))
	return subcommands.ExitSuccess
}

// loadStored reconciles from the last stored sync results.
func (c *holdingsCmd) loadStored(cfg *config.Config) ([]*models.Position, []*models.Trade, error) {
	if c.db == "" {
		c.db = cfg.DatabaseURL
	}
	db, err := storage.New(c.db)
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return nil, nil, err
	}

	repo := storage.NewSyncRepository(db)
	positions, err := repo.Positions()
	if err != nil {
		return nil, nil, err
	}
	trades, err := repo.Trades()
	if err != nil {
		return nil, nil, err
	}
	return positions, trades, nil
}

func loadPositions(path string) ([]*models.Position, error) {
	if path == "" {
		return nil, nil
	}
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	return ingest.ParsePositions(rows, ingest.DefaultAliases), nil
}

func loadTrades(path string) ([]*models.Trade, error) {
	if path == "" {
		return nil, nil
	}
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}
	return ingest.ParseTrades(rows, ingest.DefaultAliases), nil
}
