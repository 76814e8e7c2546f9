package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/findosh/sheetfolio/internal/config"
	"github.com/findosh/sheetfolio/internal/logger"
	"github.com/findosh/sheetfolio/internal/services/ingest"
	"github.com/findosh/sheetfolio/internal/services/reconcile"
	"github.com/findosh/sheetfolio/internal/services/render"
	"github.com/findosh/sheetfolio/internal/storage"
	"github.com/google/subcommands"
)

// syncCmd parses every exported tab in the data directory, reconciles
// holdings and replaces the stored sync results.
type syncCmd struct {
	dir string
	db  string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "parse all tab exports and store the results" }
func (*syncCmd) Usage() string {
	return `sheetfolio sync [-dir <data dir>] [-db <sqlite file>]

  Reads assets.csv, investments.csv, trades.csv, networth.csv, debts.csv,
  subscriptions.csv, accounts.csv, budget.csv and cashflow.csv from the data
  directory (missing files are skipped), reconciles holdings against the
  trade ledger, stores the results and prints a summary.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", "", "directory of tab exports (default from config)")
	f.StringVar(&c.db, "db", "", "sqlite database file (default from config)")
}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel)
	if c.dir == "" {
		c.dir = cfg.DataDir
	}
	if c.db == "" {
		c.db = cfg.DatabaseURL
	}

	db, err := storage.New(c.db)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	repo := storage.NewSyncRepository(db)

	if err := c.run(log, repo, cfg.BaseCurrency, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *syncCmd) run(log *slog.Logger, repo *storage.SyncRepository, currency string, out io.Writer) error {
	assets, ok, err := c.tabRows("assets.csv")
	if err != nil {
		return err
	}
	if ok {
		parsed := ingest.ParseAssets(assets)
		if err := repo.ReplaceAssets(parsed); err != nil {
			return err
		}
		log.Info("synced assets", "count", len(parsed))
		fmt.Fprint(out, render.Assets(parsed, currency))
	}

	positionRows, havePositions, err := c.tabRows("investments.csv")
	if err != nil {
		return err
	}
	tradeRows, haveTrades, err := c.tabRows("trades.csv")
	if err != nil {
		return err
	}
	if havePositions || haveTrades {
		positions := ingest.ParsePositions(positionRows, ingest.DefaultAliases)
		trades := ingest.ParseTrades(tradeRows, ingest.DefaultAliases)
		if err := repo.ReplacePositions(positions); err != nil {
			return err
		}
		if err := repo.ReplaceTrades(trades); err != nil {
			return err
		}
		holdings := reconcile.Holdings(positions, trades)
		log.Info("synced investments", "positions", len(positions), "trades", len(trades), "holdings", len(holdings))
		fmt.Fprint(out, render.Holdings(holdings, currency))
	}

	networthRows, ok, err := c.tabRows("networth.csv")
	if err != nil {
		return err
	}
	if ok {
		entries := ingest.ParseNetWorth(networthRows)
		if err := repo.AppendNetWorth(entries); err != nil {
			return err
		}
		log.Info("synced net worth log", "count", len(entries))
	}

	debtRows, ok, err := c.tabRows("debts.csv")
	if err != nil {
		return err
	}
	if ok {
		debts := ingest.ParseDebts(debtRows)
		log.Info("parsed debts", "count", len(debts))
		fmt.Fprint(out, render.Debts(debts, currency))
	}

	subRows, ok, err := c.tabRows("subscriptions.csv")
	if err != nil {
		return err
	}
	if ok {
		subs := ingest.ParseSubscriptions(subRows)
		log.Info("parsed subscriptions", "count", len(subs))
	}

	accountRows, ok, err := c.tabRows("accounts.csv")
	if err != nil {
		return err
	}
	if ok {
		accounts := ingest.ParseAccounts(accountRows)
		log.Info("parsed accounts", "count", len(accounts))
	}

	budgetRows, ok, err := c.tabRows("budget.csv")
	if err != nil {
		return err
	}
	if ok {
		budget := ingest.ParseBudget(budgetRows)
		log.Info("parsed budget", "categories", len(budget.Categories))
		fmt.Fprint(out, render.Budget(budget, currency))
	}

	cashflowRows, ok, err := c.tabRows("cashflow.csv")
	if err != nil {
		return err
	}
	if ok {
		cf := ingest.ExtractCashflow(cashflowRows)
		log.Info("parsed cashflow", "income", len(cf.Income), "expenses", len(cf.Expenses))
		fmt.Fprint(out, render.Cashflow(cf, currency))
	}

	return nil
}

// tabRows loads one tab export; a missing file is not an error, just an
// absent tab.
func (c *syncCmd) tabRows(name string) ([][]string, bool, error) {
	rows, err := readRows(filepath.Join(c.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rows, true, nil
}
