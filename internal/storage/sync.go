package storage

import (
	"database/sql"
	"fmt"

	"github.com/findosh/sheetfolio/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SyncRepository stores one sync's parse results. Replace semantics mirror
// the parse lifecycle: the latest pass fully replaces each entity set, except
// the net-worth log which is append-only history.
type SyncRepository struct {
	db *DB
}

// NewSyncRepository creates a new sync repository
func NewSyncRepository(db *DB) *SyncRepository {
	return &SyncRepository{db: db}
}

// ReplaceAssets swaps the stored asset set for the given one.
func (r *SyncRepository) ReplaceAssets(assets []*models.Asset) error {
	return r.replace("assets", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO assets (id, name, category, value, currency, updated, source_row)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, a := range assets {
			if _, err := stmt.Exec(
				a.ID.String(), a.Name, string(a.Category),
				a.Value.String(), a.Currency, a.Updated, a.SourceRow,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplacePositions swaps the stored snapshot positions for the given ones.
func (r *SyncRepository) ReplacePositions(positions []*models.Position) error {
	return r.replace("positions", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO positions (id, ticker, name, quantity, avg_cost, current_price, account_name, asset_class, market_value)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, p := range positions {
			if _, err := stmt.Exec(
				p.ID.String(), p.Ticker, p.Name,
				p.Quantity.String(), p.AvgCost.String(), p.CurrentPrice.String(),
				p.AccountName, p.AssetClass, p.MarketValue.String(),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceTrades swaps the stored trade ledger for the given one.
func (r *SyncRepository) ReplaceTrades(trades []*models.Trade) error {
	return r.replace("trades", func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO trades (id, date, ticker, side, quantity, price, total, fee, market_price, source_row)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, t := range trades {
			if _, err := stmt.Exec(
				t.ID.String(), t.Date, t.Ticker, string(t.Side),
				t.Quantity.String(), t.Price.String(), t.Total.String(),
				t.Fee.String(), t.MarketPrice.String(), t.SourceRow,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendNetWorth adds new log entries, skipping dates already logged.
func (r *SyncRepository) AppendNetWorth(entries []*models.NetWorthEntry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO networth_log (id, date, value)
		SELECT ?, ?, ?
		WHERE NOT EXISTS (SELECT 1 FROM networth_log WHERE date = ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, e := range entries {
		if _, err := stmt.Exec(e.ID.String(), e.Date, e.Value.String(), e.Date); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Positions loads the stored snapshot positions.
func (r *SyncRepository) Positions() ([]*models.Position, error) {
	rows, err := r.db.Query(`
		SELECT id, ticker, name, quantity, avg_cost, current_price, account_name, asset_class, market_value
		FROM positions ORDER BY ticker
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Position
	for rows.Next() {
		var p models.Position
		var id string
		var quantity, avgCost, price, value string
		if err := rows.Scan(&id, &p.Ticker, &p.Name, &quantity, &avgCost, &price, &p.AccountName, &p.AssetClass, &value); err != nil {
			return nil, err
		}
		p.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("corrupt position id: %w", err)
		}
		if p.Quantity, err = decimal.NewFromString(quantity); err != nil {
			return nil, err
		}
		if p.AvgCost, err = decimal.NewFromString(avgCost); err != nil {
			return nil, err
		}
		if p.CurrentPrice, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		if p.MarketValue, err = decimal.NewFromString(value); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

// Trades loads the stored trade ledger in source order.
func (r *SyncRepository) Trades() ([]*models.Trade, error) {
	rows, err := r.db.Query(`
		SELECT id, date, ticker, side, quantity, price, total, fee, market_price, source_row
		FROM trades ORDER BY source_row
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Trade
	for rows.Next() {
		var t models.Trade
		var id, side string
		var quantity, price, total, fee, market string
		if err := rows.Scan(&id, &t.Date, &t.Ticker, &side, &quantity, &price, &total, &fee, &market, &t.SourceRow); err != nil {
			return nil, err
		}
		t.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("corrupt trade id: %w", err)
		}
		t.Side = models.TradeSide(side)
		if t.Quantity, err = decimal.NewFromString(quantity); err != nil {
			return nil, err
		}
		if t.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		if t.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		if t.Fee, err = decimal.NewFromString(fee); err != nil {
			return nil, err
		}
		if t.MarketPrice, err = decimal.NewFromString(market); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

// replace runs a delete-then-insert swap of one table in a transaction.
func (r *SyncRepository) replace(table string, insert func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM " + table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	if err := insert(tx); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return tx.Commit()
}
