package storage

import (
	"database/sql"
	"time"

	"github.com/ardyware/ledger/internal/domain/apperr"
	"github.com/ardyware/ledger/internal/domain/models"
)

// TradesRepository is the trade ledger's persistence contract.
//
// Reads are denormalized: ListTrades joins against items so callers see the
// item name instead of its id. Rows come back ordered ascending by trade id,
// which is assignment order and therefore stable.
type TradesRepository interface {
	// InsertTrade appends a trade for an already-resolved item and returns
	// the new trade id.
	InsertTrade(itemID int64, quantity, totalPrice int64, isPurchase bool, ts time.Time) (int64, error)

	// ListTrades returns all trades, or only those whose item name equals
	// the filter exactly when filter is non-nil. The filter is always passed
	// as a bound parameter, never spliced into the query text.
	ListTrades(filter *string) ([]models.Trade, error)

	// DeleteTrade removes the trade with the given id. Deleting an id that
	// does not exist is an error (apperr.ErrNotFound).
	DeleteTrade(id int64) error

	// SumProfitLoss scans all trades and returns the signed total: each
	// trade contributes its total_price, negated for purchases. An empty
	// ledger sums to zero.
	SumProfitLoss() (int64, error)
}

type tradesRepository struct {
	db *sql.DB
}

func NewTradesRepository(db *sql.DB) TradesRepository {
	return &tradesRepository{db: db}
}

func (r *tradesRepository) InsertTrade(itemID int64, quantity, totalPrice int64, isPurchase bool, ts time.Time) (int64, error) {
	var id int64
	err := r.db.QueryRow(
		`INSERT INTO trades (item_id, quantity, total_price, is_purchase, ts)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		itemID, quantity, totalPrice, isPurchase, ts,
	).Scan(&id)
	if err != nil {
		return 0, apperr.Storage("insert trade", err)
	}
	return id, nil
}

func (r *tradesRepository) ListTrades(filter *string) ([]models.Trade, error) {
	query := `
		SELECT trades.id, items.name, trades.quantity, trades.total_price, trades.is_purchase, trades.ts
		FROM trades
		INNER JOIN items ON trades.item_id = items.id`
	var args []interface{}
	if filter != nil {
		query += ` WHERE items.name = $1`
		args = append(args, *filter)
	}
	query += ` ORDER BY trades.id ASC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, apperr.Storage("list trades", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Trade
	for rows.Next() {
		var t models.Trade
		var ts time.Time
		if err := rows.Scan(&t.ID, &t.ItemName, &t.Quantity, &t.TotalPrice, &t.IsPurchase, &ts); err != nil {
			return nil, apperr.Storage("scan trade", err)
		}
		t.Timestamp = models.TruncateMinute(ts)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("iterate trades", err)
	}
	return out, nil
}

func (r *tradesRepository) DeleteTrade(id int64) error {
	res, err := r.db.Exec(`DELETE FROM trades WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("delete trade", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage("delete trade rows affected", err)
	}
	if n == 0 {
		return apperr.NotFoundf("trade %d", id)
	}
	return nil
}

func (r *tradesRepository) SumProfitLoss() (int64, error) {
	// Sign convention applied here regardless of physical representation:
	// purchases negative, sales positive. total_price is the full
	// consideration, so quantity does not enter the sum.
	var total int64
	err := r.db.QueryRow(
		`SELECT COALESCE(SUM(total_price * CASE WHEN is_purchase THEN -1 ELSE 1 END), 0) FROM trades`,
	).Scan(&total)
	if err != nil {
		return 0, apperr.Storage("sum profit/loss", err)
	}
	return total, nil
}
