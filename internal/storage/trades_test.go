package storage

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ardyware/ledger/internal/domain/apperr"
)

func newMockTradesRepo(t *testing.T) (*tradesRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &tradesRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

var listRegex = regexp.MustCompile(`SELECT trades\.id, items\.name, trades\.quantity, trades\.total_price, trades\.is_purchase, trades\.ts\s+FROM trades\s+INNER JOIN items ON trades\.item_id = items\.id`)

func tradeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "quantity", "total_price", "is_purchase", "ts"})
}

func TestInsertTrade(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trades (item_id, quantity, total_price, is_purchase, ts)")).
		WithArgs(int64(7), int64(100), int64(250000), true, ts).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.InsertTrade(7, 100, 250000, true, ts)
	if err != nil {
		t.Fatalf("InsertTrade: %v", err)
	}
	if id != 42 {
		t.Fatalf("id=%d, want 42", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInsertTrade_StorageError(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trades")).
		WithArgs(int64(7), int64(1), int64(10), false, ts).
		WillReturnError(errors.New("fk violation"))

	_, err := repo.InsertTrade(7, 1, 10, false, ts)
	if !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("want storage error, got %v", err)
	}
}

func TestListTrades_NoFilter(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	rows := tradeRows().
		AddRow(int64(1), "Dragon bones", int64(100), int64(250000), true, ts).
		AddRow(int64(2), "Rune scimitar", int64(1), int64(30000), false, ts.Add(time.Hour))
	mock.ExpectQuery(listRegex.String()).WillReturnRows(rows)

	out, err := repo.ListTrades(nil)
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len=%d, want 2", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Fatalf("order not ascending by id: %+v", out)
	}
	if out[0].ItemName != "Dragon bones" || !out[0].IsPurchase {
		t.Fatalf("row not denormalized: %+v", out[0])
	}
	if out[1].Timestamp.String() != "2024-01-15T10:30" {
		t.Fatalf("timestamp %q, want minute precision", out[1].Timestamp)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// The filter travels as a bound parameter. A name full of quote characters
// must reach the driver verbatim as $1, never concatenated into the SQL.
func TestListTrades_FilterIsBoundParameter(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	hostile := "O'Brien's Item"
	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	rows := tradeRows().AddRow(int64(5), hostile, int64(2), int64(500), false, ts)

	mock.ExpectQuery(listRegex.String() + `\s+WHERE items\.name = \$1`).
		WithArgs(hostile).
		WillReturnRows(rows)

	out, err := repo.ListTrades(&hostile)
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(out) != 1 || out[0].ItemName != hostile {
		t.Fatalf("unexpected result %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListTrades_Empty(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	mock.ExpectQuery(listRegex.String()).WillReturnRows(tradeRows())

	out, err := repo.ListTrades(nil)
	if err != nil {
		t.Fatalf("ListTrades: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("len=%d, want 0", len(out))
	}
}

func TestListTrades_QueryError(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	mock.ExpectQuery(listRegex.String()).WillReturnError(errors.New("disk full"))

	if _, err := repo.ListTrades(nil); !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("want storage error, got %v", err)
	}
}

func TestDeleteTrade(t *testing.T) {
	cases := []struct {
		name     string
		affected int64
		execErr  error
		wantKind error
	}{
		{name: "existing row", affected: 1, wantKind: nil},
		{name: "absent id", affected: 0, wantKind: apperr.ErrNotFound},
		{name: "exec failure", execErr: errors.New("conn refused"), wantKind: apperr.ErrStorage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockTradesRepo(t)
			defer done()

			exp := mock.ExpectExec(regexp.QuoteMeta("DELETE FROM trades WHERE id = $1")).
				WithArgs(int64(9))
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tc.affected))
			}

			err := repo.DeleteTrade(9)
			if tc.wantKind == nil {
				if err != nil {
					t.Fatalf("DeleteTrade: %v", err)
				}
			} else if !errors.Is(err, tc.wantKind) {
				t.Fatalf("want %v, got %v", tc.wantKind, err)
			}
		})
	}
}

func TestSumProfitLoss(t *testing.T) {
	cases := []struct {
		name  string
		total int64
	}{
		{name: "empty ledger", total: 0},
		{name: "net loss", total: -250000},
		{name: "net gain", total: 1500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockTradesRepo(t)
			defer done()

			mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(SUM(total_price * CASE WHEN is_purchase THEN -1 ELSE 1 END), 0) FROM trades")).
				WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(tc.total))

			got, err := repo.SumProfitLoss()
			if err != nil {
				t.Fatalf("SumProfitLoss: %v", err)
			}
			if got != tc.total {
				t.Fatalf("total=%d, want %d", got, tc.total)
			}
		})
	}
}

func TestSumProfitLoss_QueryError(t *testing.T) {
	repo, mock, done := newMockTradesRepo(t)
	defer done()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE")).
		WillReturnError(errors.New("timeout"))

	if _, err := repo.SumProfitLoss(); !errors.Is(err, apperr.ErrStorage) {
		t.Fatalf("want storage error, got %v", err)
	}
}

func TestNewTradesRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if NewTradesRepository(db) == nil {
		t.Fatalf("expected non-nil repository")
	}
}
