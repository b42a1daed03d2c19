//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ardyware/ledger/internal/domain/apperr"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "ledger",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=ledger sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "ledger")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestRepositories_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	items := NewItemsRepository(db)
	trades := NewTradesRepository(db)

	ts := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	t.Run("resolve is idempotent by name", func(t *testing.T) {
		first, err := items.ResolveOrCreate("Dragon bones")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		second, err := items.ResolveOrCreate("Dragon bones")
		if err != nil {
			t.Fatalf("resolve again: %v", err)
		}
		if first != second {
			t.Fatalf("ids differ: %d vs %d", first, second)
		}
	})

	t.Run("insert, list, filter, delete", func(t *testing.T) {
		bonesID, _ := items.ResolveOrCreate("Dragon bones")
		obrienID, err := items.ResolveOrCreate("O'Brien's Item")
		if err != nil {
			t.Fatalf("resolve quoted name: %v", err)
		}

		id1, err := trades.InsertTrade(bonesID, 100, 250000, true, ts)
		if err != nil {
			t.Fatalf("insert 1: %v", err)
		}
		id2, err := trades.InsertTrade(obrienID, 2, 500, false, ts.Add(time.Hour))
		if err != nil {
			t.Fatalf("insert 2: %v", err)
		}
		if id2 <= id1 {
			t.Fatalf("ids not monotonically increasing: %d then %d", id1, id2)
		}

		all, err := trades.ListTrades(nil)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("len=%d, want 2", len(all))
		}
		if all[0].ID != id1 || all[1].ID != id2 {
			t.Fatalf("not ordered by id: %+v", all)
		}
		if all[0].Timestamp.String() != "2024-01-15T09:30" {
			t.Fatalf("timestamp round trip broke: %q", all[0].Timestamp)
		}

		// Exact-match filter on a name full of quote characters.
		name := "O'Brien's Item"
		only, err := trades.ListTrades(&name)
		if err != nil {
			t.Fatalf("filtered list: %v", err)
		}
		if len(only) != 1 || only[0].ItemName != name {
			t.Fatalf("filter returned %+v", only)
		}

		// Substring of an existing name must not match.
		sub := "Dragon"
		none, err := trades.ListTrades(&sub)
		if err != nil {
			t.Fatalf("substring list: %v", err)
		}
		if len(none) != 0 {
			t.Fatalf("substring matched %d rows", len(none))
		}

		if err := trades.DeleteTrade(id2); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if err := trades.DeleteTrade(id2); !errors.Is(err, apperr.ErrNotFound) {
			t.Fatalf("second delete should be not found, got %v", err)
		}
	})

	t.Run("profit loss sign convention", func(t *testing.T) {
		if _, err := db.Exec(`DELETE FROM trades`); err != nil {
			t.Fatalf("reset: %v", err)
		}

		total, err := trades.SumProfitLoss()
		if err != nil || total != 0 {
			t.Fatalf("empty ledger total=%d err=%v", total, err)
		}

		itemID, _ := items.ResolveOrCreate("Dragon bones")
		buyID, err := trades.InsertTrade(itemID, 1, 1000, true, ts)
		if err != nil {
			t.Fatalf("insert buy: %v", err)
		}
		total, err = trades.SumProfitLoss()
		if err != nil || total != -1000 {
			t.Fatalf("after purchase total=%d err=%v, want -1000", total, err)
		}

		sellID, err := trades.InsertTrade(itemID, 2, 500, false, ts)
		if err != nil {
			t.Fatalf("insert sale: %v", err)
		}
		total, err = trades.SumProfitLoss()
		if err != nil || total != -500 {
			t.Fatalf("after sale total=%d err=%v, want -500", total, err)
		}

		if err := trades.DeleteTrade(sellID); err != nil {
			t.Fatalf("delete sale: %v", err)
		}
		if err := trades.DeleteTrade(buyID); err != nil {
			t.Fatalf("delete buy: %v", err)
		}
		total, err = trades.SumProfitLoss()
		if err != nil || total != 0 {
			t.Fatalf("after deletes total=%d err=%v, want 0", total, err)
		}
	})
}
