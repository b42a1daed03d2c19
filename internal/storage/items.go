package storage

import (
	"database/sql"

	"github.com/ardyware/ledger/internal/domain/apperr"
)

// ItemsRepository is the item directory: it maps human-readable item names
// to stable numeric identifiers.
type ItemsRepository interface {
	// ResolveOrCreate returns the id of the item with the given name,
	// creating the item first if it does not exist. Calling it repeatedly
	// with the same name always yields the same id.
	ResolveOrCreate(name string) (int64, error)
}

type itemsRepository struct {
	db *sql.DB
}

func NewItemsRepository(db *sql.DB) ItemsRepository {
	return &itemsRepository{db: db}
}

// ResolveOrCreate uses insert-if-absent followed by a lookup. The two
// statements are not atomic as a pair, but two racing callers still converge
// on a single row: ON CONFLICT DO NOTHING makes the insert a no-op for the
// loser, and the follow-up SELECT reads whichever insert won.
func (r *itemsRepository) ResolveOrCreate(name string) (int64, error) {
	if _, err := r.db.Exec(
		`INSERT INTO items (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`,
		name,
	); err != nil {
		return 0, apperr.Storage("insert item", err)
	}

	var id int64
	if err := r.db.QueryRow(
		`SELECT id FROM items WHERE name = $1`,
		name,
	).Scan(&id); err != nil {
		return 0, apperr.Storage("select item id", err)
	}
	return id, nil
}
