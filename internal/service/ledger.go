package service

import (
	"context"
	"strings"

	"github.com/ardyware/ledger/internal/domain/apperr"
	"github.com/ardyware/ledger/internal/domain/models"
	"github.com/ardyware/ledger/internal/storage"
)

// LedgerService is the operation-level boundary of the trade ledger.
// Handlers depend on this interface, not on the repositories.
type LedgerService interface {
	// Record resolves the item by name (creating it if unseen) and appends
	// a trade. The timestamp arrives as a string and must parse in the
	// canonical minute-precision format.
	Record(ctx context.Context, itemName string, quantity, totalPrice int64, isPurchase bool, timestamp string) (int64, error)

	// List returns all trades ordered ascending by id, denormalized with
	// the item name. A non-empty itemName restricts the result to trades
	// whose item name matches exactly.
	List(ctx context.Context, itemName string) ([]models.Trade, error)

	// Delete removes a trade by id; deleting an absent id fails with a
	// not-found error.
	Delete(ctx context.Context, id int64) error

	// ProfitLoss returns the signed sum over all trades: sales positive,
	// purchases negative.
	ProfitLoss(ctx context.Context) (int64, error)
}

type ledgerService struct {
	items  storage.ItemsRepository
	trades storage.TradesRepository
}

func NewLedgerService(items storage.ItemsRepository, trades storage.TradesRepository) LedgerService {
	return &ledgerService{items: items, trades: trades}
}

func (s *ledgerService) Record(ctx context.Context, itemName string, quantity, totalPrice int64, isPurchase bool, timestamp string) (int64, error) {
	if strings.TrimSpace(itemName) == "" {
		return 0, apperr.Validationf("item_name is required")
	}
	if quantity < 1 {
		return 0, apperr.Validationf("quantity must be a positive integer, got %d", quantity)
	}
	ts, err := models.ParseMinute(timestamp)
	if err != nil {
		return 0, apperr.Timestamp(timestamp, err)
	}

	itemID, err := s.items.ResolveOrCreate(itemName)
	if err != nil {
		return 0, err
	}
	return s.trades.InsertTrade(itemID, quantity, totalPrice, isPurchase, ts.Time)
}

func (s *ledgerService) List(ctx context.Context, itemName string) ([]models.Trade, error) {
	var filter *string
	if itemName != "" {
		filter = &itemName
	}
	return s.trades.ListTrades(filter)
}

func (s *ledgerService) Delete(ctx context.Context, id int64) error {
	return s.trades.DeleteTrade(id)
}

func (s *ledgerService) ProfitLoss(ctx context.Context) (int64, error) {
	return s.trades.SumProfitLoss()
}
