package ports

import (
	"context"

	"vending-machine/internal/core/domain"
)

// InventoryLedger is the stock book of one machine: the drink catalog plus
// a count per drink. Implementations must make DispenseOne atomic.
type InventoryLedger interface {
	Add(drink domain.Drink, quantity int) error
	Get(drinkID string) (domain.Drink, error)
	Quantity(drinkID string) int
	IsAvailable(drinkID string) bool
	DispenseOne(drinkID string) bool
	Restock(drinkID string, extra int) error
	ListAvailable() []domain.Drink
	ListAll() []domain.Drink
	Summary() []domain.StockLevel
}

// AuditRepository persists sales journal events.
type AuditRepository interface {
	Create(ctx context.Context, event *domain.AuditEvent) error
}
