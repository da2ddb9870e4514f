package service

import (
	"fmt"
	"math"
	"sync"

	"vending-machine/internal/core/domain"
	"vending-machine/pkg/apperror"
)

// Inventory implements ports.InventoryLedger in memory. Catalog order is
// the order drinks were first added.
type Inventory struct {
	mu     sync.RWMutex
	order  []string
	drinks map[string]domain.Drink
	counts map[string]int
}

// NewInventory creates an empty ledger.
func NewInventory() *Inventory {
	return &Inventory{
		drinks: make(map[string]domain.Drink),
		counts: make(map[string]int),
	}
}

// Add registers drink with the given count. Re-adding an ID replaces both the
// drink and its count; the drink keeps its original position.
func (inv *Inventory) Add(drink domain.Drink, quantity int) error {
	if quantity <= 0 {
		return apperror.ErrInvalidQuantity(fmt.Sprintf("quantity must be positive, got %d", quantity))
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.drinks[drink.ID()]; !exists {
		inv.order = append(inv.order, drink.ID())
	}
	inv.drinks[drink.ID()] = drink
	inv.counts[drink.ID()] = quantity
	return nil
}

func (inv *Inventory) Get(drinkID string) (domain.Drink, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	drink, ok := inv.drinks[drinkID]
	if !ok {
		return domain.Drink{}, apperror.ErrNotFound(fmt.Sprintf("Drink '%s'", drinkID))
	}
	return drink, nil
}

// Quantity returns 0 for unknown IDs.
func (inv *Inventory) Quantity(drinkID string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.counts[drinkID]
}

func (inv *Inventory) IsAvailable(drinkID string) bool {
	return inv.Quantity(drinkID) > 0
}

// DispenseOne decrements the count by one if stock remains. It reports false
// and changes nothing otherwise.
func (inv *Inventory) DispenseOne(drinkID string) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.counts[drinkID] <= 0 {
		return false
	}
	inv.counts[drinkID]--
	return true
}

func (inv *Inventory) Restock(drinkID string, extra int) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, ok := inv.drinks[drinkID]; !ok {
		return apperror.ErrNotFound(fmt.Sprintf("Drink '%s'", drinkID))
	}
	if extra <= 0 {
		return apperror.ErrInvalidQuantity(fmt.Sprintf("restock quantity must be positive, got %d", extra))
	}
	if extra > math.MaxInt-inv.counts[drinkID] {
		return apperror.ErrInvalidQuantity(fmt.Sprintf("restock of %d would overflow the stock count", extra))
	}
	inv.counts[drinkID] += extra
	return nil
}

// ListAvailable returns in-stock drinks in catalog order.
func (inv *Inventory) ListAvailable() []domain.Drink {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]domain.Drink, 0, len(inv.order))
	for _, id := range inv.order {
		if inv.counts[id] > 0 {
			out = append(out, inv.drinks[id])
		}
	}
	return out
}

// ListAll returns every catalog drink in catalog order.
func (inv *Inventory) ListAll() []domain.Drink {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]domain.Drink, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.drinks[id])
	}
	return out
}

// Summary returns a stock line per drink in catalog order.
func (inv *Inventory) Summary() []domain.StockLevel {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]domain.StockLevel, 0, len(inv.order))
	for _, id := range inv.order {
		drink := inv.drinks[id]
		out = append(out, domain.StockLevel{
			DrinkID:  id,
			Name:     drink.Name(),
			Quantity: inv.counts[id],
		})
	}
	return out
}
