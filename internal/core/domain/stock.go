package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// StockEntry pairs a drink with a starting quantity, used to seed an inventory.
type StockEntry struct {
	Drink    Drink
	Quantity int
}

// StockLevel is one line of the stock summary.
type StockLevel struct {
	DrinkID  string
	Name     string
	Quantity int
}

// Status is the label shown on the stock report.
func (s StockLevel) Status() string {
	if s.Quantity > 0 {
		return "IN STOCK"
	}
	return "OUT OF STOCK"
}

// MenuItem is an available drink together with its remaining count.
type MenuItem struct {
	Drink    Drink
	Quantity int
}

// Menu is the customer view: what can be bought and the money inserted so far.
type Menu struct {
	Items   []MenuItem
	Balance decimal.Decimal
}

// DefaultCatalog is the factory load: nine drinks, quantity each.
func DefaultCatalog(quantity int) []StockEntry {
	items := []struct {
		id, name, price string
	}{
		{"A1", "Coca Cola", "1.50"},
		{"A2", "Pepsi", "1.50"},
		{"A3", "Sprite", "1.25"},
		{"B1", "Orange Juice", "2.00"},
		{"B2", "Apple Juice", "2.00"},
		{"B3", "Water", "1.00"},
		{"C1", "Energy Drink", "2.50"},
		{"C2", "Coffee", "1.75"},
		{"C3", "Tea", "1.50"},
	}

	entries := make([]StockEntry, 0, len(items))
	for _, it := range items {
		drink, err := NewDrink(it.id, it.name, decimal.RequireFromString(it.price))
		if err != nil {
			panic(fmt.Sprintf("default catalog: %v", err))
		}
		entries = append(entries, StockEntry{Drink: drink, Quantity: quantity})
	}
	return entries
}
