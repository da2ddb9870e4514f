package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Drink is an immutable catalog item. Fields are unexported so a Drink
// handed out by the inventory can never be edited in place.
type Drink struct {
	id    string
	name  string
	price decimal.Decimal
}

// NewDrink validates and builds a Drink. The price is kept at two decimals.
func NewDrink(id, name string, price decimal.Decimal) (Drink, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Drink{}, errors.New("drink ID is required")
	}
	if name == "" {
		return Drink{}, errors.New("drink name is required")
	}
	if price.IsNegative() {
		return Drink{}, fmt.Errorf("drink %s: price cannot be negative", id)
	}
	return Drink{id: id, name: name, price: price.Round(2)}, nil
}

func (d Drink) ID() string {
	return d.id
}

func (d Drink) Name() string {
	return d.name
}

func (d Drink) Price() decimal.Decimal {
	return d.price
}

// IsZero reports whether d is the zero value (no drink).
func (d Drink) IsZero() bool {
	return d.id == ""
}

// String renders the menu line, e.g. "A1: Coca Cola - $1.50".
func (d Drink) String() string {
	return fmt.Sprintf("%s: %s - %s", d.id, d.name, FormatMoney(d.price))
}

// GoString is used by %#v in test failures and debug logs.
func (d Drink) GoString() string {
	return fmt.Sprintf("Drink(id=%q, name=%q, price=%s)", d.id, d.name, d.price.StringFixed(2))
}
