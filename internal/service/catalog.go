package service

import (
	"fmt"
	"strings"

	"vending-machine/config"
	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CatalogFromConfig turns the configured catalog into stock entries. An empty
// catalog yields the default drinks at cfg.DefaultQuantity each.
func CatalogFromConfig(cfg config.MachineConfig) ([]domain.StockEntry, error) {
	if len(cfg.Catalog) == 0 {
		return domain.DefaultCatalog(cfg.DefaultQuantity), nil
	}

	entries := make([]domain.StockEntry, 0, len(cfg.Catalog))
	for i, item := range cfg.Catalog {
		price, err := decimal.NewFromString(strings.TrimSpace(item.Price))
		if err != nil {
			return nil, fmt.Errorf("catalog[%d] %s: invalid price %q: %w", i, item.ID, item.Price, err)
		}
		drink, err := domain.NewDrink(strings.ToUpper(item.ID), item.Name, price)
		if err != nil {
			return nil, fmt.Errorf("catalog[%d]: %w", i, err)
		}
		qty := item.Quantity
		if qty == 0 {
			qty = cfg.DefaultQuantity
		}
		entries = append(entries, domain.StockEntry{Drink: drink, Quantity: qty})
	}
	return entries, nil
}

// NewStockedInventory builds a ledger loaded with entries.
func NewStockedInventory(entries []domain.StockEntry) (*Inventory, error) {
	inv := NewInventory()
	for _, e := range entries {
		if err := inv.Add(e.Drink, e.Quantity); err != nil {
			return nil, fmt.Errorf("stocking %s: %w", e.Drink.ID(), err)
		}
	}
	return inv, nil
}

// NewConfiguredMachine stocks a ledger from cfg and puts an idle machine in
// front of it.
func NewConfiguredMachine(cfg config.MachineConfig, auditSvc ports.AuditService, log zerolog.Logger) (*MachineServiceImpl, error) {
	entries, err := CatalogFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	inv, err := NewStockedInventory(entries)
	if err != nil {
		return nil, err
	}
	return NewMachineService(cfg.Name, inv, auditSvc, log), nil
}
