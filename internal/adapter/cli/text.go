package cli

import (
	"fmt"
	"io"
	"strings"

	"vending-machine/internal/core/domain"
)

const (
	rule    = "=================================================="
	divider = "------------------------------"
)

func writeWelcome(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "    WELCOME TO THE VENDING MACHINE SIMULATOR")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "\nAvailable Commands:")
	fmt.Fprintln(w, "  menu     - Show available drinks")
	fmt.Fprintln(w, "  select   - Select a drink (e.g., 'select A1')")
	fmt.Fprintln(w, "  insert   - Insert money (e.g., 'insert 1.00')")
	fmt.Fprintln(w, "  buy      - Purchase the selected drink")
	fmt.Fprintln(w, "  balance  - Check current balance")
	fmt.Fprintln(w, "  return   - Return all money")
	fmt.Fprintln(w, "  stock    - Show stock status (admin)")
	fmt.Fprintln(w, "  help     - Show this help message")
	fmt.Fprintln(w, "  quit     - Exit the program")
	fmt.Fprintf(w, "\nAccepted money amounts: %s\n", acceptedAmounts())
	fmt.Fprintln(w, strings.Repeat("-", len(rule)))
}

func writeMenu(w io.Writer, menu domain.Menu) {
	fmt.Fprintln(w, "=== VENDING MACHINE MENU ===")
	if len(menu.Items) == 0 {
		fmt.Fprintln(w, "Sorry, all drinks are out of stock!")
	}
	for _, item := range menu.Items {
		fmt.Fprintf(w, "%s (Stock: %d)\n", item.Drink, item.Quantity)
	}
	fmt.Fprintf(w, "\nCurrent Balance: %s\n", domain.FormatMoney(menu.Balance))
	fmt.Fprintln(w, "==========================")
}

func writeStock(w io.Writer, levels []domain.StockLevel) {
	fmt.Fprintln(w, "=== STOCK STATUS ===")
	for _, l := range levels {
		fmt.Fprintf(w, "%s: %d units (%s)\n", l.Name, l.Quantity, l.Status())
	}
	fmt.Fprintln(w, "===================")
}

func acceptedAmounts() string {
	denoms := domain.Denominations()
	parts := make([]string, len(denoms))
	for i, d := range denoms {
		parts[i] = domain.FormatMoney(d)
	}
	return strings.Join(parts, ", ")
}
