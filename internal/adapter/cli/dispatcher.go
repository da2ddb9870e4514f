// Package cli is the interactive text front end of the machine.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Dispatcher maps text commands onto a MachineService and prints results.
type Dispatcher struct {
	machine ports.MachineService
	out     io.Writer
	log     zerolog.Logger
}

func NewDispatcher(machine ports.MachineService, out io.Writer, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{machine: machine, out: out, log: log}
}

// Run prints the welcome screen and menu, then reads commands from in until
// quit, EOF or ctx is done. Cancellation does not wait for a pending read;
// the reader goroutine is left blocked on in until it returns.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	writeWelcome(d.out)
	writeMenu(d.out, d.machine.Menu(ctx))

	// Stops the reader once Run returns.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprintf(d.out, "\n%s\nEnter command: ", divider)
		select {
		case <-ctx.Done():
			fmt.Fprintln(d.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(d.out)
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("reading command: %w", err)
					}
				default:
				}
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if quit := d.Execute(ctx, line); quit {
				return nil
			}
		}
	}
}

// Execute runs one command line. It reports whether the session should end.
func (d *Dispatcher) Execute(ctx context.Context, line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false
	}
	cmd, args := fields[0], fields[1:]
	d.log.Debug().Str("command", cmd).Strs("args", args).Msg("cli command")

	switch cmd {
	case "quit", "exit":
		fmt.Fprintln(d.out, "Thank you for using the Vending Machine Simulator!")
		return true
	case "help":
		writeWelcome(d.out)
	case "menu":
		writeMenu(d.out, d.machine.Menu(ctx))
	case "select":
		d.selectDrink(ctx, args)
	case "insert":
		d.insert(ctx, args)
	case "buy":
		d.buy(ctx)
	case "balance":
		d.balance(ctx)
	case "return":
		fmt.Fprintln(d.out, d.machine.ReturnChange(ctx).Message)
	case "stock":
		writeStock(d.out, d.machine.StockStatus(ctx))
	default:
		fmt.Fprintf(d.out, "Unknown command: '%s'\n", cmd)
		fmt.Fprintln(d.out, "Type 'help' to see available commands.")
	}
	return false
}

func (d *Dispatcher) selectDrink(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "Usage: select <drink_id>")
		fmt.Fprintln(d.out, "Example: select A1")
		return
	}
	fmt.Fprintln(d.out, d.machine.SelectDrink(ctx, strings.ToUpper(args[0])).Message)
}

func (d *Dispatcher) insert(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "Usage: insert <amount>")
		fmt.Fprintln(d.out, "Example: insert 1.00")
		fmt.Fprintf(d.out, "Accepted amounts: %s\n", acceptedAmounts())
		return
	}
	amount, err := decimal.NewFromString(args[0])
	if err != nil {
		fmt.Fprintln(d.out, "Invalid amount. Please enter a valid number.")
		return
	}
	fmt.Fprintln(d.out, d.machine.InsertMoney(ctx, amount).Message)
}

func (d *Dispatcher) buy(ctx context.Context) {
	out := d.machine.Dispense(ctx)
	fmt.Fprintln(d.out, out.Message)
	if !out.OK() {
		return
	}
	if out.Amount.IsPositive() {
		fmt.Fprintf(d.out, "Change returned: %s\n", domain.FormatMoney(out.Amount))
	} else {
		fmt.Fprintln(d.out, "Exact payment - no change needed.")
	}
}

func (d *Dispatcher) balance(ctx context.Context) {
	fmt.Fprintln(d.out, d.machine.CheckBalance(ctx).Message)
	if drink, ok := d.machine.Selection(ctx); ok {
		fmt.Fprintf(d.out, "Selected drink: %s\n", drink.Name())
		fmt.Fprintf(d.out, "Price: %s\n", domain.FormatMoney(drink.Price()))
	}
}
