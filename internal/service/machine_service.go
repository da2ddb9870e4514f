package service

import (
	"context"
	"fmt"
	"sync"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// MachineServiceImpl implements ports.MachineService: the transaction
// controller of one machine. Every operation holds mu for its whole body,
// so a dispense is atomic with respect to concurrent callers. mu is always
// taken before the ledger's own lock.
type MachineServiceImpl struct {
	mu        sync.Mutex
	name      string
	inventory ports.InventoryLedger
	auditSvc  ports.AuditService
	log       zerolog.Logger

	balance    decimal.Decimal
	selectedID string
}

// NewMachineService creates an idle machine over inventory. auditSvc may be nil.
func NewMachineService(
	name string,
	inventory ports.InventoryLedger,
	auditSvc ports.AuditService,
	log zerolog.Logger,
) *MachineServiceImpl {
	return &MachineServiceImpl{
		name:      name,
		inventory: inventory,
		auditSvc:  auditSvc,
		log:       log.With().Str("machine", name).Logger(),
		balance:   decimal.Zero,
	}
}

// SelectDrink makes drinkID the current selection. The balance is not touched.
func (s *MachineServiceImpl) SelectDrink(ctx context.Context, drinkID string) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, err := s.inventory.Get(drinkID)
	if err != nil {
		s.log.Debug().Str("drink_id", drinkID).Msg("select rejected: unknown drink")
		return domain.Failed(domain.OutcomeUnknownDrink,
			fmt.Sprintf("Invalid drink selection: %s", drinkID), decimal.Zero)
	}
	if !s.inventory.IsAvailable(drinkID) {
		s.log.Debug().Str("drink_id", drinkID).Msg("select rejected: out of stock")
		return domain.Failed(domain.OutcomeOutOfStock,
			fmt.Sprintf("Sorry, %s is out of stock.", drink.Name()), decimal.Zero)
	}

	s.selectedID = drinkID
	return domain.Succeeded(
		fmt.Sprintf("Selected: %s - %s", drink.Name(), domain.FormatMoney(drink.Price())),
		drink.Price(),
	)
}

// InsertMoney adds one accepted coin or note to the balance.
func (s *MachineServiceImpl) InsertMoney(ctx context.Context, amount decimal.Decimal) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !amount.IsPositive() {
		s.log.Debug().Str("amount", amount.String()).Msg("insert rejected: not positive")
		return domain.Failed(domain.OutcomeInvalidAmount, "Please insert a positive amount.", decimal.Zero)
	}
	if !domain.IsAcceptedDenomination(amount) {
		s.log.Debug().Str("amount", amount.String()).Msg("insert rejected: denomination")
		return domain.Failed(domain.OutcomeInvalidAmount,
			"Invalid amount. Please insert: "+domain.DenominationList(), decimal.Zero)
	}

	s.balance = s.balance.Add(amount)
	return domain.Succeeded(
		fmt.Sprintf("Inserted: %s. Balance: %s", domain.FormatMoney(amount), domain.FormatMoney(s.balance)),
		s.balance,
	)
}

// CheckBalance compares the balance with the selected drink's price. On
// success the amount is the change a dispense would give; on shortfall it is
// the missing amount.
func (s *MachineServiceImpl) CheckBalance(ctx context.Context) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, ok := s.selected()
	if !ok {
		return noSelection()
	}
	if s.balance.GreaterThanOrEqual(drink.Price()) {
		return domain.Succeeded(
			fmt.Sprintf("Balance sufficient for %s", drink.Name()),
			s.balance.Sub(drink.Price()),
		)
	}
	return insufficient(drink.Price().Sub(s.balance))
}

// Dispense vends the selected drink. Checks run in order: selection, stock,
// balance, ledger decrement. Only a successful dispense changes state.
func (s *MachineServiceImpl) Dispense(ctx context.Context) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	drink, ok := s.selected()
	if !ok {
		return noSelection()
	}
	if !s.inventory.IsAvailable(drink.ID()) {
		s.log.Debug().Str("drink_id", drink.ID()).Msg("dispense rejected: out of stock")
		return domain.Failed(domain.OutcomeOutOfStock,
			fmt.Sprintf("Sorry, %s is no longer available.", drink.Name()), decimal.Zero)
	}
	if s.balance.LessThan(drink.Price()) {
		shortfall := drink.Price().Sub(s.balance)
		s.log.Debug().Str("drink_id", drink.ID()).Str("shortfall", shortfall.StringFixed(2)).Msg("dispense rejected: insufficient balance")
		return insufficient(shortfall)
	}
	if !s.inventory.DispenseOne(drink.ID()) {
		s.log.Error().Str("drink_id", drink.ID()).Msg("ledger refused decrement")
		return domain.Failed(domain.OutcomeDispenseFailure, "Failed to dispense drink. Please try again.", decimal.Zero)
	}

	change := s.balance.Sub(drink.Price())
	s.balance = decimal.Zero
	s.selectedID = ""

	s.log.Info().
		Str("drink_id", drink.ID()).
		Str("price", drink.Price().StringFixed(2)).
		Str("change", change.StringFixed(2)).
		Int("remaining", s.inventory.Quantity(drink.ID())).
		Msg("drink dispensed")

	event := domain.NewAuditEvent(s.name, domain.AuditActionDispense)
	event.DrinkID = drink.ID()
	event.Quantity = 1
	event.Amount = drink.Price()
	event.Change = change
	s.audit(ctx, event)

	return domain.Succeeded(fmt.Sprintf("Enjoy your %s!", drink.Name()), change)
}

// ReturnChange refunds the whole balance and ends the transaction.
func (s *MachineServiceImpl) ReturnChange(ctx context.Context) domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.balance.IsPositive() {
		return domain.Failed(domain.OutcomeNothingToReturn, "No money to return.", decimal.Zero)
	}

	refund := s.balance
	s.balance = decimal.Zero
	s.selectedID = ""

	s.log.Info().Str("amount", refund.StringFixed(2)).Msg("money returned")

	event := domain.NewAuditEvent(s.name, domain.AuditActionReturn)
	event.Amount = refund
	s.audit(ctx, event)

	return domain.Succeeded(fmt.Sprintf("Returned %s", domain.FormatMoney(refund)), refund)
}

// ResetTransaction drops the selection and zeroes the balance without a refund.
// It returns the voided balance.
func (s *MachineServiceImpl) ResetTransaction(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	voided := s.balance
	s.balance = decimal.Zero
	s.selectedID = ""

	s.log.Info().Str("voided", voided.StringFixed(2)).Msg("transaction reset")

	event := domain.NewAuditEvent(s.name, domain.AuditActionReset)
	event.Amount = voided
	s.audit(ctx, event)
	return voided
}

// Menu lists in-stock drinks with their counts, plus the current balance.
func (s *MachineServiceImpl) Menu(ctx context.Context) domain.Menu {
	s.mu.Lock()
	defer s.mu.Unlock()

	drinks := s.inventory.ListAvailable()
	items := make([]domain.MenuItem, 0, len(drinks))
	for _, d := range drinks {
		items = append(items, domain.MenuItem{Drink: d, Quantity: s.inventory.Quantity(d.ID())})
	}
	return domain.Menu{Items: items, Balance: s.balance}
}

func (s *MachineServiceImpl) StockStatus(ctx context.Context) []domain.StockLevel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.Summary()
}

// Selection returns the selected drink as currently held by the ledger.
func (s *MachineServiceImpl) Selection(ctx context.Context) (domain.Drink, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected()
}

func (s *MachineServiceImpl) Balance(ctx context.Context) decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Restock adds quantity units of drinkID. Errors are *apperror.AppError.
func (s *MachineServiceImpl) Restock(ctx context.Context, drinkID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inventory.Restock(drinkID, quantity); err != nil {
		return err
	}

	s.log.Info().
		Str("drink_id", drinkID).
		Int("added", quantity).
		Int("quantity", s.inventory.Quantity(drinkID)).
		Msg("drink restocked")

	event := domain.NewAuditEvent(s.name, domain.AuditActionRestock)
	event.DrinkID = drinkID
	event.Quantity = quantity
	s.audit(ctx, event)
	return nil
}

// selected resolves the selection through the ledger. Caller holds mu.
func (s *MachineServiceImpl) selected() (domain.Drink, bool) {
	if s.selectedID == "" {
		return domain.Drink{}, false
	}
	drink, err := s.inventory.Get(s.selectedID)
	if err != nil {
		return domain.Drink{}, false
	}
	return drink, true
}

func (s *MachineServiceImpl) audit(ctx context.Context, event *domain.AuditEvent) {
	if s.auditSvc != nil {
		s.auditSvc.Record(ctx, event)
	}
}

func noSelection() domain.Outcome {
	return domain.Failed(domain.OutcomeNoSelection, "No drink selected.", decimal.Zero)
}

func insufficient(shortfall decimal.Decimal) domain.Outcome {
	return domain.Failed(domain.OutcomeInsufficientBalance,
		fmt.Sprintf("Insufficient balance. Need %s more.", domain.FormatMoney(shortfall)),
		shortfall,
	)
}
