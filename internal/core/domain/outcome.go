package domain

import (
	"vending-machine/pkg/apperror"

	"github.com/shopspring/decimal"
)

// OutcomeKind tags the result of a machine operation.
type OutcomeKind string

const (
	OutcomeOK                  OutcomeKind = "OK"
	OutcomeUnknownDrink        OutcomeKind = "UNKNOWN_DRINK"
	OutcomeOutOfStock          OutcomeKind = "OUT_OF_STOCK"
	OutcomeInvalidAmount       OutcomeKind = "INVALID_AMOUNT"
	OutcomeNoSelection         OutcomeKind = "NO_SELECTION"
	OutcomeInsufficientBalance OutcomeKind = "INSUFFICIENT_BALANCE"
	OutcomeDispenseFailure     OutcomeKind = "DISPENSE_FAILURE"
	OutcomeNothingToReturn     OutcomeKind = "NOTHING_TO_RETURN"
)

// Outcome is what every customer-facing machine operation returns: the kind,
// a message fit for display, and a side amount whose meaning depends on the
// operation (price, new balance, shortfall, change or refund).
type Outcome struct {
	Kind    OutcomeKind     `json:"kind"`
	Message string          `json:"message"`
	Amount  decimal.Decimal `json:"amount"`
}

// Succeeded builds an OK outcome.
func Succeeded(message string, amount decimal.Decimal) Outcome {
	return Outcome{Kind: OutcomeOK, Message: message, Amount: amount}
}

// Failed builds a failed outcome of the given kind.
func Failed(kind OutcomeKind, message string, amount decimal.Decimal) Outcome {
	return Outcome{Kind: kind, Message: message, Amount: amount}
}

// OK reports whether the operation succeeded.
func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// Err converts a failed outcome to an *apperror.AppError for transports.
// It returns nil for a successful outcome. A non-zero amount travels in the
// "amount" detail.
func (o Outcome) Err() error {
	var appErr *apperror.AppError
	switch o.Kind {
	case OutcomeOK:
		return nil
	case OutcomeUnknownDrink:
		appErr = apperror.ErrUnknownDrink(o.Message)
	case OutcomeOutOfStock:
		appErr = apperror.ErrOutOfStock(o.Message)
	case OutcomeInvalidAmount:
		appErr = apperror.ErrInvalidAmount(o.Message)
	case OutcomeNoSelection:
		appErr = apperror.ErrNoSelection(o.Message)
	case OutcomeInsufficientBalance:
		appErr = apperror.ErrInsufficientBalance(o.Message)
	case OutcomeDispenseFailure:
		appErr = apperror.ErrDispenseFailure(o.Message)
	case OutcomeNothingToReturn:
		appErr = apperror.ErrNothingToReturn(o.Message)
	default:
		return apperror.New("SYS_000", o.Message, 500)
	}
	if !o.Amount.IsZero() {
		appErr.WithDetail("amount", o.Amount.StringFixed(2))
	}
	return appErr
}
