package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AuditAction represents the type of journaled machine event.
type AuditAction string

const (
	AuditActionDispense AuditAction = "DISPENSE"
	AuditActionReturn   AuditAction = "RETURN"
	AuditActionRestock  AuditAction = "RESTOCK"
	AuditActionReset    AuditAction = "RESET"
)

// AuditEvent records a completed machine event in the sales journal.
type AuditEvent struct {
	ID        uuid.UUID       `json:"id"`
	Machine   string          `json:"machine"`
	Action    AuditAction     `json:"action"`
	DrinkID   string          `json:"drink_id,omitempty"`
	Quantity  int             `json:"quantity,omitempty"`
	Amount    decimal.Decimal `json:"amount"` // price paid, money returned, or balance voided
	Change    decimal.Decimal `json:"change"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewAuditEvent stamps a fresh event.
func NewAuditEvent(machine string, action AuditAction) *AuditEvent {
	return &AuditEvent{
		ID:        uuid.New(),
		Machine:   machine,
		Action:    action,
		CreatedAt: time.Now().UTC(),
	}
}
