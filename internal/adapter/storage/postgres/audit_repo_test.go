package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"vending-machine/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Create_Dispense(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	e := domain.NewAuditEvent("vm-001", domain.AuditActionDispense)
	e.DrinkID = "A1"
	e.Amount = decimal.RequireFromString("1.5")
	e.Change = decimal.RequireFromString("0.5")
	e.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)

	drinkID := "A1"
	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(e.ID, "vm-001", "DISPENSE", &drinkID, 0, "1.50", "0.50", e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_ResetHasNoDrink(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	e := domain.NewAuditEvent("vm-001", domain.AuditActionReset)
	e.Amount = decimal.RequireFromString("2.00")

	mock.ExpectExec("INSERT INTO audit_events").
		WithArgs(e.ID, "vm-001", "RESET", (*string)(nil), 0, "2.00", "0.00", e.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditRepo_Create_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAuditRepository(mock)
	e := domain.NewAuditEvent("vm-001", domain.AuditActionReturn)

	mock.ExpectExec("INSERT INTO audit_events").
		WillReturnError(errors.New("relation does not exist"))

	err = repo.Create(context.Background(), e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert audit event")
	assert.NoError(t, mock.ExpectationsWereMet())
}
