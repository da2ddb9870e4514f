package ports

import (
	"context"
	"time"

	"vending-machine/internal/core/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks
//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// --- Service Ports (Business Logic) ---

// MachineService is the transaction controller of a single machine.
// Customer operations report through a domain.Outcome and never fail with an error.
type MachineService interface {
	SelectDrink(ctx context.Context, drinkID string) domain.Outcome
	InsertMoney(ctx context.Context, amount decimal.Decimal) domain.Outcome
	CheckBalance(ctx context.Context) domain.Outcome
	Dispense(ctx context.Context) domain.Outcome
	ReturnChange(ctx context.Context) domain.Outcome
	ResetTransaction(ctx context.Context) decimal.Decimal

	Menu(ctx context.Context) domain.Menu
	StockStatus(ctx context.Context) []domain.StockLevel
	Selection(ctx context.Context) (domain.Drink, bool)
	Balance(ctx context.Context) decimal.Decimal
	Restock(ctx context.Context, drinkID string, quantity int) error
}

// DispenseService wraps MachineService.Dispense with replay protection keyed
// by a client-supplied idempotency key. The bool reports a replayed result.
type DispenseService interface {
	Dispense(ctx context.Context, idempotencyKey string) (domain.Outcome, bool)
}

// AuditService records sales journal events.
type AuditService interface {
	Record(ctx context.Context, event *domain.AuditEvent)
}

// AuthService defines admin authentication.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// IdempotencyCache is the Redis-layer idempotency store.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
