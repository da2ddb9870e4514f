package service

import (
	"context"
	"sync"
	"time"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

// AuditServiceImpl implements ports.AuditService. Events are always logged;
// when a repository is configured they are also persisted in the background.
type AuditServiceImpl struct {
	repo ports.AuditRepository
	log  zerolog.Logger
	wg   sync.WaitGroup
}

// NewAuditService creates a new audit service.
// If repo is nil, events are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) *AuditServiceImpl {
	return &AuditServiceImpl{repo: repo, log: log}
}

// Record journals an event (fire-and-forget). Persistence failures are logged.
func (s *AuditServiceImpl) Record(ctx context.Context, event *domain.AuditEvent) {
	s.log.Info().
		Str("event_id", event.ID.String()).
		Str("machine", event.Machine).
		Str("action", string(event.Action)).
		Str("drink_id", event.DrinkID).
		Int("quantity", event.Quantity).
		Str("amount", event.Amount.StringFixed(2)).
		Str("change", event.Change.StringFixed(2)).
		Msg("audit")

	if s.repo == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(writeCtx, event); err != nil {
			s.log.Warn().Err(err).
				Str("event_id", event.ID.String()).
				Str("action", string(event.Action)).
				Msg("failed to persist audit event")
		}
	}()
}

// Wait blocks until in-flight writes finish or ctx is done.
func (s *AuditServiceImpl) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
