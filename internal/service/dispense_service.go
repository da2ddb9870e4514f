package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"

	"github.com/rs/zerolog"
)

// DispenseIdempotencyTTL is how long a dispense result stays replayable.
const DispenseIdempotencyTTL = 24 * time.Hour

// DispenseServiceImpl implements ports.DispenseService. Successful outcomes
// are stored under the client's idempotency key; a retry with the same key
// gets the stored outcome back without touching the machine. Failed
// outcomes are not stored, since a later retry may legitimately succeed.
// Requests sharing a key run one at a time, so a concurrent duplicate waits
// for the first and then replays its stored result.
type DispenseServiceImpl struct {
	machine ports.MachineService
	cache   ports.IdempotencyCache
	scope   string
	log     zerolog.Logger

	mu       sync.Mutex
	inflight map[string]*keyLock
}

type keyLock struct {
	sync.Mutex
	refs int
}

// NewDispenseService creates a new dispense service. cache may be nil, in
// which case keys are ignored. scope namespaces keys, normally the machine name.
func NewDispenseService(machine ports.MachineService, cache ports.IdempotencyCache, scope string, log zerolog.Logger) *DispenseServiceImpl {
	return &DispenseServiceImpl{
		machine:  machine,
		cache:    cache,
		scope:    scope,
		log:      log,
		inflight: make(map[string]*keyLock),
	}
}

// lockKey blocks until no other request holds key and returns its release func.
func (s *DispenseServiceImpl) lockKey(key string) func() {
	s.mu.Lock()
	l, ok := s.inflight[key]
	if !ok {
		l = &keyLock{}
		s.inflight[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.inflight, key)
		}
		s.mu.Unlock()
	}
}

func (s *DispenseServiceImpl) Dispense(ctx context.Context, idempotencyKey string) (domain.Outcome, bool) {
	if idempotencyKey == "" || s.cache == nil {
		return s.machine.Dispense(ctx), false
	}

	cacheKey := "dispense:" + s.scope + ":" + idempotencyKey
	release := s.lockKey(cacheKey)
	defer release()

	cached, err := s.cache.Get(ctx, cacheKey)
	switch {
	case err != nil:
		s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("idempotency lookup failed, dispensing without replay protection")
	case cached != nil:
		var outcome domain.Outcome
		if err := json.Unmarshal(cached, &outcome); err == nil {
			s.log.Info().Str("idempotency_key", idempotencyKey).Msg("dispense replayed from cache")
			return outcome, true
		}
		s.log.Warn().Str("idempotency_key", idempotencyKey).Msg("discarding unreadable cached dispense result")
	}

	outcome := s.machine.Dispense(ctx)
	if !outcome.OK() {
		return outcome, false
	}

	payload, err := json.Marshal(outcome)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode dispense result")
		return outcome, false
	}
	if err := s.cache.Set(ctx, cacheKey, payload, DispenseIdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("failed to store dispense result")
	}
	return outcome, false
}
