package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupDispenseService(t *testing.T) (*DispenseServiceImpl, *mocks.MockMachineService, *mocks.MockIdempotencyCache) {
	ctrl := gomock.NewController(t)
	machine := mocks.NewMockMachineService(ctrl)
	cache := mocks.NewMockIdempotencyCache(ctrl)
	return NewDispenseService(machine, cache, "vm-001", zerolog.Nop()), machine, cache
}

func TestDispenseService_NoKey(t *testing.T) {
	svc, machine, _ := setupDispenseService(t)
	ctx := context.Background()

	want := domain.Succeeded("Enjoy your Water!", decimal.Zero)
	machine.EXPECT().Dispense(ctx).Return(want)

	got, replayed := svc.Dispense(ctx, "")
	assert.Equal(t, want, got)
	assert.False(t, replayed)
}

func TestDispenseService_StoresSuccess(t *testing.T) {
	svc, machine, cache := setupDispenseService(t)
	ctx := context.Background()

	want := domain.Succeeded("Enjoy your Coca Cola!", decimal.RequireFromString("0.50"))
	cache.EXPECT().Get(ctx, "dispense:vm-001:key-1").Return(nil, nil)
	machine.EXPECT().Dispense(ctx).Return(want)
	cache.EXPECT().Set(ctx, "dispense:vm-001:key-1", gomock.Any(), DispenseIdempotencyTTL).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			var stored domain.Outcome
			require.NoError(t, json.Unmarshal(value, &stored))
			assert.Equal(t, want.Message, stored.Message)
			assert.True(t, want.Amount.Equal(stored.Amount))
			return nil
		})

	got, replayed := svc.Dispense(ctx, "key-1")
	assert.Equal(t, want, got)
	assert.False(t, replayed)
}

func TestDispenseService_Replay(t *testing.T) {
	svc, _, cache := setupDispenseService(t)
	ctx := context.Background()

	stored, err := json.Marshal(domain.Succeeded("Enjoy your Tea!", decimal.RequireFromString("0.50")))
	require.NoError(t, err)
	cache.EXPECT().Get(ctx, "dispense:vm-001:key-1").Return(stored, nil)

	got, replayed := svc.Dispense(ctx, "key-1")
	assert.True(t, replayed)
	assert.True(t, got.OK())
	assert.Equal(t, "Enjoy your Tea!", got.Message)
	assert.Equal(t, "0.50", got.Amount.StringFixed(2))
}

func TestDispenseService_FailureNotStored(t *testing.T) {
	svc, machine, cache := setupDispenseService(t)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, nil)
	machine.EXPECT().Dispense(ctx).Return(domain.Failed(domain.OutcomeNoSelection, "No drink selected.", decimal.Zero))

	got, replayed := svc.Dispense(ctx, "key-2")
	assert.Equal(t, domain.OutcomeNoSelection, got.Kind)
	assert.False(t, replayed)
}

func TestDispenseService_CacheDownDegrades(t *testing.T) {
	svc, machine, cache := setupDispenseService(t)
	ctx := context.Background()

	want := domain.Succeeded("Enjoy your Water!", decimal.Zero)
	cache.EXPECT().Get(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))
	machine.EXPECT().Dispense(ctx).Return(want)
	cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	got, replayed := svc.Dispense(ctx, "key-3")
	assert.Equal(t, want, got)
	assert.False(t, replayed)
}

func TestDispenseService_CorruptEntryIgnored(t *testing.T) {
	svc, machine, cache := setupDispenseService(t)
	ctx := context.Background()

	want := domain.Succeeded("Enjoy your Water!", decimal.Zero)
	cache.EXPECT().Get(ctx, gomock.Any()).Return([]byte("{not json"), nil)
	machine.EXPECT().Dispense(ctx).Return(want)
	cache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	got, replayed := svc.Dispense(ctx, "key-4")
	assert.Equal(t, want, got)
	assert.False(t, replayed)
}

func TestDispenseService_NilCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	machine := mocks.NewMockMachineService(ctrl)
	svc := NewDispenseService(machine, nil, "vm-001", zerolog.Nop())

	machine.EXPECT().Dispense(gomock.Any()).Return(domain.Succeeded("ok", decimal.Zero))

	_, replayed := svc.Dispense(context.Background(), "key-5")
	assert.False(t, replayed)
}

// memoryCache keeps the first value stored per key, like SETNX.
type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.data[key], nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; !ok {
		c.data[key] = value
	}
	return nil
}

func TestDispenseService_ConcurrentSameKeyReplays(t *testing.T) {
	m, inv := newTestMachine(t, 5)
	svc := NewDispenseService(m, &memoryCache{data: make(map[string][]byte)}, "vm-test", zerolog.Nop())
	ctx := context.Background()

	require.True(t, m.SelectDrink(ctx, "A1").OK())
	require.True(t, m.InsertMoney(ctx, dec("5.00")).OK())

	const callers = 20
	var wg sync.WaitGroup
	var fresh, replays, failures atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, replayed := svc.Dispense(ctx, "order-7")
			switch {
			case !out.OK():
				failures.Add(1)
			case replayed:
				replays.Add(1)
			default:
				fresh.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), fresh.Load())
	assert.Equal(t, int32(callers-1), replays.Load())
	assert.Zero(t, failures.Load())
	assert.Equal(t, 4, inv.Quantity("A1"))
	assert.Empty(t, svc.inflight)
}
