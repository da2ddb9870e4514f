package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	httpHandler "vending-machine/internal/adapter/http/handler"
	"vending-machine/internal/adapter/http/middleware"
	redisStorage "vending-machine/internal/adapter/storage/redis"
	"vending-machine/internal/core/domain"
	"vending-machine/internal/core/ports"
	"vending-machine/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adminPassword = "S3cret-pass!"

var (
	hashOnce  sync.Once
	adminHash string
)

// testApp wires the real services, in-memory ledger and miniredis-backed
// stores behind the router.
type testApp struct {
	server    *httptest.Server
	redis     *miniredis.Miniredis
	inventory *service.Inventory
}

type appOption func(*httpHandler.RouterDeps)

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hashOnce.Do(func() {
		h, err := service.NewArgon2HashService().Hash(adminPassword)
		require.NoError(t, err)
		adminHash = h
	})

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := zerolog.Nop()
	inventory, err := service.NewStockedInventory(domain.DefaultCatalog(5))
	require.NoError(t, err)

	machineSvc := service.NewMachineService("test-vm", inventory, service.NewAuditService(nil, log), log)
	dispenseSvc := service.NewDispenseService(machineSvc, redisStorage.NewIdempotencyCache(rdb), "test-vm", log)
	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", time.Hour, "test-vm")
	authSvc := service.NewAuthService("admin", adminHash, service.NewArgon2HashService(), tokenSvc, log)

	deps := httpHandler.RouterDeps{
		MachineSvc:     machineSvc,
		DispenseSvc:    dispenseSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	if deps.RateLimitRules != nil {
		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
	}

	server := httptest.NewServer(httpHandler.SetupRouter(deps))
	t.Cleanup(server.Close)

	return &testApp{server: server, redis: mr, inventory: inventory}
}

type envelope struct {
	Data      json.RawMessage   `json:"data"`
	ErrorCode string            `json:"error_code"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details"`
	RequestID string            `json:"request_id"`
}

func (a *testApp) do(t *testing.T, method, path, body string, headers map[string]string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	return resp, env
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()
	resp, env := a.do(t, http.MethodPost, "/api/v1/admin/login",
		`{"username":"admin","password":"`+adminPassword+`"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestRouter_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestRouter_HealthCheckDegradedWhenRedisDown(t *testing.T) {
	app := newTestApp(t)
	app.redis.Close()

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestRouter_PurchaseFlow(t *testing.T) {
	app := newTestApp(t)

	resp, env := app.do(t, http.MethodPost, "/api/v1/machine/select", `{"drink_id":"a1"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, env.RequestID)
	assert.Equal(t, env.RequestID, resp.Header.Get(middleware.HeaderRequestID))

	resp, _ = app.do(t, http.MethodPost, "/api/v1/machine/insert", `{"amount":"1.00"}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = app.do(t, http.MethodPost, "/api/v1/machine/insert", `{"amount":0.5}`, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = app.do(t, http.MethodGet, "/api/v1/machine/balance", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bal struct {
		Balance    string `json:"balance"`
		Sufficient bool   `json:"sufficient"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &bal))
	assert.Equal(t, "1.50", bal.Balance)
	assert.True(t, bal.Sufficient)

	resp, env = app.do(t, http.MethodPost, "/api/v1/machine/dispense", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var disp struct {
		Message string `json:"message"`
		Change  string `json:"change"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &disp))
	assert.Equal(t, "Enjoy your Coca Cola!", disp.Message)
	assert.Equal(t, "0.00", disp.Change)
	assert.Equal(t, 4, app.inventory.Quantity("A1"))

	resp, env = app.do(t, http.MethodPost, "/api/v1/machine/dispense", "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "VND_004", env.ErrorCode)
}

func TestRouter_InsufficientBalance(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/api/v1/machine/select", `{"drink_id":"B1"}`, nil)
	app.do(t, http.MethodPost, "/api/v1/machine/insert", `{"amount":"1.00"}`, nil)

	resp, env := app.do(t, http.MethodPost, "/api/v1/machine/dispense", "", nil)
	assert.Equal(t, http.StatusPaymentRequired, resp.StatusCode)
	assert.Equal(t, "VND_005", env.ErrorCode)
	assert.Equal(t, "Insufficient balance. Need $1.00 more.", env.Message)
	assert.Equal(t, "1.00", env.Details["amount"])

	resp, env = app.do(t, http.MethodPost, "/api/v1/machine/return", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Returned $1.00","amount":"1.00"}`, string(env.Data))
}

func TestRouter_DispenseReplay(t *testing.T) {
	app := newTestApp(t)
	key := map[string]string{httpHandler.HeaderIdempotencyKey: "order-42"}

	app.do(t, http.MethodPost, "/api/v1/machine/select", `{"drink_id":"B3"}`, nil)
	app.do(t, http.MethodPost, "/api/v1/machine/insert", `{"amount":"2.00"}`, nil)

	resp, first := app.do(t, http.MethodPost, "/api/v1/machine/dispense", "", key)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get(httpHandler.HeaderIdempotentReplayed))

	resp, second := app.do(t, http.MethodPost, "/api/v1/machine/dispense", "", key)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get(httpHandler.HeaderIdempotentReplayed))

	var a, b struct {
		Message  string `json:"message"`
		Change   string `json:"change"`
		Replayed bool   `json:"replayed"`
	}
	require.NoError(t, json.Unmarshal(first.Data, &a))
	require.NoError(t, json.Unmarshal(second.Data, &b))
	assert.Equal(t, a.Message, b.Message)
	assert.Equal(t, "1.00", b.Change)
	assert.True(t, b.Replayed)
	assert.Equal(t, 4, app.inventory.Quantity("B3"), "replay must not vend again")
	assert.True(t, app.redis.Exists("idempotency:dispense:test-vm:order-42"))
}

func TestRouter_AdminRequiresToken(t *testing.T) {
	app := newTestApp(t)

	resp, env := app.do(t, http.MethodGet, "/api/v1/admin/stock", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_003", env.ErrorCode)

	resp, _ = app.do(t, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_AdminRestockAndReset(t *testing.T) {
	app := newTestApp(t)
	auth := map[string]string{"Authorization": "Bearer " + app.login(t)}

	resp, env := app.do(t, http.MethodPost, "/api/v1/admin/restock", `{"drink_id":"C3","quantity":7}`, auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"drink_id":"C3","name":"Tea","quantity":12,"status":"IN STOCK"}`, string(env.Data))

	resp, env = app.do(t, http.MethodPost, "/api/v1/admin/restock", `{"drink_id":"Z9","quantity":1}`, auth)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "VND_009", env.ErrorCode)

	resp, env = app.do(t, http.MethodPost, "/api/v1/admin/restock", `{"drink_id":"A1","quantity":-2}`, auth)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VND_008", env.ErrorCode)

	app.do(t, http.MethodPost, "/api/v1/machine/insert", `{"amount":"5.00"}`, nil)
	resp, env = app.do(t, http.MethodPost, "/api/v1/admin/reset", "", auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Transaction reset","amount":"5.00"}`, string(env.Data))

	resp, env = app.do(t, http.MethodPost, "/api/v1/machine/return", "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "VND_007", env.ErrorCode)

	resp, env = app.do(t, http.MethodGet, "/api/v1/admin/stock", "", auth)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stock []struct {
		DrinkID string `json:"drink_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stock))
	assert.Len(t, stock, 9)
}

func TestRouter_RateLimitedLogin(t *testing.T) {
	app := newTestApp(t, func(d *httpHandler.RouterDeps) {
		d.RateLimitRules = middleware.DefaultRateLimitRules(100, time.Minute)
	})

	for i := 0; i < 10; i++ {
		resp, _ := app.do(t, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"wrong"}`, nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "attempt %d", i+1)
	}

	resp, env := app.do(t, http.MethodPost, "/api/v1/admin/login", `{"username":"admin","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "RATE_001", env.ErrorCode)

	// Machine routes keep their own budget.
	resp, _ = app.do(t, http.MethodGet, "/api/v1/machine/menu", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "100", resp.Header.Get("X-RateLimit-Limit"))
}

// TestRouter_ConcurrentInsertAndDispense drives the machine from many
// clients at once: every accepted coin lands in the balance and one selection
// vends at most one drink.
func TestRouter_ConcurrentInsertAndDispense(t *testing.T) {
	app := newTestApp(t)

	const clients = 40
	var wg sync.WaitGroup
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(app.server.URL+"/api/v1/machine/insert", "application/json",
				bytes.NewBufferString(`{"amount":"0.25"}`))
			if err == nil {
				resp.Body.Close()
			}
		}()
	}
	wg.Wait()

	resp, env := app.do(t, http.MethodGet, "/api/v1/machine/menu", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var menu struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &menu))
	assert.Equal(t, "10.00", menu.Balance)

	app.do(t, http.MethodPost, "/api/v1/machine/select", `{"drink_id":"C1"}`, nil)

	var vended, rejected atomic.Int32
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Post(app.server.URL+"/api/v1/machine/dispense", "application/json", nil)
			if err != nil {
				return
			}
			resp.Body.Close()
			switch resp.StatusCode {
			case http.StatusOK:
				vended.Add(1)
			case http.StatusConflict:
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), vended.Load())
	assert.Equal(t, int32(clients-1), rejected.Load())
	assert.Equal(t, 4, app.inventory.Quantity("C1"))
}
