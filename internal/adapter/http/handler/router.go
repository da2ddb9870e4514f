package handler

import (
	"vending-machine/internal/adapter/http/middleware"
	"vending-machine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	MachineSvc     ports.MachineService
	DispenseSvc    ports.DispenseService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(64 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := deps.RateLimitRules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")

	// --- Customer routes (no auth) ---
	machineHandler := NewMachineHandler(deps.MachineSvc, deps.DispenseSvc)
	machine := v1.Group("/machine", rl(middleware.GroupMachine))
	{
		machine.GET("/menu", machineHandler.Menu)
		machine.POST("/select", machineHandler.Select)
		machine.POST("/insert", machineHandler.Insert)
		machine.GET("/balance", machineHandler.Balance)
		machine.POST("/dispense", machineHandler.Dispense)
		machine.POST("/return", machineHandler.Return)
	}

	// --- Operator routes ---
	adminHandler := NewAdminHandler(deps.AuthSvc, deps.MachineSvc)
	v1.POST("/admin/login", rl(middleware.GroupAdminLogin), adminHandler.Login)

	admin := v1.Group("/admin", middleware.JWTAuth(deps.TokenSvc, deps.Logger), rl(middleware.GroupAdmin))
	{
		admin.GET("/stock", adminHandler.Stock)
		admin.POST("/restock", adminHandler.Restock)
		admin.POST("/reset", adminHandler.Reset)
	}

	return r
}
