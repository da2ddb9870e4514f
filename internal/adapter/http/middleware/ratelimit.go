package middleware

import (
	"fmt"
	"strconv"
	"time"

	"vending-machine/internal/core/ports"
	"vending-machine/pkg/apperror"
	"vending-machine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Route groups with their own counters.
const (
	GroupMachine    = "machine"
	GroupAdmin      = "admin"
	GroupAdminLogin = "admin_login"
)

// DefaultRateLimitRules applies the configured limit to the machine and admin
// groups. Login attempts get a fixed, tighter budget.
func DefaultRateLimitRules(limit int64, window time.Duration) map[string]RateLimitRule {
	return map[string]RateLimitRule{
		GroupMachine:    {Limit: limit, Window: window},
		GroupAdmin:      {Limit: limit, Window: window},
		GroupAdminLogin: {Limit: 10, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// When the store fails the request is let through.
func RateLimiter(store ports.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated admins by name, everyone else by IP.
func extractIdentifier(c *gin.Context) string {
	if admin := c.GetString(CtxAdmin); admin != "" {
		return "admin:" + admin
	}
	return c.ClientIP()
}
