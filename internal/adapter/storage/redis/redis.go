package redis

import (
	"context"
	"fmt"
	"time"

	"vending-machine/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis only backs replay protection and rate limiting, both of which
// degrade when it is slow, so a stalled server must not hold up a sale.
const (
	dialTimeout = 2 * time.Second
	ioTimeout   = 500 * time.Millisecond
)

// NewClient creates a Redis client for machine and verifies connectivity.
// The connection is tagged "vending:<machine>" in CLIENT LIST.
func NewClient(ctx context.Context, cfg config.RedisConfig, machine string, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   "vending:" + machine,
		DialTimeout:  dialTimeout,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
		MaxRetries:   1,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Str("machine", machine).
		Msg("Redis connection established")

	return client, nil
}
