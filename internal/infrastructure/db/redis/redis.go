// Package redis backs the login-attempt throttle. The service runs fine
// without it; callers construct a client only when an address is configured.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config captures the settings for the throttle backend connection.
type Config struct {
	Addr string
	DB   int
}

const pingTimeout = 5 * time.Second

// Connect initialises a Redis client and fails fast when the backend is
// unreachable: a throttle that silently never connected would fail open for
// the whole process lifetime.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
