package configuration

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to the redis server, retrying a few times so the
// service survives redis coming up after it.
func InitRedis(cfg *Config) (*redis.Client, error) {
	const (
		maxRetries = 5
		retryDelay = 5 * time.Second
	)

	var err error
	for i := 0; i < maxRetries; i++ {
		client := redis.NewClient(&redis.Options{
			Network:  "tcp",
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})

		_, err = client.Ping(context.Background()).Result()
		if err == nil {
			return client, nil
		}
		time.Sleep(retryDelay)
	}
	return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
}
