package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the client shared by the realtime bridge and the stock
// alert queue. The URL follows the go-redis scheme
// (redis://[:password@]host:port/db) and the connection is pinged so a bad
// REDIS_URL fails at boot instead of on the first sale.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
