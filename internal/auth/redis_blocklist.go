package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const blocklistPrefix = "projects:blocklist:"

// RedisBlocklist shares revoked token ids across service replicas.
type RedisBlocklist struct {
	client *redis.Client
}

func NewRedisBlocklist(client *redis.Client) *RedisBlocklist {
	return &RedisBlocklist{client: client}
}

func (b *RedisBlocklist) Add(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0
	}
	if err := b.client.Set(ctx, blocklistPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blocklist add: %w", err)
	}
	return nil
}

func (b *RedisBlocklist) Contains(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blocklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("blocklist lookup: %w", err)
	}
	return n > 0, nil
}

// Clear removes every revoked id written by this service.
func (b *RedisBlocklist) Clear(ctx context.Context) error {
	iter := b.client.Scan(ctx, 0, blocklistPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := b.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("blocklist clear: %w", err)
		}
	}
	return iter.Err()
}
