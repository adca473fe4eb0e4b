package authcode

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "bookstore:auth:code:"

// RedisStore keeps codes in redis so multiple auth server instances can
// share them. Expiry rides on the key TTL and GETDEL guarantees single use.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		ttl: ttl,
	}
}

func (s *RedisStore) Put(ctx context.Context, code, username string) error {
	if err := s.client.Set(ctx, redisKeyPrefix+code, username, s.ttl).Err(); err != nil {
		return fmt.Errorf("store authorization code: %w", err)
	}
	return nil
}

func (s *RedisStore) Take(ctx context.Context, code string) (string, error) {
	username, err := s.client.GetDel(ctx, redisKeyPrefix+code).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCodeNotFound
	}
	if err != nil {
		return "", fmt.Errorf("consume authorization code: %w", err)
	}
	return username, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
