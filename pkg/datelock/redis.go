package datelock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL        = 10 * time.Second
	defaultRetryDelay = 25 * time.Millisecond
	defaultWait       = 5 * time.Second
)

// Освобождаем ключ только если он всё ещё принадлежит нашему токену
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker распределённая блокировка SET NX PX с токеном владельца
type RedisLocker struct {
	rdb        redis.UniversalClient
	prefix     string
	ttl        time.Duration
	retryDelay time.Duration
	wait       time.Duration
}

func NewRedisLocker(rdb redis.UniversalClient, prefix string, ttl, wait time.Duration) *RedisLocker {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "calendar:lock"
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if wait <= 0 {
		wait = defaultWait
	}
	return &RedisLocker{
		rdb:        rdb,
		prefix:     prefix,
		ttl:        ttl,
		retryDelay: defaultRetryDelay,
		wait:       wait,
	}
}

// Lock пытается захватить ключ, повторяя попытки до истечения wait или ctx
func (l *RedisLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	fullKey := l.prefix + ":" + key
	token := uuid.NewString()

	waitCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	ticker := time.NewTicker(l.retryDelay)
	defer ticker.Stop()

	for {
		ok, err := l.rdb.SetNX(waitCtx, fullKey, token, l.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("datelock: redis SETNX %s: %w", fullKey, err)
		}
		if ok {
			return l.unlockFunc(fullKey, token), nil
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: %s", ErrLockTimeout, key)
		case <-ticker.C:
		}
	}
}

func (l *RedisLocker) unlockFunc(fullKey, token string) Unlock {
	return func(ctx context.Context) error {
		res, err := releaseScript.Run(ctx, l.rdb, []string{fullKey}, token).Int64()
		if err != nil {
			return fmt.Errorf("datelock: release %s: %w", fullKey, err)
		}
		if res == 0 {
			return fmt.Errorf("%w: %s", ErrLockLost, fullKey)
		}
		return nil
	}
}
