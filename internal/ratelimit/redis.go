package ratelimit

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// checkAndConsumeScript runs the whole check-and-increment atomically on the
// server so concurrent requests for the same identifier never undercount.
// The DECR undoes the probe increment when the quota is already spent, keeping
// the stored count untouched for rejected requests.
var checkAndConsumeScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if count > tonumber(ARGV[2]) then
	redis.call("DECR", KEYS[1])
	return 0
end
return 1
`)

// RedisStore is the durable shared rate-limit backend. Counters live in Redis
// keyed per identifier with a TTL equal to the window, so the window resets
// server-side without any sweeper.
type RedisStore struct {
	client *redis.Client
	cfg    Config
}

// NewRedisStore connects to the durable store. url is a redis:// or rediss://
// URL; token, when set, overrides the password (hosted stores hand these out
// as separate credentials).
func NewRedisStore(url, token string, cfg Config) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if token != "" {
		opts.Password = token
	}

	return &RedisStore{
		client: redis.NewClient(opts),
		cfg:    cfg,
	}, nil
}

// CheckAndConsume implements Store
func (s *RedisStore) CheckAndConsume(ctx context.Context, identifier string) (bool, error) {
	key := "ratelimit:" + identifier

	res, err := checkAndConsumeScript.Run(ctx, s.client,
		[]string{key},
		strconv.FormatInt(s.cfg.Window.Milliseconds(), 10),
		strconv.Itoa(s.cfg.Max),
	).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit check failed: %w", err)
	}

	return res == 1, nil
}

// Ping verifies connectivity to the durable store
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}
